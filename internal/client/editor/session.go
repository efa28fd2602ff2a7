// Package editor owns one record's in-progress edit/delete workflow.
//
// A Session holds a snapshot of the record under edit, never a shared
// reference; confirmed results are handed back to the list through
// callbacks and reconciled there by identity. The session exists only
// while the record is open for editing and is closed on cancel, after a
// confirmed success, or when the user's session expires.
package editor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/userdir/internal/client/api"
	"github.com/dmitrijs2005/userdir/internal/client/models"
	"github.com/dmitrijs2005/userdir/internal/client/session"
	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/logging"
)

// Phase is the lifecycle of an edit session.
type Phase string

const (
	PhaseEditing    Phase = "editing"
	PhaseSubmitting Phase = "submitting"
	PhaseSucceeded  Phase = "succeeded"
	PhaseFailed     Phase = "failed"
	PhaseClosed     Phase = "closed"
)

// Callbacks report edit outcomes upward. All of them are optional.
type Callbacks struct {
	// OnUpdated delivers the confirmed record after a successful update.
	OnUpdated func(models.Record)
	// OnDeleted delivers the removed identity after a successful delete.
	OnDeleted func(id int)
	// OnClosed fires once when the session reaches the closed phase.
	OnClosed func()
	// OnSessionExpired fires when a request was rejected as unauthorized.
	OnSessionExpired func()
}

// Session is the edit-form state machine:
// editing → submitting → (succeeded → closed | failed → editing).
type Session struct {
	mu sync.Mutex

	api        api.Client
	guard      *session.Guard
	log        logging.Logger
	sched      Scheduler
	closeDelay time.Duration
	cb         Callbacks

	target      models.Record
	fields      models.RecordFields
	fieldErrors map[string]string
	formError   string
	phase       Phase
	cancelClose func()
}

func NewSession(rec models.Record, apiClient api.Client, guard *session.Guard, sched Scheduler, closeDelay time.Duration, log logging.Logger, cb Callbacks) *Session {
	return &Session{
		api:         apiClient,
		guard:       guard,
		log:         log.With("component", "editor", "id", rec.ID),
		sched:       sched,
		closeDelay:  closeDelay,
		cb:          cb,
		target:      rec,
		fields:      rec.Fields(),
		fieldErrors: map[string]string{},
		phase:       PhaseEditing,
	}
}

// Target returns the snapshot the session was opened with.
func (s *Session) Target() models.Record {
	return s.target
}

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Locked reports whether the form must reject further input: while a
// mutation is outstanding and while the success confirmation is shown.
func (s *Session) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked()
}

func (s *Session) locked() bool {
	return s.phase == PhaseSubmitting || s.phase == PhaseSucceeded
}

func (s *Session) Fields() models.RecordFields {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fields
}

func (s *Session) FieldErrors() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.fieldErrors))
	for k, v := range s.fieldErrors {
		out[k] = v
	}
	return out
}

func (s *Session) FormError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.formError
}

// SetField updates one editable field. Entering a new value clears that
// field's stale error, and a failed session becomes editable again.
func (s *Session) SetField(field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locked() || s.phase == PhaseClosed {
		return
	}

	switch field {
	case FieldFirstName:
		s.fields.FirstName = value
	case FieldLastName:
		s.fields.LastName = value
	case FieldEmail:
		s.fields.Email = value
	case FieldAvatarURL:
		s.fields.AvatarURL = value
	default:
		return
	}

	delete(s.fieldErrors, field)
	if s.phase == PhaseFailed {
		s.phase = PhaseEditing
	}
}

// Submit validates the fields and, if they pass, sends the update. A
// non-empty error map blocks the network call entirely. On success the
// confirmation is shown and the session auto-closes after the configured
// delay; on failure the session returns to editing with a form-level
// message and never retries on its own.
func (s *Session) Submit(ctx context.Context) {
	s.mu.Lock()
	if s.locked() || s.phase == PhaseClosed {
		s.mu.Unlock()
		return
	}

	if errs := Validate(s.fields); len(errs) > 0 {
		s.fieldErrors = errs
		s.phase = PhaseEditing
		s.mu.Unlock()
		return
	}

	s.fieldErrors = map[string]string{}
	s.formError = ""
	s.phase = PhaseSubmitting
	id := s.target.ID
	fields := s.fields
	s.mu.Unlock()

	token, ok := s.guard.Token()
	if !ok {
		s.expire(ctx)
		return
	}

	rec, err := s.api.UpdateRecord(ctx, id, fields, token)
	if err != nil {
		s.fail(ctx, "update", err)
		return
	}

	s.succeed()
	s.log.Info(ctx, "record updated")
	if s.cb.OnUpdated != nil {
		s.cb.OnUpdated(rec)
	}
	s.scheduleClose()
}

// Remove deletes the record after an explicit confirmation. Declining
// leaves the session untouched.
func (s *Session) Remove(ctx context.Context, confirm func() bool) {
	s.mu.Lock()
	if s.locked() || s.phase == PhaseClosed {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	if confirm == nil || !confirm() {
		return
	}

	s.mu.Lock()
	s.formError = ""
	s.phase = PhaseSubmitting
	id := s.target.ID
	s.mu.Unlock()

	token, ok := s.guard.Token()
	if !ok {
		s.expire(ctx)
		return
	}

	if err := s.api.DeleteRecord(ctx, id, token); err != nil {
		s.fail(ctx, "delete", err)
		return
	}

	s.succeed()
	s.log.Info(ctx, "record deleted")
	if s.cb.OnDeleted != nil {
		s.cb.OnDeleted(id)
	}
	s.scheduleClose()
}

// Close ends the session. Idempotent; cancels a pending auto-close.
func (s *Session) Close() {
	s.mu.Lock()
	if s.phase == PhaseClosed {
		s.mu.Unlock()
		return
	}
	s.phase = PhaseClosed
	cancel := s.cancelClose
	s.cancelClose = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if s.cb.OnClosed != nil {
		s.cb.OnClosed()
	}
}

func (s *Session) succeed() {
	s.mu.Lock()
	s.phase = PhaseSucceeded
	s.mu.Unlock()
}

func (s *Session) scheduleClose() {
	s.mu.Lock()
	s.cancelClose = s.sched.AfterFunc(s.closeDelay, s.Close)
	s.mu.Unlock()
}

func (s *Session) fail(ctx context.Context, op string, err error) {
	if errors.Is(err, common.ErrUnauthorized) {
		s.log.Warn(ctx, op+" rejected, session invalid", "error", err)
		s.expire(ctx)
		return
	}

	msg := "failed to " + op + " record, please try again"
	if errors.Is(err, common.ErrNotFound) {
		// the record was probably already removed; the list may be stale
		// but is deliberately not refetched
		msg = "record no longer exists on the server"
	}

	s.mu.Lock()
	s.phase = PhaseFailed
	s.formError = msg
	s.mu.Unlock()
	s.log.Error(ctx, op+" failed", "error", err)
}

// expire handles an unauthorized rejection: the session credential is
// cleared globally and the edit session closes without a retry.
func (s *Session) expire(ctx context.Context) {
	s.mu.Lock()
	s.phase = PhaseClosed
	s.mu.Unlock()

	s.guard.End()
	s.log.Info(ctx, "session expired during edit")
	if s.cb.OnSessionExpired != nil {
		s.cb.OnSessionExpired()
	}
	if s.cb.OnClosed != nil {
		s.cb.OnClosed()
	}
}
