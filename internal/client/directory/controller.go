// Package directory owns the paginated, searchable record list.
//
// The controller keeps exactly one fetched page in memory. Local edits and
// deletes are reconciled into that page without a refetch; pagination truth
// (currentPage/totalPages) is deliberately left untouched by mutations, so
// a delete leaves a short page until the next navigation. That is an
// accepted inconsistency, not something to silently repair.
package directory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/dmitrijs2005/userdir/internal/client/api"
	"github.com/dmitrijs2005/userdir/internal/client/models"
	"github.com/dmitrijs2005/userdir/internal/client/session"
	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/logging"
)

// Phase is the per-fetch lifecycle of the list.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseLoaded  Phase = "loaded"
	PhaseErrored Phase = "errored"
)

// State is a consistent snapshot of the list for rendering.
type State struct {
	Phase        Phase
	CurrentPage  int
	TotalPages   int
	SearchTerm   string
	ErrorMessage string
}

// Controller drives page fetches and keeps the in-memory collection
// consistent with the authenticated user's view.
//
// At most one fetch result is ever applied per requested page change:
// every LoadPage takes a fresh sequence number, and a result is discarded
// unless its sequence is still the latest when it arrives. The winner is
// the last page the user requested, not the last response to arrive.
type Controller struct {
	mu sync.Mutex

	api              api.Client
	guard            *session.Guard
	log              logging.Logger
	onSessionExpired func()

	phase        Phase
	records      []models.Record
	currentPage  int
	totalPages   int
	searchTerm   string
	errorMessage string
	seq          uint64
}

func NewController(apiClient api.Client, guard *session.Guard, log logging.Logger, onSessionExpired func()) *Controller {
	return &Controller{
		api:              apiClient,
		guard:            guard,
		log:              log.With("component", "directory"),
		onSessionExpired: onSessionExpired,
		phase:            PhaseIdle,
		currentPage:      1,
		totalPages:       1,
	}
}

// LoadPage fetches the given page and applies the result unless a newer
// page request superseded this one while it was in flight.
func (c *Controller) LoadPage(ctx context.Context, page int) {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	// once a page has been loaded the total is known; requests beyond it
	// land on the last page instead of fetching an empty one
	if c.phase == PhaseLoaded && page > c.totalPages {
		page = c.totalPages
	}
	c.mu.Unlock()

	token, ok := c.guard.Token()
	if !ok {
		c.expireSession(ctx)
		return
	}

	seq := c.begin()
	c.log.Debug(ctx, "loading page", "page", page)
	p, err := c.api.ListPage(ctx, page, token)
	c.apply(ctx, seq, page, p, err)
}

// Next loads the following page, if any.
func (c *Controller) Next(ctx context.Context) {
	s := c.State()
	if s.CurrentPage >= s.TotalPages {
		return
	}
	c.LoadPage(ctx, s.CurrentPage+1)
}

// Prev loads the preceding page, if any.
func (c *Controller) Prev(ctx context.Context) {
	s := c.State()
	if s.CurrentPage <= 1 {
		return
	}
	c.LoadPage(ctx, s.CurrentPage-1)
}

func (c *Controller) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.phase = PhaseLoading
	c.errorMessage = ""
	return c.seq
}

func (c *Controller) apply(ctx context.Context, seq uint64, page int, p models.Page, err error) {
	c.mu.Lock()
	if seq != c.seq {
		c.mu.Unlock()
		c.log.Debug(ctx, "discarding superseded fetch", "page", page)
		return
	}

	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			c.mu.Unlock()
			c.log.Warn(ctx, "list fetch rejected", "page", page, "error", err)
			c.expireSession(ctx)
			return
		}
		// keep the previously displayed records, only surface the message
		c.phase = PhaseErrored
		c.errorMessage = "failed to load records"
		c.mu.Unlock()
		c.log.Error(ctx, "list fetch failed", "page", page, "error", err)
		return
	}

	c.phase = PhaseLoaded
	c.records = p.Records
	c.currentPage = p.Number
	// the server echoes out-of-range page numbers back; keep the current
	// page inside the range it reports so navigation can always recover
	if c.currentPage > p.TotalPages {
		c.currentPage = p.TotalPages
	}
	c.totalPages = p.TotalPages
	c.mu.Unlock()
	c.log.Info(ctx, "page loaded", "page", p.Number, "total_pages", p.TotalPages, "records", len(p.Records))
}

func (c *Controller) expireSession(ctx context.Context) {
	c.mu.Lock()
	c.phase = PhaseErrored
	c.errorMessage = "session expired"
	c.mu.Unlock()

	c.guard.End()
	c.log.Info(ctx, "session expired, leaving directory view")
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}

// ApplyUpdate reconciles a confirmed edit into the current page: the
// record with the matching ID is replaced, everything else is untouched.
// No refetch happens.
func (c *Controller) ApplyUpdate(rec models.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.records {
		if c.records[i].ID == rec.ID {
			c.records[i] = rec
			return
		}
	}
}

// ApplyDelete reconciles a confirmed delete: exactly the record with the
// matching ID is removed. currentPage and totalPages stay as they are.
func (c *Controller) ApplyDelete(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.records {
		if c.records[i].ID == id {
			c.records = append(c.records[:i], c.records[i+1:]...)
			return
		}
	}
}

// SetSearch changes the filter term. The base collection is untouched and
// nothing is refetched; only the derived view changes.
func (c *Controller) SetSearch(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchTerm = term
}

// Visible derives the filtered view: a case-insensitive substring match
// of the search term against "first last email". It never mutates the
// base records.
func (c *Controller) Visible() []models.Record {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.searchTerm == "" {
		return append([]models.Record(nil), c.records...)
	}

	term := strings.ToLower(c.searchTerm)
	out := make([]models.Record, 0, len(c.records))
	for _, r := range c.records {
		haystack := strings.ToLower(r.FirstName + " " + r.LastName + " " + r.Email)
		if strings.Contains(haystack, term) {
			out = append(out, r)
		}
	}
	return out
}

// RecordByID looks a record up on the currently loaded page.
func (c *Controller) RecordByID(id int) (models.Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range c.records {
		if r.ID == id {
			return r, true
		}
	}
	return models.Record{}, false
}

// State returns a consistent snapshot for the view shell.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Phase:        c.phase,
		CurrentPage:  c.currentPage,
		TotalPages:   c.totalPages,
		SearchTerm:   c.searchTerm,
		ErrorMessage: c.errorMessage,
	}
}

// PageWindow returns up to maxVisible page numbers centered on the current
// page, clamped to [1, totalPages]. Used for rendering pagination.
func (c *Controller) PageWindow(maxVisible int) []int {
	c.mu.Lock()
	page, total := c.currentPage, c.totalPages
	c.mu.Unlock()

	start := page - maxVisible/2
	if start < 1 {
		start = 1
	}
	end := start + maxVisible - 1
	if end > total {
		end = total
	}
	if end-start < maxVisible-1 {
		start = end - maxVisible + 1
		if start < 1 {
			start = 1
		}
	}

	pages := make([]int, 0, maxVisible)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}
