package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/userdir/internal/client/editor"
	"github.com/dmitrijs2005/userdir/internal/client/models"
)

// editField pairs a prompt label with its session field key and the
// current value accessor.
type editField struct {
	key     string
	label   string
	current func(models.RecordFields) string
}

var editFields = []editField{
	{editor.FieldFirstName, "First name", func(f models.RecordFields) string { return f.FirstName }},
	{editor.FieldLastName, "Last name", func(f models.RecordFields) string { return f.LastName }},
	{editor.FieldEmail, "Email", func(f models.RecordFields) string { return f.Email }},
	{editor.FieldAvatarURL, "Avatar URL", func(f models.RecordFields) string { return f.AvatarURL }},
}

// Edit opens an edit session for one record on the current page, prompts
// for each field (empty input keeps the current value) and submits.
func (a *App) Edit(ctx context.Context, arg string) error {
	if !a.guard.Require(a.promptLogin) {
		return nil
	}
	id, err := strconv.Atoi(arg)
	if err != nil {
		printlnFn("Usage: edit <id>")
		return nil
	}
	rec, ok := a.list.RecordByID(id)
	if !ok {
		printlnFn("No record with id", id, "on the current page.")
		return nil
	}

	es := a.newEditSession(rec)
	printlnFn("Editing record", rec.ID, "(press Enter to keep the current value)")
	for _, f := range editFields {
		value, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", f.label, f.current(es.Fields())), a.out)
		if err != nil {
			es.Close()
			return err
		}
		if value != "" {
			es.SetField(f.key, value)
		}
	}

	es.Submit(ctx)
	a.reportEditOutcome(es, "Record updated.")
	return nil
}

// Delete removes one record on the current page after a y/N confirmation.
func (a *App) Delete(ctx context.Context, arg string) error {
	if !a.guard.Require(a.promptLogin) {
		return nil
	}
	id, err := strconv.Atoi(arg)
	if err != nil {
		printlnFn("Usage: delete <id>")
		return nil
	}
	rec, ok := a.list.RecordByID(id)
	if !ok {
		printlnFn("No record with id", id, "on the current page.")
		return nil
	}

	es := a.newEditSession(rec)
	confirmed := false
	es.Remove(ctx, func() bool {
		answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete %s %s (%d)? [y/N]", rec.FirstName, rec.LastName, rec.ID), a.out)
		if err != nil {
			return false
		}
		confirmed = strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
		return confirmed
	})

	if !confirmed {
		es.Close()
		printlnFn("Cancelled.")
		return nil
	}

	a.reportEditOutcome(es, "Record deleted.")
	return nil
}

// reportEditOutcome translates the session's final phase into user-facing
// output. Session expiry is already reported through the expiry callback.
func (a *App) reportEditOutcome(es *editor.Session, successMsg string) {
	switch es.Phase() {
	case editor.PhaseSucceeded:
		printlnFn(successMsg)
		a.renderList()
	case editor.PhaseClosed:
	default:
		for _, f := range editFields {
			if msg, ok := es.FieldErrors()[f.key]; ok {
				printlnFn("Error:", f.label+":", msg)
			}
		}
		if msg := es.FormError(); msg != "" {
			printlnFn("Error:", msg)
		}
		es.Close()
	}
}
