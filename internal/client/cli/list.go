package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/userdir/internal/client/directory"
)

// List shows the current page, fetching page 1 first if nothing has been
// loaded yet.
func (a *App) List(ctx context.Context) error {
	if !a.guard.Require(a.promptLogin) {
		return nil
	}
	if a.list.State().Phase == directory.PhaseIdle {
		a.list.LoadPage(ctx, 1)
	}
	a.renderList()
	return nil
}

func (a *App) Next(ctx context.Context) error {
	if !a.guard.Require(a.promptLogin) {
		return nil
	}
	a.list.Next(ctx)
	a.renderList()
	return nil
}

func (a *App) Prev(ctx context.Context) error {
	if !a.guard.Require(a.promptLogin) {
		return nil
	}
	a.list.Prev(ctx)
	a.renderList()
	return nil
}

func (a *App) Page(ctx context.Context, arg string) error {
	if !a.guard.Require(a.promptLogin) {
		return nil
	}
	page, err := strconv.Atoi(arg)
	if err != nil || page < 1 {
		printlnFn("Usage: page <number>")
		return nil
	}
	a.list.LoadPage(ctx, page)
	a.renderList()
	return nil
}

// Search filters the already-fetched page; an empty term clears the filter.
// Nothing is refetched.
func (a *App) Search(ctx context.Context, term string) error {
	if !a.guard.Require(a.promptLogin) {
		return nil
	}
	a.list.SetSearch(term)
	a.renderList()
	return nil
}

func (a *App) renderList() {
	s := a.list.State()
	if s.ErrorMessage != "" {
		printlnFn("Error:", s.ErrorMessage)
	}
	if s.Phase != directory.PhaseLoaded && s.Phase != directory.PhaseErrored {
		return
	}

	records := a.list.Visible()
	if len(records) == 0 {
		printlnFn("No records to show.")
	}
	for _, r := range records {
		printlnFn(fmt.Sprintf("%4d  %-24s %-32s %s", r.ID, r.FirstName+" "+r.LastName, r.Email, r.AvatarURL))
	}

	printlnFn(fmt.Sprintf("Page %d of %d: %s", s.CurrentPage, s.TotalPages, formatPageWindow(a.list.PageWindow(5), s.CurrentPage)))
	if s.SearchTerm != "" {
		printlnFn("Filter:", s.SearchTerm)
	}
}

// formatPageWindow renders the pagination strip, e.g. "1 [2] 3 4".
func formatPageWindow(pages []int, current int) string {
	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		if p == current {
			parts = append(parts, fmt.Sprintf("[%d]", p))
			continue
		}
		parts = append(parts, strconv.Itoa(p))
	}
	return strings.Join(parts, " ")
}
