package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/userdir/internal/client/models"
)

func TestFormatPageWindow(t *testing.T) {
	tests := []struct {
		name    string
		pages   []int
		current int
		want    string
	}{
		{"middle", []int{1, 2, 3, 4, 5}, 3, "1 2 [3] 4 5"},
		{"first", []int{1, 2}, 1, "[1] 2"},
		{"single", []int{1}, 1, "[1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatPageWindow(tt.pages, tt.current); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestList_FetchesFirstPageWhenIdle(t *testing.T) {
	capturePrintln(t)

	apiClient := &fakeAPI{page: models.Page{Records: []models.Record{janet()}, TotalPages: 2}}
	store := &fakeStore{}
	_ = store.Save("tok", time.Hour)
	a := newTestApp(apiClient, store)

	if err := a.List(context.Background()); err != nil {
		t.Fatalf("List err: %v", err)
	}
	if apiClient.listCalls != 1 {
		t.Fatalf("expected one fetch, got %d", apiClient.listCalls)
	}
}

func TestList_RequiresLogin(t *testing.T) {
	out := capturePrintln(t)

	apiClient := &fakeAPI{}
	a := newTestApp(apiClient, &fakeStore{})

	if err := a.List(context.Background()); err != nil {
		t.Fatalf("List err: %v", err)
	}
	if apiClient.listCalls != 0 {
		t.Fatalf("fetched while logged out")
	}
	if !strings.Contains(out.String(), "Please login") {
		t.Fatalf("login prompt missing: %q", out.String())
	}
}

func TestPage_InvalidArgument(t *testing.T) {
	out := capturePrintln(t)

	apiClient := &fakeAPI{page: models.Page{Records: []models.Record{janet()}, TotalPages: 2}}
	a, _ := newLoadedApp(t, apiClient)
	fetched := apiClient.listCalls

	if err := a.Page(context.Background(), "abc"); err != nil {
		t.Fatalf("Page err: %v", err)
	}
	if apiClient.listCalls != fetched {
		t.Fatalf("fetched on invalid page argument")
	}
	if !strings.Contains(out.String(), "Usage: page") {
		t.Fatalf("usage message missing: %q", out.String())
	}
}

func TestSearch_FiltersWithoutRefetch(t *testing.T) {
	out := capturePrintln(t)

	apiClient := &fakeAPI{page: models.Page{
		Records: []models.Record{
			janet(),
			{ID: 3, FirstName: "Emma", LastName: "Wong", Email: "emma.wong@reqres.in", AvatarURL: "https://reqres.in/img/faces/3-image.jpg"},
		},
		TotalPages: 2,
	}}
	a, _ := newLoadedApp(t, apiClient)
	fetched := apiClient.listCalls

	if err := a.Search(context.Background(), "emma"); err != nil {
		t.Fatalf("Search err: %v", err)
	}
	if apiClient.listCalls != fetched {
		t.Fatalf("search triggered a refetch")
	}
	got := out.String()
	if !strings.Contains(got, "Emma") || strings.Contains(got, "Janet") {
		t.Fatalf("filter not applied: %q", got)
	}
	if !strings.Contains(got, "Filter: emma") {
		t.Fatalf("filter indicator missing: %q", got)
	}
}
