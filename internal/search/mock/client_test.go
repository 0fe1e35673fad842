package mock

import (
	"context"
	"testing"

	"github.com/kitbuilder587/adversify/internal/search"
)

func TestMockClient_ScriptedPages(t *testing.T) {
	client := New().WithPages(
		&search.Page{
			Hits:      []search.RawHit{{Title: "One", Link: "https://example.com/1"}},
			NextStart: 11,
		},
		&search.Page{
			Hits: []search.RawHit{{Title: "Two", Link: "https://example.com/2"}},
		},
	)

	page, err := client.SearchPage(context.Background(), "engine", "q", 1)
	if err != nil {
		t.Fatalf("SearchPage() error = %v", err)
	}
	if len(page.Hits) != 1 || page.NextStart != 11 {
		t.Errorf("first page = %d hits, NextStart %d, want 1 and 11", len(page.Hits), page.NextStart)
	}

	page, err = client.SearchPage(context.Background(), "engine", "q", 11)
	if err != nil {
		t.Fatalf("SearchPage() error = %v", err)
	}
	if page.NextStart != 0 {
		t.Errorf("second page NextStart = %d, want 0", page.NextStart)
	}

	// exhausted script yields empty last pages
	page, err = client.SearchPage(context.Background(), "engine", "q", 21)
	if err != nil {
		t.Fatalf("SearchPage() error = %v", err)
	}
	if len(page.Hits) != 0 || page.NextStart != 0 {
		t.Errorf("exhausted page = %d hits, NextStart %d, want empty", len(page.Hits), page.NextStart)
	}

	if client.CallCount != 3 {
		t.Errorf("CallCount = %d, want 3", client.CallCount)
	}
	if client.LastCall.Start != 21 {
		t.Errorf("LastCall.Start = %d, want 21", client.LastCall.Start)
	}
}

func TestMockClient_Error(t *testing.T) {
	client := New().WithError(search.ErrSearchFailed)

	_, err := client.SearchPage(context.Background(), "engine", "q", 1)
	if err != search.ErrSearchFailed {
		t.Errorf("SearchPage() error = %v, want ErrSearchFailed", err)
	}
}
