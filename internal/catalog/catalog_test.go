package catalog_test

import (
	"errors"
	"testing"

	"ostforge/internal/catalog"
	"ostforge/internal/services"
)

func TestLoadAlbum(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cat.Len() != 55 {
		t.Fatalf("unexpected track count: %d", cat.Len())
	}

	entries := cat.Entries()
	for i, entry := range entries {
		if entry.Number != i+1 {
			t.Fatalf("entry %d has number %d", i, entry.Number)
		}
	}

	first, ok := cat.ByNumber(1)
	if !ok || first.Title != "Chrono Ark Intro Theme" {
		t.Fatalf("unexpected first track: %+v", first)
	}
	if _, ok := cat.ByNumber(0); ok {
		t.Fatal("ByNumber(0) should not resolve")
	}
	if _, ok := cat.ByNumber(cat.Len() + 1); ok {
		t.Fatal("ByNumber past the end should not resolve")
	}
}

func TestByTitleNormalizes(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	entry, ok := cat.ByTitle("crush & contort (misty garden 2 battle theme)")
	if !ok {
		t.Fatal("case-insensitive title lookup failed")
	}
	if entry.Number != 9 {
		t.Fatalf("unexpected track number: %d", entry.Number)
	}
	if _, ok := cat.ByTitle("no such track"); ok {
		t.Fatal("unknown title should not resolve")
	}
}

func TestNewRejectsSparseNumbers(t *testing.T) {
	_, err := catalog.New([]catalog.Entry{
		{Number: 1, Title: "One"},
		{Number: 3, Title: "Three"},
	})
	if err == nil {
		t.Fatal("expected error for sparse numbering")
	}
	if !errors.Is(err, services.ErrCatalogInvariant) {
		t.Fatalf("expected ErrCatalogInvariant, got %v", err)
	}
}

func TestNewRejectsDuplicateNormalizedTitles(t *testing.T) {
	_, err := catalog.New([]catalog.Entry{
		{Number: 1, Title: "Show Time"},
		{Number: 2, Title: "show_time"},
	})
	if !errors.Is(err, services.ErrCatalogInvariant) {
		t.Fatalf("expected ErrCatalogInvariant, got %v", err)
	}
}

func TestNewRejectsAliasCollidingWithOtherEntry(t *testing.T) {
	_, err := catalog.New([]catalog.Entry{
		{Number: 1, Title: "One"},
		{Number: 2, Title: "Two", Aliases: []string{"one"}},
	})
	if !errors.Is(err, services.ErrCatalogInvariant) {
		t.Fatalf("expected ErrCatalogInvariant, got %v", err)
	}
}

func TestNewAllowsSameEntryNameReuse(t *testing.T) {
	// A loop-pair entry may pin a loop asset whose name normalizes to
	// the entry's own title, as Restart does.
	_, err := catalog.New([]catalog.Entry{
		{Number: 1, Title: "Restart", Role: catalog.RoleLoopPair, LoopName: "ReStart"},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
}

func TestBodyPasses(t *testing.T) {
	if got := (catalog.Entry{}).BodyPasses(); got != 1 {
		t.Fatalf("zero passes should mean one play, got %d", got)
	}
	if got := (catalog.Entry{Passes: 2}).BodyPasses(); got != 2 {
		t.Fatalf("unexpected passes: %d", got)
	}
}
