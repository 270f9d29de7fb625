package deck

import (
	"errors"
	"testing"
	"time"

	"github.com/rver/flashdeck/internal/store"
)

func newTestStore() (*Store, *store.Memory) {
	gw := store.NewMemory()
	s := NewStore(gw, nil)
	return s, gw
}

func mustAdd(t *testing.T, s *Store, title, answer, category string) Flashcard {
	t.Helper()
	c, err := s.Add(title, answer, category)
	if err != nil {
		t.Fatalf("Add(%q): %v", title, err)
	}
	return c
}

func TestAddAssignsUniqueIDs(t *testing.T) {
	s, _ := newTestStore()
	// Freeze the clock so every add lands in the same millisecond.
	fixed := time.UnixMilli(1700000000000)
	s.now = func() time.Time { return fixed }

	a := mustAdd(t, s, "Q1", "A1", "geo")
	b := mustAdd(t, s, "Q2", "A2", "geo")
	c := mustAdd(t, s, "Q3", "A3", "geo")

	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("ids not unique: %d %d %d", a.ID, b.ID, c.ID)
	}
	if b.ID <= a.ID || c.ID <= b.ID {
		t.Errorf("ids not increasing: %d %d %d", a.ID, b.ID, c.ID)
	}
}

func TestAddCapitalizesCategory(t *testing.T) {
	s, _ := newTestStore()
	c := mustAdd(t, s, "Q", "A", "  gEOGRAPHY ")
	if c.Category != "Geography" {
		t.Errorf("Category = %q, want %q", c.Category, "Geography")
	}
}

func TestAddRejectsEmptyFields(t *testing.T) {
	s, _ := newTestStore()
	cases := []struct{ title, answer, category string }{
		{"", "A", "C"},
		{"Q", "   ", "C"},
		{"Q", "A", ""},
	}
	for _, tc := range cases {
		if _, err := s.Add(tc.title, tc.answer, tc.category); err == nil {
			t.Errorf("Add(%q, %q, %q) succeeded, want error", tc.title, tc.answer, tc.category)
		}
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d after rejected adds, want 0", s.Len())
	}
}

func TestMutationsPersist(t *testing.T) {
	s, gw := newTestStore()
	c := mustAdd(t, s, "Q", "A", "geo")

	reloaded := NewStore(gw, nil)
	if reloaded.Len() != 1 {
		t.Fatalf("reloaded Len = %d, want 1", reloaded.Len())
	}
	if reloaded.All()[0] != c {
		t.Errorf("reloaded card = %+v, want %+v", reloaded.All()[0], c)
	}

	s.Remove(c.ID)
	reloaded = NewStore(gw, nil)
	if reloaded.Len() != 0 {
		t.Errorf("reloaded Len after Remove = %d, want 0", reloaded.Len())
	}
}

func TestLoadMalformedValueFailsSoft(t *testing.T) {
	gw := store.NewMemory()
	gw.SetRaw(store.KeyFlashcards, `{"oops": "not a sequence"}`)

	s := NewStore(gw, nil)
	if s.Len() != 0 {
		t.Errorf("Len = %d for malformed stored value, want 0", s.Len())
	}

	// The store remains usable.
	mustAdd(t, s, "Q", "A", "geo")
	if s.Len() != 1 {
		t.Errorf("Len = %d after add, want 1", s.Len())
	}
}

func TestPersistFailureIsSwallowed(t *testing.T) {
	s, gw := newTestStore()
	gw.SetErr = errors.New("disk full")

	c := mustAdd(t, s, "Q", "A", "geo")
	if s.Len() != 1 {
		t.Errorf("in-memory state lost on persist failure")
	}
	if c.ID == 0 {
		t.Error("expected a real id despite persist failure")
	}
}

func TestUpdateMergesByID(t *testing.T) {
	s, _ := newTestStore()
	c := mustAdd(t, s, "Q", "A", "geo")

	updated, err := s.Update(c.ID, "Q2", "", "")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Q2" {
		t.Errorf("Title = %q, want %q", updated.Title, "Q2")
	}
	if updated.Answer != "A" || updated.Category != "Geo" {
		t.Errorf("unchanged fields not kept: %+v", updated)
	}

	// Unknown id is a no-op.
	none, err := s.Update(99, "X", "Y", "Z")
	if err != nil {
		t.Fatalf("Update unknown id: %v", err)
	}
	if none != (Flashcard{}) {
		t.Errorf("expected zero Flashcard for unknown id, got %+v", none)
	}
}

func TestSearchMatchesTitleOrCategory(t *testing.T) {
	s, _ := newTestStore()
	mustAdd(t, s, "What is the capital?", "Manila", "Geography")
	mustAdd(t, s, "What is JSX?", "A syntax extension", "JavaScript")
	mustAdd(t, s, "Geothermal energy source?", "The Earth's heat", "Science")

	got := s.Search("geo")
	if len(got) != 2 {
		t.Fatalf("Search(geo) returned %d cards, want 2", len(got))
	}
	for _, c := range got {
		if c.Category == "JavaScript" {
			t.Errorf("Search(geo) matched %+v", c)
		}
	}

	if n := len(s.Search("")); n != 3 {
		t.Errorf("empty query returned %d cards, want all 3", n)
	}
}

func TestGroupByCategoryPreservesFirstSeenOrder(t *testing.T) {
	s, _ := newTestStore()
	mustAdd(t, s, "Q1", "A1", "beta")
	mustAdd(t, s, "Q2", "A2", "alpha")
	mustAdd(t, s, "Q3", "A3", "beta")

	groups := GroupByCategory(s.All())
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Name != "Beta" || groups[1].Name != "Alpha" {
		t.Errorf("group order = [%s %s], want [Beta Alpha]", groups[0].Name, groups[1].Name)
	}
	if len(groups[0].Cards) != 2 {
		t.Errorf("Beta has %d cards, want 2", len(groups[0].Cards))
	}
}

func TestCategoriesAndCardsIn(t *testing.T) {
	s, _ := newTestStore()
	mustAdd(t, s, "Q1", "A1", "geo")
	mustAdd(t, s, "Q2", "A2", "js")
	mustAdd(t, s, "Q3", "A3", "geo")

	cats := s.Categories()
	if len(cats) != 2 || cats[0] != "Geo" || cats[1] != "Js" {
		t.Errorf("Categories = %v, want [Geo Js]", cats)
	}
	if n := len(s.CardsIn("Geo")); n != 2 {
		t.Errorf("CardsIn(Geo) = %d cards, want 2", n)
	}
}

func TestLoadSample(t *testing.T) {
	s, _ := newTestStore()
	n := s.LoadSample()
	if s.Len() != n {
		t.Errorf("Len = %d, want %d", s.Len(), n)
	}
	if len(s.Categories()) != 2 {
		t.Errorf("sample categories = %v, want 2 entries", s.Categories())
	}
}
