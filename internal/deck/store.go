package deck

import (
	"log/slog"
	"strings"
	"time"

	"github.com/rver/flashdeck/internal/store"
)

// Store holds the in-memory flashcard collection and keeps it synced to the
// persistence gateway. It is not safe for concurrent use; the TUI event loop
// is the only mutator.
type Store struct {
	gw     store.Gateway
	log    *slog.Logger
	cards  []Flashcard
	lastID int64
	now    func() time.Time
}

// CategoryGroup is one category with its cards, in insertion order.
type CategoryGroup struct {
	Name  string
	Cards []Flashcard
}

// NewStore creates a Store and loads the persisted collection. An absent or
// malformed persisted value degrades to an empty collection; the failure is
// logged, never returned.
func NewStore(gw store.Gateway, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	s := &Store{gw: gw, log: log, now: time.Now}
	s.load()
	return s
}

func (s *Store) load() {
	var cards []Flashcard
	ok, err := s.gw.Get(store.KeyFlashcards, &cards)
	if err != nil {
		s.log.Warn("loading flashcards failed, starting empty", "error", err)
		return
	}
	if !ok {
		return
	}
	s.cards = cards
	for _, c := range cards {
		if c.ID > s.lastID {
			s.lastID = c.ID
		}
	}
}

// persist writes the full collection back through the gateway. Failures are
// logged and swallowed; the in-memory state stays authoritative.
func (s *Store) persist() {
	if err := s.gw.Set(store.KeyFlashcards, s.cards); err != nil {
		s.log.Warn("persisting flashcards failed", "error", err)
	}
}

// nextID returns a fresh unique id. IDs are millisecond timestamps, bumped
// past the last issued id when two adds land in the same millisecond.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Add validates and appends a new card, assigning a fresh id.
func (s *Store) Add(title, answer, category string) (Flashcard, error) {
	c, err := NewFlashcard(s.nextID(), title, answer, category)
	if err != nil {
		return Flashcard{}, err
	}
	s.cards = append(s.cards, c)
	s.persist()
	return c, nil
}

// Update merges the given fields into the card with the given id. Empty
// fields keep their current value. Unknown ids are a no-op.
func (s *Store) Update(id int64, title, answer, category string) (Flashcard, error) {
	for i, c := range s.cards {
		if c.ID != id {
			continue
		}
		if strings.TrimSpace(title) == "" {
			title = c.Title
		}
		if strings.TrimSpace(answer) == "" {
			answer = c.Answer
		}
		if strings.TrimSpace(category) == "" {
			category = c.Category
		}
		updated, err := NewFlashcard(id, title, answer, category)
		if err != nil {
			return Flashcard{}, err
		}
		s.cards[i] = updated
		s.persist()
		return updated, nil
	}
	return Flashcard{}, nil
}

// Remove deletes the card with the given id. Unknown ids are a no-op.
func (s *Store) Remove(id int64) {
	kept := s.cards[:0]
	removed := false
	for _, c := range s.cards {
		if c.ID == id {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	s.cards = kept
	if removed {
		s.persist()
	}
}

// All returns a copy of the collection in stored order.
func (s *Store) All() []Flashcard {
	out := make([]Flashcard, len(s.cards))
	copy(out, s.cards)
	return out
}

// Len returns the number of stored cards.
func (s *Store) Len() int {
	return len(s.cards)
}

// Search returns cards whose title or category contains query,
// case-insensitively. An empty query matches everything.
func (s *Store) Search(query string) []Flashcard {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.All()
	}
	var out []Flashcard
	for _, c := range s.cards {
		if strings.Contains(strings.ToLower(c.Title), query) ||
			strings.Contains(strings.ToLower(c.Category), query) {
			out = append(out, c)
		}
	}
	return out
}

// GroupByCategory partitions cards into category groups, preserving the
// first-seen order of categories and the stored order of cards within each.
func GroupByCategory(cards []Flashcard) []CategoryGroup {
	index := make(map[string]int)
	var groups []CategoryGroup
	for _, c := range cards {
		i, ok := index[c.Category]
		if !ok {
			i = len(groups)
			index[c.Category] = i
			groups = append(groups, CategoryGroup{Name: c.Category})
		}
		groups[i].Cards = append(groups[i].Cards, c)
	}
	return groups
}

// Categories returns the distinct non-empty categories in first-seen order.
func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range s.cards {
		if c.Category == "" || seen[c.Category] {
			continue
		}
		seen[c.Category] = true
		out = append(out, c.Category)
	}
	return out
}

// CardsIn returns the cards in the given category, in stored order.
func (s *Store) CardsIn(category string) []Flashcard {
	var out []Flashcard
	for _, c := range s.cards {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}
