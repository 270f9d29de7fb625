package history

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/rver/flashdeck/internal/history"
	"github.com/rver/flashdeck/internal/router"
	"github.com/rver/flashdeck/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTestScreen(t *testing.T, records ...history.Record) *HistoryScreen {
	t.Helper()
	log := history.NewLog(store.NewMemory(), nil)
	for _, rec := range records {
		log.Append(rec)
	}
	s := New(log)
	if msg := s.Init()(); msg != nil {
		s.Update(msg)
	}
	return s
}

func record(category string, score, total int, age time.Duration) history.Record {
	return history.Record{
		ID:       category,
		Category: category,
		Date:     time.Now().Add(-age),
		Score:    score,
		Total:    total,
		Results: []history.Result{
			{CardID: 1, Title: "Capital?", AnswerRecord: "Manila", Correct: true},
		},
		Attempts: map[int64]int{1: 1},
	}
}

func TestEmptyHistoryShowsHint(t *testing.T) {
	s := newTestScreen(t)
	if view := s.View(80, 24); !strings.Contains(view, "No sessions yet") {
		t.Errorf("empty view missing hint:\n%s", view)
	}
}

func TestRecordsListedMostRecentFirst(t *testing.T) {
	s := newTestScreen(t,
		record("Older", 1, 2, 48*time.Hour),
		record("Newer", 2, 2, time.Hour),
	)

	view := s.View(80, 24)
	newer := strings.Index(view, "Newer")
	older := strings.Index(view, "Older")
	if newer == -1 || older == -1 {
		t.Fatalf("both records should render:\n%s", view)
	}
	if newer > older {
		t.Error("most recent record should be listed first")
	}
}

func TestEnterTogglesDetails(t *testing.T) {
	s := newTestScreen(t, record("Geography", 1, 1, time.Hour))

	if view := s.View(80, 24); strings.Contains(view, "Manila") {
		t.Fatal("details visible before expanding")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	view := s.View(80, 24)
	if !strings.Contains(view, "Manila") {
		t.Errorf("expanded record should show per-card results:\n%s", view)
	}
	if !strings.Contains(view, "1 answers") {
		t.Errorf("expanded record should show attempt stats:\n%s", view)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if view := s.View(80, 24); strings.Contains(view, "Manila") {
		t.Error("details should collapse on second enter")
	}
}

func TestNavigationClampsToList(t *testing.T) {
	s := newTestScreen(t,
		record("One", 1, 1, time.Hour),
		record("Two", 1, 1, 2*time.Hour),
	)

	s.Update(keyPress('k'))
	if s.selected != 0 {
		t.Errorf("selected = %d before any down movement, want 0", s.selected)
	}
	s.Update(keyPress('j'))
	s.Update(keyPress('j'))
	if s.selected != 1 {
		t.Errorf("selected = %d after moving past the end, want 1", s.selected)
	}
}

func TestEscPopsScreen(t *testing.T) {
	s := newTestScreen(t)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc should produce a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc should pop the screen")
	}
}
