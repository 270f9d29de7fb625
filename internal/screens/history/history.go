package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/rver/flashdeck/internal/history"
	"github.com/rver/flashdeck/internal/router"
	"github.com/rver/flashdeck/internal/screen"
	"github.com/rver/flashdeck/internal/ui/layout"
	"github.com/rver/flashdeck/internal/ui/theme"
)

type historyLoadedMsg struct {
	Records []history.Record
}

// HistoryScreen displays past study sessions, most recent first.
type HistoryScreen struct {
	log      *history.Log
	records  []history.Record
	selected int
	expanded map[int]bool
	loaded   bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(log *history.Log) *HistoryScreen {
	return &HistoryScreen{
		log:      log,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		return historyLoadedMsg{Records: s.log.List()}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.records = msg.Records
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Go study!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.records {
		dateStr := rec.Date.Format("Jan 02, 2006 15:04")

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %d/%d  %.0f%% correct",
			prefix, dateStr, rec.Category, rec.Score, rec.Total,
			history.CorrectRate(rec))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			stats := history.AggregateAttempts(rec)
			statLine := fmt.Sprintf("    %d answers, %.1f per card on average",
				stats.Total, stats.Average)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(statLine)))
			b.WriteString("\n")

			for _, r := range rec.Results {
				mark := theme.Correct.Render("✓")
				if !r.Correct {
					mark = theme.Incorrect.Render("✗")
				}
				resLine := fmt.Sprintf("    %s %s — %s", mark, r.Title, r.AnswerRecord)
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render(resLine)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
