// Package study implements the quiz screen: category selection, the
// multiple-choice card loop with lives and requeue, and the completion
// summary.
package study

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rver/flashdeck/internal/deck"
	"github.com/rver/flashdeck/internal/history"
	"github.com/rver/flashdeck/internal/router"
	"github.com/rver/flashdeck/internal/screen"
	engine "github.com/rver/flashdeck/internal/study"
	"github.com/rver/flashdeck/internal/ui/components"
	"github.com/rver/flashdeck/internal/ui/layout"
	"github.com/rver/flashdeck/internal/ui/theme"
)

// StudyScreen runs a quiz over one category.
type StudyScreen struct {
	cards *deck.Store
	log   *history.Log

	menu       components.Menu
	categories []string

	session *engine.Session
	choice  components.MultiChoice

	// lastOutcome drives the feedback line while the window is open.
	lastOutcome engine.Outcome
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates a new StudyScreen in category selection.
func New(cards *deck.Store, log *history.Log) *StudyScreen {
	s := &StudyScreen{cards: cards, log: log}
	s.buildMenu()
	return s
}

func (s *StudyScreen) buildMenu() {
	s.categories = s.cards.Categories()

	items := make([]components.MenuItem, 0, len(s.categories))
	for _, cat := range s.categories {
		cat := cat
		count := len(s.cards.CardsIn(cat))
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%s (%d)", cat, count),
			Action: func() tea.Cmd {
				return s.startSession(cat)
			},
		})
	}
	s.menu = components.NewMenu(items)
}

func (s *StudyScreen) startSession(category string) tea.Cmd {
	s.session = engine.NewSession(category, s.cards.CardsIn(category))
	if s.session != nil {
		s.choice = s.newChoice()
	}
	return nil
}

// newChoice builds the option selector for the card under the cursor.
func (s *StudyScreen) newChoice() components.MultiChoice {
	card := s.session.Card()
	options := s.session.Options()

	correct := -1
	for i, o := range options {
		if strings.EqualFold(strings.TrimSpace(o), strings.TrimSpace(card.Answer)) {
			correct = i
			break
		}
	}

	mc := components.NewMultiChoice(card.Title, options, correct)
	if s.session.Browsing() || s.session.Completed() {
		// Past cards are shown resolved, with the correct option highlighted.
		mc.Submitted = true
	}
	return mc
}

func (s *StudyScreen) Init() tea.Cmd {
	return nil
}

func (s *StudyScreen) Title() string {
	if s.session == nil {
		return "Study"
	}
	return "Study: " + s.session.Category
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if s.session == nil {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if s.session.Completed() {
		return []layout.KeyHint{
			{Key: "R", Description: "Study again"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "←→", Description: "Browse"},
		{Key: "Esc", Description: "Quit session"},
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resolveMsg:
		return s.handleResolve(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *StudyScreen) handleResolve(msg resolveMsg) (screen.Screen, tea.Cmd) {
	if s.session == nil || !s.session.Resolve(msg.epoch) {
		return s, nil
	}
	if s.session.Completed() {
		s.session.Commit(s.log)
		return s, nil
	}
	s.choice = s.newChoice()
	return s, nil
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// Category selection.
	if s.session == nil {
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}

	// Completion summary.
	if s.session.Completed() {
		switch msg.String() {
		case "r":
			s.session.Reset()
			s.session = nil
			s.buildMenu()
			return s, nil
		case "esc", "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	switch msg.String() {
	case "esc":
		// Abandon the run and return to category selection. The reset bumps
		// the epoch, so a feedback tick still in flight lands on nothing.
		s.session.Reset()
		s.session = nil
		s.buildMenu()
		return s, nil

	case "left", "h":
		s.session.Prev()
		s.choice = s.newChoice()
		return s, nil

	case "right", "l":
		s.session.Next()
		s.choice = s.newChoice()
		return s, nil
	}

	if s.session.Waiting() || s.session.Browsing() {
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if !s.choice.Submitted {
		return s, cmd
	}

	// The selector locked in an answer; hand it to the session and schedule
	// the advance or requeue for when the feedback window closes.
	option := s.choice.Options[s.choice.ChosenIndex]
	out := s.session.Submit(option)
	if out == engine.OutcomeIgnored {
		s.choice.Submitted = false
		s.choice.ChosenIndex = -1
		return s, nil
	}
	s.lastOutcome = out

	epoch := s.session.Epoch()
	return s, tea.Tick(engine.FeedbackDelay, func(time.Time) tea.Msg {
		return resolveMsg{epoch: epoch}
	})
}

func (s *StudyScreen) View(width, height int) string {
	if s.session == nil {
		return s.viewSelect(width)
	}
	if s.session.Completed() {
		return s.viewSummary(width)
	}
	return s.viewQuiz(width)
}

func (s *StudyScreen) viewSelect(width int) string {
	if len(s.categories) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No flashcards yet. Add some first!")
	}

	title := theme.Title.Width(width).Render("Pick a category")
	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View())
	return "\n" + title + "\n\n" + menu
}

func (s *StudyScreen) viewQuiz(width int) string {
	var b strings.Builder

	seen := s.session.Cursor + 1
	status := fmt.Sprintf("Card %d of %d   Lives %s   Score %d",
		seen, s.session.Total, livesDisplay(s.session.Lives), s.session.Score)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render(status)))
	b.WriteString("\n")

	bar := components.NewProgressBar(s.session.Current, s.session.Total, min(width-4, 40))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	card := theme.Card.Width(min(width-4, 64)).Render(s.choice.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n")

	if s.session.Browsing() {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Reviewing an earlier card. Press → to return.")))
	} else if s.session.Waiting() {
		switch s.lastOutcome {
		case engine.OutcomeCorrect:
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Correct.Render("Correct!")))
		case engine.OutcomeIncorrect:
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Incorrect.Render("Not quite. This card will come back around.")))
		case engine.OutcomeRevealed:
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Incorrect.Render("Out of lives. The answer is shown above.")))
		}
	}

	return "\n" + b.String()
}

func (s *StudyScreen) viewSummary(width int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Session complete!"))
	b.WriteString("\n\n")

	score := fmt.Sprintf("Score %d / %d   Lives left %d",
		s.session.Score, s.session.Total, s.session.Lives)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Body.Bold(true).Render(score)))
	b.WriteString("\n\n")

	for _, r := range s.session.Results {
		mark := theme.Correct.Render("✓")
		if !r.Correct {
			mark = theme.Incorrect.Render("✗")
		}
		line := fmt.Sprintf("%s  %s — %s", mark, r.Title, r.AnswerRecord)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Body.Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render("R to study again, Esc to go back")))

	return "\n" + b.String()
}

func livesDisplay(lives int) string {
	if lives <= 0 {
		return theme.Incorrect.Render("0")
	}
	return strings.Repeat("♥", lives)
}

