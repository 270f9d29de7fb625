package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/rver/flashdeck/internal/ui/theme"
)

// optionLabels caps a card at four answer options, A through D.
var optionLabels = []string{"A", "B", "C", "D"}

// MultiChoice presents a card title with its shuffled answer options.
// After a pick, the correct option shows green, a wrong pick shows red,
// and input is ignored until the owner clears Submitted for the next card.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

func (m MultiChoice) Init() tea.Cmd {
	return nil
}

func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "1", "2", "3", "4":
		// Digit keys pick and submit in one stroke.
		if idx := int(key[0] - '1'); idx < len(m.Options) {
			m.Selected = idx
			m.Submitted = true
			m.ChosenIndex = idx
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	}

	return m, nil
}

func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		b.WriteString(m.renderOption(i, opt))
		b.WriteString("\n")
	}

	return b.String()
}

func (m MultiChoice) renderOption(i int, opt string) string {
	prefix := "  "
	if i == m.Selected && !m.Submitted {
		prefix = "▸ "
	}
	line := fmt.Sprintf("%s%s)  %s", prefix, optionLabels[i], opt)

	if m.Submitted {
		switch i {
		case m.CorrectIndex:
			return theme.Correct.Render(line)
		case m.ChosenIndex:
			return theme.Incorrect.Render(line)
		default:
			return theme.Hint.Render(line)
		}
	}

	if i == m.Selected {
		return theme.Selected.Render(line)
	}
	return theme.Unselected.Render(line)
}

// IsCorrect reports whether the submitted pick was the right answer.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}
