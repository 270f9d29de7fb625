package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rver/flashdeck/internal/ui/theme"
)

// ProgressBar shows how far through the deck a study run has advanced.
// Requeued cards keep Total fixed, so the bar only ever moves forward.
type ProgressBar struct {
	Done  int
	Total int
	Width int
}

func NewProgressBar(done, total, width int) ProgressBar {
	return ProgressBar{Done: done, Total: total, Width: width}
}

func (p ProgressBar) View() string {
	count := fmt.Sprintf(" %d/%d", p.Done, p.Total)

	barWidth := p.Width - lipgloss.Width(count)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := 0
	if p.Total > 0 {
		filled = barWidth * p.Done / p.Total
	}
	if filled > barWidth {
		filled = barWidth
	}

	return theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)) +
		theme.Hint.Render(count)
}
