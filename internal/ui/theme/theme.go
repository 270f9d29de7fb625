// Package theme holds the color palette and shared lipgloss styles. Two
// palettes exist, dark and light; Apply swaps between them at runtime and
// rebuilds every derived style, so callers that read the style vars on each
// render pick up the switch immediately.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette. Populated by Apply.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
)

// Components
var (
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
)

var dark bool

func init() {
	Apply(true)
}

// Dark reports whether the dark palette is active.
func Dark() bool { return dark }

// Apply activates the dark or light palette and rebuilds all styles.
func Apply(useDark bool) {
	dark = useDark

	if useDark {
		Primary = lipgloss.Color("#8B5CF6")   // Vivid Purple
		Secondary = lipgloss.Color("#14B8A6") // Teal
		Accent = lipgloss.Color("#F97316")    // Orange
		Success = lipgloss.Color("#22C55E")   // Green
		Error = lipgloss.Color("#F43F5E")     // Rose
		Text = lipgloss.Color("#F8FAFC")      // White
		TextDim = lipgloss.Color("#94A3B8")   // Slate
		Bg = lipgloss.Color("#0F172A")        // Deep Navy
		BgCard = lipgloss.Color("#1E293B")    // Dark Slate
		Border = lipgloss.Color("#334155")    // Slate
	} else {
		Primary = lipgloss.Color("#6D28D9")   // Deep Purple
		Secondary = lipgloss.Color("#0F766E") // Dark Teal
		Accent = lipgloss.Color("#C2410C")    // Burnt Orange
		Success = lipgloss.Color("#15803D")   // Green
		Error = lipgloss.Color("#BE123C")     // Rose
		Text = lipgloss.Color("#0F172A")      // Near Black
		TextDim = lipgloss.Color("#64748B")   // Slate
		Bg = lipgloss.Color("#F8FAFC")        // Off White
		BgCard = lipgloss.Color("#E2E8F0")    // Light Slate
		Border = lipgloss.Color("#CBD5E1")    // Slate
	}

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	ProgressFilled = lipgloss.NewStyle().
		Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
		Background(Border)
}
