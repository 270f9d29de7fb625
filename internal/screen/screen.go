// Package screen defines the contract between the router and the screens it
// stacks. It sits in its own package so screens and the router can both
// import it without a cycle.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/rver/flashdeck/internal/ui/layout"
)

// Screen is one full-content view: home, the card collection, a study run,
// or the history list. The surrounding header and footer are drawn by the
// root model; View only fills the region between them.
type Screen interface {
	Init() tea.Cmd

	// Update may return a different Screen value; the router stores back
	// whatever comes out.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	View(width, height int) string

	// Title labels the header while the screen is active.
	Title() string
}

// KeyHintProvider lets a screen publish its own footer key hints. Screens
// without it get the router's stock hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
