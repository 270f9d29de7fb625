package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rver/flashdeck/internal/deck"
	"github.com/rver/flashdeck/internal/history"
	"github.com/rver/flashdeck/internal/router"
	"github.com/rver/flashdeck/internal/screen"
	"github.com/rver/flashdeck/internal/screens/cards"
	historyscreen "github.com/rver/flashdeck/internal/screens/history"
	"github.com/rver/flashdeck/internal/screens/study"
	"github.com/rver/flashdeck/internal/ui/components"
	"github.com/rver/flashdeck/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu    components.Menu
	cards   *deck.Store
	history *history.Log
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(cardStore *deck.Store, log *history.Log) *HomeScreen {
	items := []components.MenuItem{
		{Label: "STUDY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: study.New(cardStore, log)}
			}
		}},
		{Label: "FLASHCARDS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: cards.New(cardStore)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: historyscreen.New(log)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:    components.NewMenu(items),
		cards:   cardStore,
		history: log,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("Flashdeck"))
	sections = append(sections, theme.Subtitle.Width(width).Render(
		"Study smarter, five lives at a time"))

	stats := fmt.Sprintf("%d cards in %d categories   %d sessions studied",
		h.cards.Len(), len(h.cards.Categories()), len(h.history.List()))
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render(stats)))

	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center,
		h.menu.View()))

	return "\n" + strings.Join(sections, "\n\n")
}

func (h *HomeScreen) Title() string {
	return "Home"
}
