package app

import (
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rver/flashdeck/internal/deck"
	"github.com/rver/flashdeck/internal/history"
	"github.com/rver/flashdeck/internal/router"
	"github.com/rver/flashdeck/internal/screen"
	"github.com/rver/flashdeck/internal/screens/home"
	"github.com/rver/flashdeck/internal/store"
	"github.com/rver/flashdeck/internal/ui/layout"
	"github.com/rver/flashdeck/internal/ui/theme"
)

// Options carries the wired dependencies into the TUI.
type Options struct {
	Cards   *deck.Store
	History *history.Log
	Gateway store.Gateway
	Log     *slog.Logger
	Dark    bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	theme.Apply(opts.Dark)
	return AppModel{
		router: router.New(home.New(opts.Cards, opts.History)),
		opts:   opts,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			m.toggleTheme()
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// toggleTheme flips the palette and persists the choice. The stored value is
// the strings "true"/"false", matching what earlier releases wrote. A failed
// write is logged and swallowed; the in-memory palette already switched.
func (m *AppModel) toggleTheme() {
	dark := !theme.Dark()
	theme.Apply(dark)
	if m.opts.Gateway != nil {
		if err := m.opts.Gateway.Set(store.KeyDarkMode, fmt.Sprintf("%t", dark)); err != nil {
			m.opts.Log.Warn("persisting theme choice failed", "error", err)
		}
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title,
		m.opts.Cards.Len(), len(m.opts.Cards.Categories()), m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
		}
	}
	footerHints = append(footerHints,
		layout.KeyHint{Key: "Ctrl+T", Description: "Theme"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
