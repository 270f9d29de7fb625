// Package cards implements the collection screen: browsing cards grouped by
// category, live search, and the add/edit/delete flows.
package cards

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rver/flashdeck/internal/deck"
	"github.com/rver/flashdeck/internal/router"
	"github.com/rver/flashdeck/internal/screen"
	"github.com/rver/flashdeck/internal/ui/components"
	"github.com/rver/flashdeck/internal/ui/layout"
	"github.com/rver/flashdeck/internal/ui/theme"
)

type mode int

const (
	modeBrowse mode = iota
	modeEdit
	modeDelete
)

// row is one display line in browse mode: a category header or a card.
type row struct {
	category string
	card     deck.Flashcard
	isCard   bool
}

const (
	fieldTitle = iota
	fieldAnswer
	fieldCategory
	fieldCount
)

// CardsScreen manages the flashcard collection.
type CardsScreen struct {
	store *deck.Store

	mode     mode
	rows     []row
	selected int
	expanded map[string]bool

	search    components.TextInput
	searching bool

	editingID int64 // 0 while adding a new card
	inputs    [fieldCount]components.TextInput
	focus     int
	errMsg    string

	deleteTarget deck.Flashcard
}

var _ screen.Screen = (*CardsScreen)(nil)
var _ screen.KeyHintProvider = (*CardsScreen)(nil)

// New creates a new CardsScreen in browse mode.
func New(store *deck.Store) *CardsScreen {
	s := &CardsScreen{
		store:    store,
		expanded: make(map[string]bool),
		search:   components.NewTextInput("Search title or category...", 64),
	}
	s.search.Model.Blur()
	s.buildRows()
	return s
}

// buildRows flattens the grouped collection into display rows. A non-empty
// search query expands every group so matches are visible.
func (s *CardsScreen) buildRows() {
	query := s.search.Value()
	groups := deck.GroupByCategory(s.store.Search(query))

	s.rows = s.rows[:0]
	for _, g := range groups {
		s.rows = append(s.rows, row{category: g.Name})
		if s.expanded[g.Name] || query != "" {
			for _, c := range g.Cards {
				s.rows = append(s.rows, row{category: g.Name, card: c, isCard: true})
			}
		}
	}
	if s.selected >= len(s.rows) {
		s.selected = len(s.rows) - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

func (s *CardsScreen) Init() tea.Cmd {
	return nil
}

func (s *CardsScreen) Title() string {
	switch s.mode {
	case modeEdit:
		if s.editingID == 0 {
			return "Add Card"
		}
		return "Edit Card"
	case modeDelete:
		return "Delete Card"
	}
	return "Flashcards"
}

func (s *CardsScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeEdit:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeDelete:
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Keep"},
		}
	}
	if s.searching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Open"},
		{Key: "A", Description: "Add"},
		{Key: "D", Description: "Delete"},
		{Key: "/", Description: "Search"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch s.mode {
	case modeEdit:
		return s.updateEdit(kmsg)
	case modeDelete:
		return s.updateDelete(kmsg)
	}
	return s.updateBrowse(kmsg)
}

func (s *CardsScreen) updateBrowse(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.searching {
		switch msg.String() {
		case "enter":
			s.searching = false
			s.search.Model.Blur()
			return s, nil
		case "esc":
			s.searching = false
			s.search.Model.Blur()
			s.search.Model.SetValue("")
			s.buildRows()
			return s, nil
		}
		var cmd tea.Cmd
		s.search, cmd = s.search.Update(msg)
		s.buildRows()
		return s, cmd
	}

	switch msg.String() {
	case "esc":
		if s.search.Value() != "" {
			s.search.Model.SetValue("")
			s.buildRows()
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "/":
		s.searching = true
		return s, s.search.Model.Focus()

	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}

	case "down", "j":
		if s.selected < len(s.rows)-1 {
			s.selected++
		}

	case "enter":
		if len(s.rows) == 0 {
			return s, nil
		}
		r := s.rows[s.selected]
		if r.isCard {
			s.openEditor(r.card)
		} else {
			s.expanded[r.category] = !s.expanded[r.category]
			s.buildRows()
		}

	case "a":
		s.openEditor(deck.Flashcard{})

	case "d":
		if len(s.rows) > 0 && s.rows[s.selected].isCard {
			s.deleteTarget = s.rows[s.selected].card
			s.mode = modeDelete
		}
	}

	return s, nil
}

func (s *CardsScreen) openEditor(card deck.Flashcard) {
	s.mode = modeEdit
	s.editingID = card.ID
	s.errMsg = ""
	s.focus = fieldTitle

	s.inputs[fieldTitle] = components.NewTextInput("Question...", 200)
	s.inputs[fieldAnswer] = components.NewTextInput("Answer...", 120)
	s.inputs[fieldCategory] = components.NewTextInput("Category...", 60)

	s.inputs[fieldTitle].Model.SetValue(card.Title)
	s.inputs[fieldAnswer].Model.SetValue(card.Answer)
	s.inputs[fieldCategory].Model.SetValue(card.Category)

	for i := range s.inputs {
		if i == s.focus {
			s.inputs[i].Model.Focus()
		} else {
			s.inputs[i].Model.Blur()
		}
	}
}

func (s *CardsScreen) setFocus(focus int) {
	s.focus = focus
	for i := range s.inputs {
		if i == s.focus {
			s.inputs[i].Model.Focus()
		} else {
			s.inputs[i].Model.Blur()
		}
	}
}

func (s *CardsScreen) updateEdit(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.mode = modeBrowse
		return s, nil

	case "tab", "down":
		s.setFocus((s.focus + 1) % fieldCount)
		return s, nil

	case "shift+tab", "up":
		s.setFocus((s.focus + fieldCount - 1) % fieldCount)
		return s, nil

	case "enter":
		// Saving stays disabled until every field has content.
		if !s.canSave() {
			s.errMsg = "All three fields are required."
			return s, nil
		}
		return s.save()
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	if s.canSave() {
		s.errMsg = ""
	}
	return s, cmd
}

// canSave reports whether every editor field is non-empty after trimming.
func (s *CardsScreen) canSave() bool {
	for i := range s.inputs {
		if strings.TrimSpace(s.inputs[i].Value()) == "" {
			return false
		}
	}
	return true
}

func (s *CardsScreen) save() (screen.Screen, tea.Cmd) {
	title := s.inputs[fieldTitle].Value()
	answer := s.inputs[fieldAnswer].Value()
	category := s.inputs[fieldCategory].Value()

	var err error
	if s.editingID == 0 {
		_, err = s.store.Add(title, answer, category)
	} else {
		_, err = s.store.Update(s.editingID, title, answer, category)
	}
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.mode = modeBrowse
	if cat := deck.CapitalizeCategory(category); cat != "" {
		s.expanded[cat] = true
	}
	s.buildRows()
	return s, nil
}

func (s *CardsScreen) updateDelete(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "y":
		s.store.Remove(s.deleteTarget.ID)
		s.mode = modeBrowse
		s.buildRows()
	case "n", "esc":
		s.mode = modeBrowse
	}
	return s, nil
}

func (s *CardsScreen) View(width, height int) string {
	switch s.mode {
	case modeEdit:
		return s.viewEdit(width)
	case modeDelete:
		return s.viewDelete(width)
	}
	return s.viewBrowse(width)
}

func (s *CardsScreen) viewBrowse(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	if s.searching || s.search.Value() != "" {
		bar := theme.Body.Render("  Search: ") + s.search.View()
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar))
		b.WriteString("\n\n")
	}

	if s.store.Len() == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n  No flashcards yet. Press A to add one."))
		return b.String()
	}
	if len(s.rows) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n  Nothing matches your search."))
		return b.String()
	}

	for i, r := range s.rows {
		selected := i == s.selected

		var line string
		var style lipgloss.Style
		if r.isCard {
			line = fmt.Sprintf("      %s  →  %s", r.card.Title, r.card.Answer)
			style = lipgloss.NewStyle().Foreground(theme.Text)
		} else {
			marker := "▸"
			if s.expanded[r.category] || s.search.Value() != "" {
				marker = "▾"
			}
			count := len(s.store.CardsIn(r.category))
			line = fmt.Sprintf("  %s %s (%d)", marker, r.category, count)
			style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		}
		if selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *CardsScreen) viewEdit(width int) string {
	labels := [fieldCount]string{"Question", "Answer", "Category"}

	var b strings.Builder
	for i := range s.inputs {
		label := theme.Body.Render(labels[i])
		if i == s.focus {
			label = theme.Selected.Render(labels[i])
		}
		b.WriteString(label + "\n" + s.inputs[i].View() + "\n\n")
	}

	if s.errMsg != "" {
		b.WriteString(theme.Incorrect.Render(s.errMsg) + "\n")
	}

	box := theme.Card.Width(min(width-4, 64)).Render(b.String())
	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}

func (s *CardsScreen) viewDelete(width int) string {
	msg := fmt.Sprintf("Delete %q?\n\n%s",
		s.deleteTarget.Title,
		theme.Hint.Render("Y to delete, N to keep"))
	box := theme.Card.Width(min(width-4, 64)).Render(msg)
	return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}
