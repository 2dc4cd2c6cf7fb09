package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"dmguide/internal/model"
)

// KeyMap lists every binding the study guide responds to.
type KeyMap struct {
	Sections    [5]key.Binding // Direct jumps, in model.Sections order
	NextSection key.Binding
	PrevSection key.Binding
	DarkMode    key.Binding
	Help        key.Binding
	Quit        key.Binding

	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	Toggle key.Binding // Accordion, reveal, tick
	Open   key.Binding // Detail overlay
	Close  key.Binding

	Flip     key.Binding
	NextCard key.Binding
	PrevCard key.Binding
	Copy     key.Binding

	// context narrows ShortHelp to what the current screen uses.
	context helpContext
}

type helpContext int

const (
	helpGeneral helpContext = iota
	helpAlgorithms
	helpFlashcards
	helpDetail
)

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		NextSection: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
		PrevSection: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev section")),
		DarkMode:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dark mode")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),

		Toggle: key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "toggle")),
		Open:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open detail")),
		Close:  key.NewBinding(key.WithKeys("esc", "x"), key.WithHelp("esc", "close")),

		Flip:     key.NewBinding(key.WithKeys(" ", "space", "f"), key.WithHelp("space", "flip")),
		NextCard: key.NewBinding(key.WithKeys("right", "n", "l"), key.WithHelp("→/n", "next card")),
		PrevCard: key.NewBinding(key.WithKeys("left", "p", "h"), key.WithHelp("←/p", "previous card")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
	}
	for i, sec := range model.Sections() {
		k := string(rune('1' + i))
		km.Sections[i] = key.NewBinding(key.WithKeys(k), key.WithHelp(k, sec.Title()))
	}
	return km
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	switch k.context {
	case helpAlgorithms:
		return []key.Binding{k.Up, k.Down, k.Toggle, k.Open, k.NextSection, k.DarkMode, k.Help, k.Quit}
	case helpFlashcards:
		return []key.Binding{k.Flip, k.PrevCard, k.NextCard, k.Copy, k.NextSection, k.DarkMode, k.Help, k.Quit}
	case helpDetail:
		return []key.Binding{k.Up, k.Down, k.Toggle, k.PageDown, k.Copy, k.Close}
	}
	return []key.Binding{k.NextSection, k.Down, k.PageDown, k.DarkMode, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Sections[:],
		{k.NextSection, k.PrevSection, k.DarkMode, k.Help, k.Quit},
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Toggle, k.Open, k.Close},
		{k.Flip, k.PrevCard, k.NextCard, k.Copy},
	}
}
