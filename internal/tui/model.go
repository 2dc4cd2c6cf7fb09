package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"dmguide/internal/guide"
)

// AppModel holds the TUI state.
type AppModel struct {
	// Study session
	State guide.ViewState

	// UI State
	WindowSize   tea.WindowSizeMsg
	AlgoCursor   int // Focused entry in the algorithms list
	DetailCursor int // Focused exercise/checklist row in the detail overlay
	WordWrap     int // Max text width, 0 = fit the window
	Flash        string

	// Help overlay
	ShowHelp    bool
	HelpContent string
	HelpScrollY int

	// Components
	Body         viewport.Model
	DetailBody   viewport.Model
	Progress     progress.Model
	HelpBar      help.Model
	Keys         KeyMap
	theme        Theme
	copyToClip   func(string) error
	bodyAnchor   int // Line of the focused element in Body, -1 if none
	detailAnchor int
}

// InitialModel returns the model for a fresh session starting at state.
func InitialModel(state guide.ViewState, wordWrap int) AppModel {
	m := AppModel{
		State:        state,
		WordWrap:     wordWrap,
		Body:         viewport.New(80, 20),
		DetailBody:   viewport.New(76, 18),
		Progress:     progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		HelpBar:      help.New(),
		Keys:         DefaultKeyMap(),
		theme:        ThemeFor(state.DarkMode),
		copyToClip:   clipboard.WriteAll,
		bodyAnchor:   -1,
		detailAnchor: -1,
	}
	m.WindowSize = tea.WindowSizeMsg{Width: 80, Height: 24}
	m.layout()
	return m
}

// SetClipboard replaces the clipboard writer. Used by tests.
func (m *AppModel) SetClipboard(fn func(string) error) {
	m.copyToClip = fn
}

func (m AppModel) Init() tea.Cmd {
	return nil
}
