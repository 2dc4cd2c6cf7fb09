package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"dmguide/internal/debug"
	"dmguide/internal/guide"
	"dmguide/internal/model"
)

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.layout()
		return m, nil

	case tea.KeyMsg:
		m.Flash = ""
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Overlays capture input.
		if m.ShowHelp {
			m.updateHelp(msg)
			return m, nil
		}
		if m.State.DetailOpen() {
			m.updateDetail(msg)
			return m, nil
		}

		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.Keys.Help):
			m.ShowHelp = true
			m.HelpScrollY = 0
			m.HelpContent = renderMarkdown(model.HelpMarkdown(), m.dialogWidth()-4, m.State.DarkMode)
			return m, nil
		case key.Matches(msg, m.Keys.DarkMode):
			m.dispatch(guide.ToggleDarkMode{})
		case key.Matches(msg, m.Keys.NextSection):
			m.stepSection(1)
		case key.Matches(msg, m.Keys.PrevSection):
			m.stepSection(-1)
		case key.Matches(msg, m.Keys.PageUp):
			m.Body.SetYOffset(m.Body.YOffset - m.Body.Height/2)
			return m, nil
		case key.Matches(msg, m.Keys.PageDown):
			m.Body.SetYOffset(m.Body.YOffset + m.Body.Height/2)
			return m, nil
		default:
			if i := m.sectionKey(msg); i >= 0 {
				m.dispatch(guide.SelectSection{Section: model.Sections()[i]})
				break
			}
			switch m.State.Section {
			case model.SectionAlgorithms:
				m.updateAlgorithms(msg)
			case model.SectionFlashcards:
				m.updateFlashcards(msg)
			default:
				m.scrollBody(msg)
				return m, nil
			}
		}
	}

	m.refresh()
	return m, nil
}

func (m *AppModel) sectionKey(msg tea.KeyMsg) int {
	for i, b := range m.Keys.Sections {
		if key.Matches(msg, b) {
			return i
		}
	}
	return -1
}

func (m *AppModel) stepSection(delta int) {
	secs := model.Sections()
	i := (m.State.Section.Index() + delta + len(secs)) % len(secs)
	m.dispatch(guide.SelectSection{Section: secs[i]})
}

func (m *AppModel) scrollBody(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.Keys.Up):
		m.Body.SetYOffset(m.Body.YOffset - 1)
	case key.Matches(msg, m.Keys.Down):
		m.Body.SetYOffset(m.Body.YOffset + 1)
	}
}

func (m *AppModel) updateAlgorithms(msg tea.KeyMsg) {
	ids := model.AlgorithmIDs()
	switch {
	case key.Matches(msg, m.Keys.Up):
		if m.AlgoCursor > 0 {
			m.AlgoCursor--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.AlgoCursor < len(ids)-1 {
			m.AlgoCursor++
		}
	case key.Matches(msg, m.Keys.Toggle):
		m.dispatch(guide.ToggleAlgorithm{ID: ids[m.AlgoCursor]})
	case key.Matches(msg, m.Keys.Open):
		m.DetailCursor = 0
		m.DetailBody.SetYOffset(0)
		m.dispatch(guide.OpenDetail{ID: ids[m.AlgoCursor]})
	}
}

func (m *AppModel) updateFlashcards(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.Keys.Flip):
		m.dispatch(guide.FlipCard{})
	case key.Matches(msg, m.Keys.NextCard):
		m.dispatch(guide.NextCard{})
	case key.Matches(msg, m.Keys.PrevCard):
		m.dispatch(guide.PreviousCard{})
	case key.Matches(msg, m.Keys.Copy):
		m.copy(m.State.CardText(), "card")
	}
}

func (m *AppModel) updateDetail(msg tea.KeyMsg) {
	rows := m.detailRows()
	switch {
	case key.Matches(msg, m.Keys.Close), msg.String() == "q":
		m.dispatch(guide.CloseDetail{})
		m.DetailCursor = 0
	case key.Matches(msg, m.Keys.Up):
		if m.DetailCursor > 0 {
			m.DetailCursor--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.DetailCursor < rows-1 {
			m.DetailCursor++
		}
	case key.Matches(msg, m.Keys.PageUp):
		m.DetailBody.SetYOffset(m.DetailBody.YOffset - m.DetailBody.Height/2)
		return
	case key.Matches(msg, m.Keys.PageDown):
		m.DetailBody.SetYOffset(m.DetailBody.YOffset + m.DetailBody.Height/2)
		return
	case key.Matches(msg, m.Keys.Toggle):
		if rows == 0 {
			break
		}
		entry, _ := model.Algorithm(m.State.DetailedAlgo)
		if m.DetailCursor < len(entry.Exercises) {
			m.dispatch(guide.RevealSolution{Index: m.DetailCursor})
		} else {
			m.dispatch(guide.ToggleChecklistItem{Index: m.DetailCursor - len(entry.Exercises)})
		}
	case key.Matches(msg, m.Keys.Copy):
		if md, err := guide.AlgorithmReport(m.State.DetailedAlgo); err == nil {
			m.copy(md, "reference")
		}
	case key.Matches(msg, m.Keys.DarkMode):
		m.dispatch(guide.ToggleDarkMode{})
	}
	m.refresh()
}

func (m *AppModel) updateHelp(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.Keys.Help), key.Matches(msg, m.Keys.Close), key.Matches(msg, m.Keys.Quit):
		m.ShowHelp = false
	case key.Matches(msg, m.Keys.Up):
		if m.HelpScrollY > 0 {
			m.HelpScrollY--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.HelpScrollY < m.maxHelpScroll() {
			m.HelpScrollY++
		}
	}
}

// helpContentHeight is the number of help lines visible in the dialog.
func (m *AppModel) helpContentHeight() int {
	h := m.WindowSize.Height - 6
	if h < 5 {
		h = 5
	}
	// border
	return h - 2
}

func (m *AppModel) maxHelpScroll() int {
	n := strings.Count(m.HelpContent, "\n") + 1 - m.helpContentHeight()
	if n < 0 {
		return 0
	}
	return n
}

// detailRows is the number of focusable rows in the detail overlay.
func (m *AppModel) detailRows() int {
	entry, ok := model.Algorithm(m.State.DetailedAlgo)
	if !ok {
		return 0
	}
	return len(entry.Exercises) + len(entry.StudyChecklist)
}

func (m *AppModel) dispatch(ev guide.Event) {
	next, err := guide.Reduce(m.State, ev)
	if err != nil {
		debug.Log("tui event rejected", "event", ev.Name(), "err", err)
		return
	}
	if next.DarkMode != m.State.DarkMode {
		m.theme = ThemeFor(next.DarkMode)
	}
	if next.Section != m.State.Section {
		m.Body.SetYOffset(0)
	}
	m.State = next
}

func (m *AppModel) copy(text, what string) {
	if m.copyToClip == nil {
		return
	}
	if err := m.copyToClip(text); err != nil {
		m.Flash = fmt.Sprintf("Copy failed: %v", err)
		return
	}
	m.Flash = fmt.Sprintf("Copied %s to clipboard", what)
}

// layout sizes the components from the window and re-renders.
func (m *AppModel) layout() {
	w, h := m.WindowSize.Width, m.WindowSize.Height
	// header (2) + nav (2) + footer (2)
	bodyH := h - 6
	if bodyH < 3 {
		bodyH = 3
	}
	m.Body.Width = w
	m.Body.Height = bodyH
	m.HelpBar.Width = w

	dw := m.dialogWidth()
	m.DetailBody.Width = dw - 4
	dh := h - 8
	if dh < 3 {
		dh = 3
	}
	m.DetailBody.Height = dh
	m.Progress.Width = m.contentWidth() - 4
	m.refresh()
}

// refresh re-renders viewport content from the current state and keeps the
// focused element on screen.
func (m *AppModel) refresh() {
	body, anchor := m.renderBody()
	m.Body.SetContent(body)
	m.bodyAnchor = anchor
	keepVisible(&m.Body.YOffset, anchor, m.Body.Height)
	m.Body.SetYOffset(m.Body.YOffset)

	if m.State.DetailOpen() {
		detail, anchor := m.renderDetail()
		m.DetailBody.SetContent(detail)
		m.detailAnchor = anchor
		keepVisible(&m.DetailBody.YOffset, anchor, m.DetailBody.Height)
		m.DetailBody.SetYOffset(m.DetailBody.YOffset)
	}
}

func keepVisible(offset *int, anchor, height int) {
	if anchor < 0 || height <= 0 {
		return
	}
	if anchor < *offset {
		*offset = anchor
	}
	if anchor >= *offset+height {
		*offset = anchor - height + 1
	}
}

func (m *AppModel) contentWidth() int {
	w := m.WindowSize.Width - 2
	if m.WordWrap > 0 && w > m.WordWrap {
		w = m.WordWrap
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m *AppModel) dialogWidth() int {
	w := m.WindowSize.Width * 90 / 100
	if w > m.WindowSize.Width-4 {
		w = m.WindowSize.Width - 4
	}
	if m.WordWrap > 0 && w > m.WordWrap+4 {
		w = m.WordWrap + 4
	}
	if w < 30 {
		w = 30
	}
	return w
}
