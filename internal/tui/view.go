package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dmguide/internal/guide"
	"dmguide/internal/model"
)

func (m AppModel) View() string {
	w, h := m.WindowSize.Width, m.WindowSize.Height
	if w < 20 || h < 8 {
		return "Window too small"
	}

	if m.ShowHelp {
		return m.renderHelpDialog()
	}
	if m.State.DetailOpen() {
		return m.renderDetailDialog()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderNav())
	b.WriteString("\n\n")
	b.WriteString(m.Body.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m AppModel) renderHeader() string {
	t := m.theme
	mode := model.IconLight + " light"
	if m.State.DarkMode {
		mode = model.IconDark + " dark"
	}
	left := t.Title.Render(model.GuideTitle) + "  " + t.Subtitle.Render(model.GuideSubtitle)
	gap := m.WindowSize.Width - lipgloss.Width(left) - lipgloss.Width(mode)
	if gap < 1 {
		return t.Title.Render(truncate(model.GuideTitle, m.WindowSize.Width))
	}
	return left + strings.Repeat(" ", gap) + t.Dim.Render(mode)
}

func (m AppModel) renderNav() string {
	var tabs []string
	for i, sec := range model.Sections() {
		label := fmt.Sprintf("%d %s %s", i+1, sec.Icon(), sec.Title())
		if sec == m.State.Section {
			tabs = append(tabs, m.theme.NavActive.Render(label))
		} else {
			tabs = append(tabs, m.theme.NavInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m AppModel) renderFooter() string {
	keys := m.Keys
	switch {
	case m.State.DetailOpen():
		keys.context = helpDetail
	case m.State.Section == model.SectionAlgorithms:
		keys.context = helpAlgorithms
	case m.State.Section == model.SectionFlashcards:
		keys.context = helpFlashcards
	}
	line := m.HelpBar.View(keys)
	if m.Flash != "" {
		line = m.theme.Flash.Render(m.Flash) + "  " + line
	}
	return line
}

// renderBody renders the current section for the body viewport. The second
// result is the line of the focused element, or -1.
func (m AppModel) renderBody() (string, int) {
	scr := guide.Project(m.State)
	width := m.contentWidth()
	switch {
	case scr.Overview != nil:
		return m.renderOverview(scr.Overview, width), -1
	case scr.Algorithms != nil:
		return m.renderAlgorithms(scr.Algorithms, width)
	case scr.Card != nil:
		return m.renderCard(scr.Card, width), -1
	case scr.Formulas != nil:
		return m.renderFormulas(scr.Formulas, width), -1
	case scr.Tips != nil:
		return m.renderTips(scr.Tips, width), -1
	}
	return "", -1
}

func (m AppModel) renderOverview(o *model.OverviewPanel, width int) string {
	t := m.theme
	var b strings.Builder
	b.WriteString(t.Heading.Render(o.Heading) + "\n")
	b.WriteString(t.Body.Render(wrap(o.Summary, width)) + "\n\n")

	b.WriteString(t.Title.Render("Itemset Mining") + "\n")
	m.writeBullets(&b, o.ItemsetMining, width)
	b.WriteString("\n")
	b.WriteString(t.Title.Render("Sequential Mining") + "\n")
	m.writeBullets(&b, o.SequentialMining, width)
	b.WriteString("\n")

	b.WriteString(t.Title.Render("Key Concepts") + "\n")
	for _, term := range o.KeyConcepts {
		line := t.Selected.Render(term.Term+":") + " " + term.Definition
		b.WriteString(indent(wrap(line, width-2), "  ") + "\n")
	}
	return b.String()
}

func (m AppModel) renderAlgorithms(panels []guide.AlgorithmPanel, width int) (string, int) {
	t := m.theme
	var b strings.Builder
	anchor := -1
	for i, p := range panels {
		icon := model.IconCollapsed
		if p.Expanded {
			icon = model.IconExpanded
		}
		cursor := "  "
		nameStyle := t.Body.Bold(true)
		if i == m.AlgoCursor {
			cursor = model.IconCursor + " "
			nameStyle = t.Selected
			anchor = strings.Count(b.String(), "\n")
		}
		head := fmt.Sprintf("%s%s %s", cursor, icon, nameStyle.Render(p.Entry.Name))
		b.WriteString(head + "  " + t.Dim.Render(truncate(p.Entry.Type, width/2)) + "\n")
		if !p.Expanded {
			continue
		}
		var panel strings.Builder
		panel.WriteString(t.Body.Render(wrap(p.Entry.Purpose, width-6)) + "\n\n")
		m.writeEntryBody(&panel, p.Entry, width-6)
		b.WriteString(indent(strings.TrimRight(panel.String(), "\n"), "      ") + "\n")
		b.WriteString("      " + t.Dim.Render("o: open full reference") + "\n\n")
	}
	return b.String(), anchor
}

func (m AppModel) renderCard(c *guide.CardView, width int) string {
	t := m.theme
	var b strings.Builder

	counter := fmt.Sprintf("Card %d of %d", c.Index+1, c.Total)
	b.WriteString(t.Dim.Render(counter) + "\n")
	b.WriteString(m.Progress.ViewAs(c.Progress) + "\n\n")

	labelStyle := t.Color(t.Primary).Bold(true)
	if c.Flipped {
		labelStyle = t.Color(t.Success).Bold(true)
	}
	cardWidth := width - 4
	if cardWidth > 72 {
		cardWidth = 72
	}
	inner := labelStyle.Render(c.Label) + "\n\n" +
		t.Body.Render(wrap(c.Text, cardWidth-6)) + "\n\n" +
		t.Dim.Render("space: "+c.Hint)
	b.WriteString(t.Card.Width(cardWidth).Render(inner) + "\n\n")

	b.WriteString(t.Dim.Render("←/p previous   →/n next") + "\n\n")

	b.WriteString(t.Color(t.Warn).Bold(true).Render("Study Tips") + "\n")
	m.writeBullets(&b, c.Tips, width)
	return b.String()
}

func (m AppModel) renderFormulas(fs []model.Formula, width int) string {
	t := m.theme
	var b strings.Builder
	for _, f := range fs {
		b.WriteString(t.Heading.Render(f.Name) + "\n")
		b.WriteString(t.Code.Render(wrap(f.Formula, width-4)) + "\n")
		b.WriteString(t.Dim.Render(wrap("Use: "+f.Use, width)) + "\n\n")
	}
	return b.String()
}

func (m AppModel) renderTips(tv *guide.TipsView, width int) string {
	t := m.theme
	var b strings.Builder
	b.WriteString(t.Heading.Render("Exam Tips") + "\n")
	for i, tip := range tv.Tips {
		line := wrap(fmt.Sprintf("%2d. %s", i+1, tip), width-2)
		b.WriteString(indent(line, "  ") + "\n")
	}
	b.WriteString("\n" + t.Heading.Render("Common Exam Question Types") + "\n")
	m.writeBullets(&b, tv.QuestionTypes, width)
	return b.String()
}

func (m AppModel) writeBullets(b *strings.Builder, items []string, width int) {
	for _, it := range items {
		line := wrap(model.IconBullet+" "+it, width-2)
		b.WriteString(indent(line, "  ") + "\n")
	}
}

// renderDetail renders the detail overlay content for DetailBody. The second
// result is the line of the focused row.
func (m AppModel) renderDetail() (string, int) {
	scr := guide.Project(m.State)
	d := scr.Detail
	if d == nil {
		return "", -1
	}
	t := m.theme
	width := m.DetailBody.Width
	e := d.Entry
	var b strings.Builder
	anchor := -1

	b.WriteString(t.Title.Render(e.Name) + "  " + t.Dim.Render(e.Type) + "\n\n")
	b.WriteString(t.Body.Render(wrap(e.Purpose, width)) + "\n\n")

	m.writeEntryBody(&b, e, width)

	row := 0
	if len(d.Exercises) > 0 {
		b.WriteString(t.Color(t.Warn).Bold(true).Render("Practice Exercises") + "\n")
		for i, ex := range d.Exercises {
			if row == m.DetailCursor {
				anchor = strings.Count(b.String(), "\n")
			}
			icon := model.IconHidden
			if ex.Revealed {
				icon = model.IconShown
			}
			title := fmt.Sprintf("%s %s Exercise %d: %s", m.detailCursor(row), icon, i+1, ex.Title)
			b.WriteString(m.rowStyle(row).Render(title) + "\n")
			b.WriteString(indent(wrap(ex.Description, width-6), "      ") + "\n")
			if ex.Revealed {
				b.WriteString(indent(t.Code.Render(ex.Solution), "      ") + "\n")
			} else {
				b.WriteString("      " + t.Dim.Render("enter: show solution") + "\n")
			}
			b.WriteString("\n")
			row++
		}
	}

	m.writeTitledList(&b, "Common Mistakes to Avoid", e.CommonMistakes, false, t.Color(t.Danger).Bold(true), width)

	if len(d.Checklist) > 0 {
		b.WriteString(t.Color(t.Success).Bold(true).Render("Study Checklist") + "\n")
		for _, item := range d.Checklist {
			if row == m.DetailCursor {
				anchor = strings.Count(b.String(), "\n")
			}
			box := model.IconUnchecked
			if item.Checked {
				box = model.IconChecked
			}
			line := fmt.Sprintf("%s %s %s", m.detailCursor(row), box, item.Text)
			b.WriteString(m.rowStyle(row).Render(wrap(line, width)) + "\n")
			row++
		}
	}
	return b.String(), anchor
}

// writeEntryBody writes the parts of an algorithm entry shared by the
// accordion panel and the detail overlay: lists, facts and the example.
func (m AppModel) writeEntryBody(b *strings.Builder, e model.AlgorithmEntry, width int) {
	t := m.theme
	m.writeTitledList(b, "Key Points", e.KeyPoints, false, t.Heading, width)
	m.writeTitledList(b, "Algorithm Steps", e.Steps, true, t.Heading, width)
	m.writeTitledList(b, "Properties", e.Properties, true, t.Heading, width)
	m.writeTitledList(b, "Optimizations", e.Optimization, false, t.Heading, width)

	if e.Advantage != "" {
		b.WriteString(wrap(t.Color(t.Success).Bold(true).Render("Advantage:")+" "+e.Advantage, width) + "\n\n")
	}
	facts := e.Facts()
	for _, f := range facts {
		b.WriteString(wrap(t.Color(t.Accent).Bold(true).Render(f.Label+":")+" "+f.Text, width) + "\n")
	}
	if len(facts) > 0 {
		b.WriteString("\n")
	}
	if e.Example != "" {
		b.WriteString(t.Heading.Render("Example") + "\n")
		b.WriteString(t.Code.Render(wrap(e.Example, width-2)) + "\n\n")
	}
}

func (m AppModel) writeTitledList(b *strings.Builder, title string, items []string, numbered bool, style lipgloss.Style, width int) {
	if len(items) == 0 {
		return
	}
	b.WriteString(style.Render(title) + "\n")
	for i, it := range items {
		prefix := model.IconBullet + " "
		if numbered {
			prefix = fmt.Sprintf("%d. ", i+1)
		}
		b.WriteString(indent(wrap(prefix+it, width-2), "  ") + "\n")
	}
	b.WriteString("\n")
}

func (m AppModel) detailCursor(row int) string {
	if row == m.DetailCursor {
		return model.IconCursor
	}
	return " "
}

func (m AppModel) rowStyle(row int) lipgloss.Style {
	if row == m.DetailCursor {
		return m.theme.Selected
	}
	return m.theme.Body
}

func (m AppModel) renderDetailDialog() string {
	w, h := m.WindowSize.Width, m.WindowSize.Height
	keys := m.Keys
	keys.context = helpDetail

	footer := m.HelpBar.View(keys)
	if m.Flash != "" {
		footer = m.theme.Flash.Render(m.Flash)
	}
	dialog := m.theme.Dialog.
		Width(m.dialogWidth()).
		Render(m.DetailBody.View() + "\n\n" + footer)

	return lipgloss.Place(w, h,
		lipgloss.Center, lipgloss.Center,
		dialog,
	)
}

func (m AppModel) renderHelpDialog() string {
	w, h := m.WindowSize.Width, m.WindowSize.Height

	contentHeight := m.helpContentHeight()
	lines := strings.Split(m.HelpContent, "\n")

	startY := min(m.HelpScrollY, m.maxHelpScroll())
	endY := min(startY+contentHeight, len(lines))

	dialog := m.theme.Dialog.
		Width(m.dialogWidth()).
		Height(contentHeight + 2).
		Render(strings.Join(lines[startY:endY], "\n"))

	return lipgloss.Place(w, h,
		lipgloss.Center, lipgloss.Center,
		dialog,
	)
}
