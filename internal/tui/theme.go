package tui

import (
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"
)

// TermProfile holds the detected terminal color profile. Computed once at
// package init so every style helper can branch without re-detecting.
var TermProfile colorprofile.Profile

func init() {
	TermProfile = colorprofile.Detect(os.Stdout, os.Environ())
}

// themeColor returns hex for ANSI256+ terminals and the given basic ANSI
// color otherwise.
func themeColor(hex string, fallback lipgloss.ANSIColor) lipgloss.TerminalColor {
	if TermProfile < colorprofile.ANSI256 {
		return fallback
	}
	return lipgloss.Color(hex)
}

// Theme is the palette and derived styles for one display mode.
type Theme struct {
	Dark bool

	Primary lipgloss.TerminalColor // Titles, active nav button
	Accent  lipgloss.TerminalColor // Algorithm headers, focus
	Text    lipgloss.TerminalColor
	Muted   lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Success lipgloss.TerminalColor // Answers, ticked items
	Warn    lipgloss.TerminalColor // Exercises, tips
	Danger  lipgloss.TerminalColor // Common mistakes

	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	NavActive   lipgloss.Style
	NavInactive lipgloss.Style
	Heading     lipgloss.Style
	Body        lipgloss.Style
	Dim         lipgloss.Style
	Selected    lipgloss.Style
	Card        lipgloss.Style
	Code        lipgloss.Style
	Dialog      lipgloss.Style
	Flash       lipgloss.Style
}

// LightTheme mirrors the indigo-on-white look of the light mode.
func LightTheme() Theme {
	t := Theme{
		Primary: themeColor("#4F46E5", lipgloss.ANSIColor(4)),
		Accent:  themeColor("#0891B2", lipgloss.ANSIColor(6)),
		Text:    themeColor("#1F2937", lipgloss.ANSIColor(0)),
		Muted:   themeColor("#6B7280", lipgloss.ANSIColor(8)),
		Border:  themeColor("#A5B4FC", lipgloss.ANSIColor(4)),
		Success: themeColor("#15803D", lipgloss.ANSIColor(2)),
		Warn:    themeColor("#C2410C", lipgloss.ANSIColor(3)),
		Danger:  themeColor("#B91C1C", lipgloss.ANSIColor(1)),
	}
	return t.withStyles()
}

// DarkTheme mirrors the slate and cyan look of the dark mode.
func DarkTheme() Theme {
	t := Theme{
		Dark:    true,
		Primary: themeColor("#93C5FD", lipgloss.ANSIColor(12)),
		Accent:  themeColor("#67E8F9", lipgloss.ANSIColor(14)),
		Text:    themeColor("#E2E8F0", lipgloss.ANSIColor(7)),
		Muted:   themeColor("#94A3B8", lipgloss.ANSIColor(8)),
		Border:  themeColor("#475569", lipgloss.ANSIColor(8)),
		Success: themeColor("#86EFAC", lipgloss.ANSIColor(10)),
		Warn:    themeColor("#FDBA74", lipgloss.ANSIColor(11)),
		Danger:  themeColor("#FCA5A5", lipgloss.ANSIColor(9)),
	}
	return t.withStyles()
}

// ThemeFor picks the theme for the dark mode flag.
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}

func (t Theme) withStyles() Theme {
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
	t.Subtitle = lipgloss.NewStyle().Foreground(t.Muted)
	t.NavActive = lipgloss.NewStyle().Bold(true).Padding(0, 1).
		Foreground(themeColor("#FFFFFF", lipgloss.ANSIColor(15))).
		Background(t.Primary)
	t.NavInactive = lipgloss.NewStyle().Padding(0, 1).Foreground(t.Primary)
	t.Heading = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.Body = lipgloss.NewStyle().Foreground(t.Text)
	t.Dim = lipgloss.NewStyle().Foreground(t.Muted)
	t.Selected = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(1, 2)
	t.Code = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(t.Border).
		PaddingLeft(1).
		Foreground(t.Text)
	t.Dialog = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(0, 1)
	t.Flash = lipgloss.NewStyle().Foreground(t.Success)
	return t
}

// Color returns a style that only sets the foreground.
func (t Theme) Color(c lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}
