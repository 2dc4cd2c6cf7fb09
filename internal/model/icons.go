package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconOverview   = "§"
	IconAlgorithms = "⚙"
	IconFlashcards = "?"
	IconFormulas   = "∑"
	IconTips       = "!"

	IconExpanded  = "▾"
	IconCollapsed = "▸"
	IconCursor    = "›"
	IconBullet    = "•"
	IconCheck     = "✓"
	IconUnchecked = "☐"
	IconChecked   = "☑"
	IconHidden    = "▸"
	IconShown     = "▾"

	IconDark  = "☾"
	IconLight = "☀"
)
