package model

import (
	"fmt"
	"slices"
	"strings"
)

// Section is one of the top-level navigation targets.
type Section string

const (
	SectionOverview   Section = "overview"
	SectionAlgorithms Section = "algorithms"
	SectionFlashcards Section = "flashcards"
	SectionFormulas   Section = "formulas"
	SectionTips       Section = "tips"
)

var sectionOrder = []Section{SectionOverview, SectionAlgorithms, SectionFlashcards, SectionFormulas, SectionTips}

// Sections returns the navigation sections in display order.
func Sections() []Section {
	return slices.Clone(sectionOrder)
}

// Valid reports whether s is a known section.
func (s Section) Valid() bool {
	return slices.Contains(sectionOrder, s)
}

// Index returns the position of s in the navigation bar, or -1.
func (s Section) Index() int {
	return slices.Index(sectionOrder, s)
}

// Title is the label shown on the navigation button.
func (s Section) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Icon returns the glyph shown next to the section title.
func (s Section) Icon() string {
	switch s {
	case SectionOverview:
		return IconOverview
	case SectionAlgorithms:
		return IconAlgorithms
	case SectionFlashcards:
		return IconFlashcards
	case SectionFormulas:
		return IconFormulas
	case SectionTips:
		return IconTips
	}
	return ""
}

// ParseSection validates s against the known sections. Matching ignores case
// and surrounding whitespace.
func ParseSection(s string) (Section, error) {
	sec := Section(strings.ToLower(strings.TrimSpace(s)))
	if !sec.Valid() {
		return "", fmt.Errorf("unknown section %q", s)
	}
	return sec, nil
}
