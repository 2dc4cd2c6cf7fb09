package guide

import (
	"dmguide/internal/model"
)

// ViewState is everything the user can change while studying. It is a plain
// comparable value; every transition returns a new ViewState.
type ViewState struct {
	Section      model.Section     // Active navigation section
	ExpandedAlgo model.AlgorithmID // Accordion entry shown expanded, or none
	DetailedAlgo model.AlgorithmID // Algorithm whose detail overlay is open, or none
	CardIndex    int               // Current flashcard, always in [0, deck size)
	CardFlipped  bool              // Answer side showing
	DarkMode     bool

	// Detail overlay state. Reset whenever DetailedAlgo changes.
	Revealed uint64 // Bit i set: solution of exercise i is shown
	Checked  uint64 // Bit i set: study checklist item i is ticked
}

// Option adjusts the initial state of a session.
type Option func(*ViewState)

// WithSection starts the session on section s. Unknown sections are ignored.
func WithSection(s model.Section) Option {
	return func(v *ViewState) {
		if s.Valid() {
			v.Section = s
		}
	}
}

// WithDarkMode starts the session with the given theme.
func WithDarkMode(on bool) Option {
	return func(v *ViewState) {
		v.DarkMode = on
	}
}

// NewState returns the state of a fresh session.
func NewState(opts ...Option) ViewState {
	v := ViewState{Section: model.SectionOverview}
	for _, opt := range opts {
		opt(&v)
	}
	return v
}

// DetailOpen reports whether the detail overlay is showing.
func (s ViewState) DetailOpen() bool {
	return s.DetailedAlgo != model.NoAlgorithm
}

// IsRevealed reports whether exercise i's solution is shown.
func (s ViewState) IsRevealed(i int) bool {
	return i >= 0 && i < 64 && s.Revealed&(1<<uint(i)) != 0
}

// IsChecked reports whether checklist item i is ticked.
func (s ViewState) IsChecked(i int) bool {
	return i >= 0 && i < 64 && s.Checked&(1<<uint(i)) != 0
}

// CurrentCard returns the flashcard at CardIndex.
func (s ViewState) CurrentCard() model.Flashcard {
	return model.FlashcardAt(s.CardIndex)
}

// CardText is the visible side of the current flashcard.
func (s ViewState) CardText() string {
	c := s.CurrentCard()
	if s.CardFlipped {
		return c.Answer
	}
	return c.Question
}

// The methods below apply a single event and drop the rejection error. They
// mirror the controller contracts and are convenient in tests and surfaces
// that already validated their input.

func (s ViewState) SelectSection(sec model.Section) ViewState {
	return s.apply(SelectSection{Section: sec})
}

func (s ViewState) ToggleAlgorithm(id model.AlgorithmID) ViewState {
	return s.apply(ToggleAlgorithm{ID: id})
}

func (s ViewState) OpenDetail(id model.AlgorithmID) ViewState {
	return s.apply(OpenDetail{ID: id})
}

func (s ViewState) CloseDetail() ViewState { return s.apply(CloseDetail{}) }

func (s ViewState) Flip() ViewState { return s.apply(FlipCard{}) }

func (s ViewState) Next() ViewState { return s.apply(NextCard{}) }

func (s ViewState) Previous() ViewState { return s.apply(PreviousCard{}) }

func (s ViewState) ToggleDarkMode() ViewState { return s.apply(ToggleDarkMode{}) }

func (s ViewState) apply(ev Event) ViewState {
	next, _ := Reduce(s, ev)
	return next
}
