package guide

import (
	"errors"
	"fmt"
	"strconv"

	"dmguide/internal/model"
)

var (
	ErrUnknownSection   = errors.New("unknown section")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrNoDetail         = errors.New("no detail view open")
	ErrOutOfRange       = errors.New("index out of range")
	ErrUnknownEvent     = errors.New("unknown event")
)

// Event is a user interaction. Events are applied with Reduce.
type Event interface {
	// Name is the wire name used by the web surface.
	Name() string
	apply(ViewState) (ViewState, error)
}

type SelectSection struct{ Section model.Section }

type ToggleAlgorithm struct{ ID model.AlgorithmID }

type OpenDetail struct{ ID model.AlgorithmID }

type CloseDetail struct{}

type FlipCard struct{}

type NextCard struct{}

type PreviousCard struct{}

type ToggleDarkMode struct{}

// RevealSolution toggles the solution of exercise Index in the detail view.
type RevealSolution struct{ Index int }

// ToggleChecklistItem ticks or unticks study checklist item Index in the
// detail view.
type ToggleChecklistItem struct{ Index int }

func (SelectSection) Name() string       { return "select_section" }
func (ToggleAlgorithm) Name() string     { return "toggle_algorithm" }
func (OpenDetail) Name() string          { return "open_detail" }
func (CloseDetail) Name() string         { return "close_detail" }
func (FlipCard) Name() string            { return "flip" }
func (NextCard) Name() string            { return "next" }
func (PreviousCard) Name() string        { return "previous" }
func (ToggleDarkMode) Name() string      { return "toggle_dark_mode" }
func (RevealSolution) Name() string      { return "reveal_solution" }
func (ToggleChecklistItem) Name() string { return "toggle_checklist" }

// Reduce applies ev to s. A rejected event returns s unchanged together with
// an error wrapping one of the Err* sentinels.
func Reduce(s ViewState, ev Event) (ViewState, error) {
	if ev == nil {
		return s, ErrUnknownEvent
	}
	next, err := ev.apply(s)
	if err != nil {
		return s, fmt.Errorf("%s: %w", ev.Name(), err)
	}
	return next, nil
}

func (e SelectSection) apply(s ViewState) (ViewState, error) {
	if !e.Section.Valid() {
		return s, fmt.Errorf("%w %q", ErrUnknownSection, e.Section)
	}
	s.Section = e.Section
	return s, nil
}

func (e ToggleAlgorithm) apply(s ViewState) (ViewState, error) {
	if !e.ID.Valid() {
		return s, fmt.Errorf("%w %q", ErrUnknownAlgorithm, e.ID)
	}
	if s.ExpandedAlgo == e.ID {
		s.ExpandedAlgo = model.NoAlgorithm
	} else {
		s.ExpandedAlgo = e.ID
	}
	return s, nil
}

func (e OpenDetail) apply(s ViewState) (ViewState, error) {
	if !e.ID.Valid() {
		return s, fmt.Errorf("%w %q", ErrUnknownAlgorithm, e.ID)
	}
	if s.DetailedAlgo != e.ID {
		s.Revealed, s.Checked = 0, 0
	}
	s.DetailedAlgo = e.ID
	return s, nil
}

func (CloseDetail) apply(s ViewState) (ViewState, error) {
	s.DetailedAlgo = model.NoAlgorithm
	s.Revealed, s.Checked = 0, 0
	return s, nil
}

func (FlipCard) apply(s ViewState) (ViewState, error) {
	s.CardFlipped = !s.CardFlipped
	return s, nil
}

func (NextCard) apply(s ViewState) (ViewState, error) {
	n := model.FlashcardCount()
	s.CardFlipped = false
	s.CardIndex = (s.CardIndex + 1) % n
	return s, nil
}

func (PreviousCard) apply(s ViewState) (ViewState, error) {
	n := model.FlashcardCount()
	s.CardFlipped = false
	s.CardIndex = (s.CardIndex - 1 + n) % n
	return s, nil
}

func (ToggleDarkMode) apply(s ViewState) (ViewState, error) {
	s.DarkMode = !s.DarkMode
	return s, nil
}

func (e RevealSolution) apply(s ViewState) (ViewState, error) {
	entry, ok := model.Algorithm(s.DetailedAlgo)
	if !ok {
		return s, ErrNoDetail
	}
	if e.Index < 0 || e.Index >= len(entry.Exercises) {
		return s, fmt.Errorf("%w: exercise %d of %d", ErrOutOfRange, e.Index, len(entry.Exercises))
	}
	s.Revealed ^= 1 << uint(e.Index)
	return s, nil
}

func (e ToggleChecklistItem) apply(s ViewState) (ViewState, error) {
	entry, ok := model.Algorithm(s.DetailedAlgo)
	if !ok {
		return s, ErrNoDetail
	}
	if e.Index < 0 || e.Index >= len(entry.StudyChecklist) {
		return s, fmt.Errorf("%w: checklist item %d of %d", ErrOutOfRange, e.Index, len(entry.StudyChecklist))
	}
	s.Checked ^= 1 << uint(e.Index)
	return s, nil
}

// ParseEvent decodes an event from its wire name and a single string argument.
// The argument is a section or algorithm identifier, or a decimal index,
// depending on the event; it is ignored by events that take none.
func ParseEvent(name, arg string) (Event, error) {
	switch name {
	case SelectSection{}.Name():
		sec, err := model.ParseSection(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnknownSection, err)
		}
		return SelectSection{Section: sec}, nil
	case ToggleAlgorithm{}.Name():
		id, err := model.ParseAlgorithmID(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, err)
		}
		return ToggleAlgorithm{ID: id}, nil
	case OpenDetail{}.Name():
		id, err := model.ParseAlgorithmID(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, err)
		}
		return OpenDetail{ID: id}, nil
	case CloseDetail{}.Name():
		return CloseDetail{}, nil
	case FlipCard{}.Name():
		return FlipCard{}, nil
	case NextCard{}.Name():
		return NextCard{}, nil
	case PreviousCard{}.Name():
		return PreviousCard{}, nil
	case ToggleDarkMode{}.Name():
		return ToggleDarkMode{}, nil
	case RevealSolution{}.Name():
		i, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an index", ErrOutOfRange, arg)
		}
		return RevealSolution{Index: i}, nil
	case ToggleChecklistItem{}.Name():
		i, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an index", ErrOutOfRange, arg)
		}
		return ToggleChecklistItem{Index: i}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownEvent, name)
}
