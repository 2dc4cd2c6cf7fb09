package guide

import (
	"reflect"
	"testing"

	"pgregory.net/rapid"

	"dmguide/internal/model"
)

func drawAlgorithm(t *rapid.T, label string) model.AlgorithmID {
	return rapid.SampledFrom(model.AlgorithmIDs()).Draw(t, label)
}

func drawOptionalAlgorithm(t *rapid.T, label string) model.AlgorithmID {
	ids := append([]model.AlgorithmID{model.NoAlgorithm}, model.AlgorithmIDs()...)
	return rapid.SampledFrom(ids).Draw(t, label)
}

// drawState produces any reachable ViewState.
func drawState(t *rapid.T) ViewState {
	s := ViewState{
		Section:      rapid.SampledFrom(model.Sections()).Draw(t, "section"),
		ExpandedAlgo: drawOptionalAlgorithm(t, "expanded"),
		DetailedAlgo: drawOptionalAlgorithm(t, "detailed"),
		CardIndex:    rapid.IntRange(0, model.FlashcardCount()-1).Draw(t, "card"),
		CardFlipped:  rapid.Bool().Draw(t, "flipped"),
		DarkMode:     rapid.Bool().Draw(t, "dark"),
	}
	if entry, ok := model.Algorithm(s.DetailedAlgo); ok {
		for i := range entry.Exercises {
			if rapid.Bool().Draw(t, "revealed") {
				s.Revealed |= 1 << uint(i)
			}
		}
		for i := range entry.StudyChecklist {
			if rapid.Bool().Draw(t, "checked") {
				s.Checked |= 1 << uint(i)
			}
		}
	}
	return s
}

func TestSelectSectionChangesOnlySection(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := drawState(t)
		sec := rapid.SampledFrom(model.Sections()).Draw(t, "target")

		got := s.SelectSection(sec)
		if got.Section != sec {
			t.Fatalf("Expected section %q, got %q", sec, got.Section)
		}
		want := s
		want.Section = sec
		if got != want {
			t.Fatalf("Expected only Section to change: before %+v after %+v", s, got)
		}
	})
}

func TestAccordionExclusive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := drawState(t)
		a := drawAlgorithm(t, "a")
		b := drawAlgorithm(t, "b")
		if a == b {
			return
		}
		got := s.ToggleAlgorithm(a).ToggleAlgorithm(b)
		if got.ExpandedAlgo != b {
			t.Fatalf("Expected %q expanded, got %q", b, got.ExpandedAlgo)
		}
	})
}

// The pair law holds when the entry is the expanded one or nothing is
// expanded. Starting from another expanded entry, the pair collapses it.
func TestAccordionFromOtherEntryCollapses(t *testing.T) {
	s := NewState().ToggleAlgorithm(model.Charm)
	got := s.ToggleAlgorithm(model.Eclat).ToggleAlgorithm(model.Eclat)
	if got.ExpandedAlgo != model.NoAlgorithm {
		t.Errorf("Expected collapse, got %q", got.ExpandedAlgo)
	}
}

func TestAccordionTogglePairIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := drawState(t)
		a := drawAlgorithm(t, "a")
		s.ExpandedAlgo = rapid.SampledFrom([]model.AlgorithmID{model.NoAlgorithm, a}).Draw(t, "start")
		if got := s.ToggleAlgorithm(a).ToggleAlgorithm(a); got != s {
			t.Fatalf("Expected toggle pair to restore %+v, got %+v", s, got)
		}
	})
}

func TestNavigationResetsFlip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := drawState(t)
		s.CardFlipped = true
		if s.Next().CardFlipped {
			t.Fatal("Expected Next to show the question side")
		}
		if s.Previous().CardFlipped {
			t.Fatal("Expected Previous to show the question side")
		}
	})
}

func TestCardNavigationStaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := drawState(t)
		n := model.FlashcardCount()
		next := s.Next()
		if next.CardIndex != (s.CardIndex+1)%n {
			t.Fatalf("Next from %d gave %d", s.CardIndex, next.CardIndex)
		}
		if back := next.Previous(); back.CardIndex != s.CardIndex {
			t.Fatalf("Previous after Next should return to %d, got %d", s.CardIndex, back.CardIndex)
		}
	})
}

func TestFlipIsInvolutive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := drawState(t)
		once := s.Flip()
		if once.CardFlipped == s.CardFlipped {
			t.Fatal("Expected Flip to change the visible side")
		}
		if once.CardIndex != s.CardIndex {
			t.Fatal("Expected Flip to keep the card index")
		}
		if twice := once.Flip(); twice != s {
			t.Fatalf("Expected double flip to restore %+v, got %+v", s, twice)
		}
	})
}

func TestDetailIndependentOfAccordion(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := drawState(t)
		x := drawAlgorithm(t, "x")

		opened := s.OpenDetail(x)
		if opened.DetailedAlgo != x {
			t.Fatalf("Expected detail %q, got %q", x, opened.DetailedAlgo)
		}
		if opened.ExpandedAlgo != s.ExpandedAlgo {
			t.Fatalf("OpenDetail changed the accordion from %q to %q", s.ExpandedAlgo, opened.ExpandedAlgo)
		}

		closed := opened.CloseDetail()
		if closed.Section != s.Section || closed.ExpandedAlgo != s.ExpandedAlgo {
			t.Fatalf("CloseDetail changed section/accordion: %+v -> %+v", s, closed)
		}
		if closed.DetailOpen() {
			t.Fatal("Expected detail closed")
		}
	})
}

func TestDarkModeIsInvolutive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := drawState(t)
		once := s.ToggleDarkMode()
		want := s
		want.DarkMode = !s.DarkMode
		if once != want {
			t.Fatalf("ToggleDarkMode changed more than DarkMode: %+v -> %+v", s, once)
		}
		if twice := once.ToggleDarkMode(); twice != s {
			t.Fatalf("Expected double toggle to restore %+v, got %+v", s, twice)
		}
	})
}

func TestRejectedEventsAreNoOps(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := drawState(t)
		junk := rapid.StringMatching(`[a-z]{1,12}`).Draw(t, "junk")
		if model.Section(junk).Valid() || model.AlgorithmID(junk).Valid() {
			return
		}
		for _, ev := range []Event{
			SelectSection{Section: model.Section(junk)},
			ToggleAlgorithm{ID: model.AlgorithmID(junk)},
			OpenDetail{ID: model.AlgorithmID(junk)},
		} {
			got, err := Reduce(s, ev)
			if err == nil {
				t.Fatalf("%s(%q) should be rejected", ev.Name(), junk)
			}
			if got != s {
				t.Fatalf("%s(%q) changed state", ev.Name(), junk)
			}
		}
	})
}

func TestProjectIsDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := drawState(t)
		a, b := Project(s), Project(s)
		if !reflect.DeepEqual(a, b) {
			t.Fatal("Project returned different screens for the same state")
		}
		if s.DetailOpen() != (a.Detail != nil) {
			t.Fatalf("Detail present=%v but DetailOpen=%v", a.Detail != nil, s.DetailOpen())
		}
	})
}
