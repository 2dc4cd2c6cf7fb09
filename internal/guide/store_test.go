package guide

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"dmguide/internal/debug"
	"dmguide/internal/model"
)

func TestStoreDispatch(t *testing.T) {
	st := NewStore(NewState())

	s, err := st.Dispatch(SelectSection{Section: model.SectionFlashcards})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Section != model.SectionFlashcards || st.State() != s {
		t.Errorf("Expected store to hold flashcards state, got %+v", st.State())
	}

	before := st.State()
	if _, err := st.Dispatch(OpenDetail{ID: "dbscan"}); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("Expected ErrUnknownAlgorithm, got %v", err)
	}
	if st.State() != before {
		t.Error("Expected rejected event to leave the store untouched")
	}

	st.Reset(NewState())
	if st.State() != NewState() {
		t.Error("Expected Reset to restore the initial state")
	}
}

func TestStoreConcurrentDispatch(t *testing.T) {
	st := NewStore(NewState())
	n := model.FlashcardCount()

	var wg sync.WaitGroup
	for i := 0; i < n*4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st.Dispatch(NextCard{})
		}()
	}
	wg.Wait()

	if got := st.State().CardIndex; got != 0 {
		t.Errorf("Expected %d nexts to wrap back to 0, got %d", n*4, got)
	}
}

func TestStoreLogsDispatch(t *testing.T) {
	var buf bytes.Buffer
	debug.SetOutput(&buf)
	defer debug.SetEnabled(false)

	st := NewStore(NewState())
	st.Dispatch(ToggleDarkMode{})
	st.Dispatch(SelectSection{Section: "nope"})

	out := buf.String()
	if !strings.Contains(out, "event=toggle_dark_mode") {
		t.Errorf("Expected applied event in log, got %q", out)
	}
	if !strings.Contains(out, "event rejected") {
		t.Errorf("Expected rejected event in log, got %q", out)
	}
}
