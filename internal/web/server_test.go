package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"dmguide/internal/guide"
	"dmguide/internal/model"
)

func newTestServer(t *testing.T) (*httptest.Server, *guide.Store) {
	t.Helper()
	store := guide.NewStore(guide.NewState())
	ts := httptest.NewServer(NewServer(store).Handler())
	t.Cleanup(ts.Close)
	return ts, store
}

func postEvent(t *testing.T, ts *httptest.Server, body string) (*http.Response, guide.Screen, map[string]string) {
	t.Helper()
	resp, err := http.Post(ts.URL+"/api/event", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var scr guide.Screen
	var errBody map[string]string
	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&scr); err != nil {
			t.Fatal(err)
		}
	} else {
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err != nil {
			t.Fatal(err)
		}
	}
	return resp, scr, errBody
}

func TestIndexServed(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type = %q", ct)
	}
}

func TestContent(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/content")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var c model.Catalog
	if err := json.NewDecoder(resp.Body).Decode(&c); err != nil {
		t.Fatal(err)
	}
	if len(c.Algorithms) != 7 || len(c.Flashcards) != 15 {
		t.Fatalf("algorithms=%d flashcards=%d", len(c.Algorithms), len(c.Flashcards))
	}
	if c.Algorithms[0].ID != model.Apriori || c.Algorithms[0].Name == "" {
		t.Fatalf("first algorithm = %+v", c.Algorithms[0])
	}
}

func TestStateDefaults(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/state")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var scr guide.Screen
	if err := json.NewDecoder(resp.Body).Decode(&scr); err != nil {
		t.Fatal(err)
	}
	if scr.Section != model.SectionOverview || scr.Overview == nil || scr.Detail != nil {
		t.Fatalf("screen = %+v", scr)
	}
}

func TestEventFlow(t *testing.T) {
	ts, store := newTestServer(t)

	_, scr, _ := postEvent(t, ts, `{"type":"select_section","arg":"flashcards"}`)
	if scr.Card == nil || scr.Card.Index != 0 {
		t.Fatalf("card = %+v", scr.Card)
	}

	_, scr, _ = postEvent(t, ts, `{"type":"flip"}`)
	if !scr.Card.Flipped || scr.Card.Text != model.FlashcardAt(0).Answer {
		t.Fatalf("after flip: %+v", scr.Card)
	}

	_, scr, _ = postEvent(t, ts, `{"type":"open_detail","arg":"charm"}`)
	if scr.Detail == nil || scr.Detail.ID != model.Charm || scr.Card == nil {
		t.Fatalf("detail not layered over flashcards: %+v", scr)
	}

	_, scr, _ = postEvent(t, ts, `{"type":"reveal_solution","arg":"0"}`)
	if !scr.Detail.Exercises[0].Revealed || scr.Detail.Exercises[0].Solution == "" {
		t.Fatal("solution not revealed")
	}

	if got := store.State().DetailedAlgo; got != model.Charm {
		t.Fatalf("store detail = %q", got)
	}
}

func TestRejectedEvents(t *testing.T) {
	ts, store := newTestServer(t)
	before := store.State()

	tests := []string{
		`{"type":"select_section","arg":"settings"}`,
		`{"type":"toggle_algorithm","arg":"kmeans"}`,
		`{"type":"reveal_solution","arg":"0"}`,
		`{"type":"launch"}`,
		`not json`,
	}
	for _, body := range tests {
		resp, _, errBody := postEvent(t, ts, body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", body, resp.StatusCode)
		}
		if errBody["error"] == "" {
			t.Errorf("%s: no error message", body)
		}
	}
	if store.State() != before {
		t.Fatal("rejected events changed state")
	}
}

func TestHelp(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/help")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), model.Version) {
		t.Fatal("help missing version")
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewServer(guide.NewStore(guide.NewState())).Serve(ctx, ln)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/state")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestAccordionScriptRendersEntryBody(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/app.js")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	js := string(body)
	for _, want := range []string{"entryBody(p.entry)", "e.steps", "e.properties", "e.optimization", "e.advantage", "e.example"} {
		if !strings.Contains(js, want) {
			t.Errorf("app.js missing %q", want)
		}
	}
}
