package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetOutput(t *testing.T) {
	t.Cleanup(func() { SetEnabled(false) })

	var buf bytes.Buffer
	SetOutput(&buf)
	if !Enabled() {
		t.Fatal("SetOutput did not enable logging")
	}

	Log("event applied", "event", "flip")
	out := buf.String()
	for _, want := range []string{"event applied", "event=flip", "component=dmguide"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestDisabledDiscards(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetEnabled(false)

	Log("should not appear")
	if buf.Len() != 0 {
		t.Fatalf("disabled logger wrote %q", buf.String())
	}
	if Enabled() {
		t.Fatal("still enabled")
	}
}
