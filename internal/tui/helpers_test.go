package tui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Apriori", 10, "Apriori"},
		{"Apriori", 7, "Apriori"},
		{"Apriori", 5, "Apri…"},
		{"Apriori", 1, "…"},
		{"Apriori", 0, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestTruncateWide(t *testing.T) {
	got := truncate("支持度支持度", 5)
	if w := runewidth.StringWidth(got); w > 5 {
		t.Fatalf("width %d > 5 for %q", w, got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("missing ellipsis: %q", got)
	}
}

func TestIndent(t *testing.T) {
	if got := indent("a\nb", "  "); got != "  a\n  b" {
		t.Fatalf("indent = %q", got)
	}
}

func TestThemeFor(t *testing.T) {
	if ThemeFor(false).Dark {
		t.Error("light theme marked dark")
	}
	if !ThemeFor(true).Dark {
		t.Error("dark theme not marked dark")
	}
}

func TestRenderMarkdownKeepsText(t *testing.T) {
	out := renderMarkdown("# Support\n\nsupport(X) = count / N", 60, false)
	if !strings.Contains(out, "Support") {
		t.Fatalf("rendered markdown lost heading: %q", out)
	}
}
