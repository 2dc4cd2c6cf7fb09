package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/spf13/pflag"
)

func parseDetail(t *testing.T, args ...string) (string, []string) {
	t.Helper()
	fs := pflag.NewFlagSet("dmguide", pflag.ContinueOnError)
	detail := fs.StringP("detail", "D", "", "")
	fs.Lookup("detail").NoOptDefVal = pickDetail
	fs.BoolP("report", "r", false, "")
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return resolveDetail(*detail, fs.Args())
}

func TestResolveDetail(t *testing.T) {
	tests := []struct {
		args []string
		want string
		rest []string
	}{
		{[]string{"--detail", "charm"}, "charm", nil},
		{[]string{"-D", "gsp"}, "gsp", nil},
		{[]string{"--detail=eclat"}, "eclat", nil},
		{[]string{"-Dfptree"}, "fptree", nil},
		{[]string{"--detail"}, pickDetail, nil},
		{[]string{"--detail", "charm", "extra"}, "charm", []string{"extra"}},
		{[]string{"--report"}, "", nil},
		{[]string{"stray"}, "", []string{"stray"}},
	}
	for _, tt := range tests {
		got, rest := parseDetail(t, tt.args...)
		if got != tt.want {
			t.Errorf("%v: detail = %q, want %q", tt.args, got, tt.want)
		}
		if !slices.Equal(rest, tt.rest) {
			t.Errorf("%v: rest = %q, want %q", tt.args, rest, tt.rest)
		}
	}
}

func TestBatchModesIgnoreBrokenConfig(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the binary")
	}
	tmpDir := t.TempDir()
	badConfig := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(badConfig, []byte("ui: [not, a, map\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	bin := filepath.Join(tmpDir, "dmguide")
	build := exec.Command("go", "build", "-o", bin, ".")
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("failed to build dmguide: %v\n%s", err, out)
	}

	run := func(args ...string) []byte {
		t.Helper()
		cmd := exec.Command(bin, args...)
		cmd.Dir = tmpDir
		out, err := cmd.Output()
		if err != nil {
			t.Fatalf("command %v failed: %v\n%s", args, err, out)
		}
		return out
	}

	if out := run("--json", "-c", badConfig); !json.Valid(out) {
		t.Fatalf("--json did not return valid JSON: %s", out)
	}
	if out := run("--report", "--raw", "-c", badConfig); !strings.HasPrefix(string(out), "# Data Mining Study Guide") {
		t.Fatalf("unexpected report start: %.80s", out)
	}
	if out := run("--detail", "charm", "--raw", "-c", badConfig); !strings.HasPrefix(string(out), "# CHARM") {
		t.Fatalf("--detail charm printed: %.80s", out)
	}
}
