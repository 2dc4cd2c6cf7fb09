package model

import (
	_ "embed"
	"strings"
)

// Version is the release version, overridden at link time with
// -ldflags "-X dmguide/internal/model.Version=...".
var Version = "0.3.0"

// Release repository used by the update check.
const (
	RepoOwner = "dmguide"
	RepoName  = "dmguide"
)

//go:embed help.md
var helpMD string

// HelpMarkdown returns the keyboard and usage help with the version filled in.
func HelpMarkdown() string {
	return strings.ReplaceAll(helpMD, "{{VERSION}}", Version)
}
