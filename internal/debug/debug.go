// Package debug provides conditional debug logging for dmguide.
//
// Debug logging is enabled by setting the DMGUIDE_DEBUG environment variable:
//
//	DMGUIDE_DEBUG=1 dmguide --web
//
// The terminal UI owns the screen, so when it runs you usually also want
// DMGUIDE_DEBUG_FILE to send the log somewhere else:
//
//	DMGUIDE_DEBUG=1 DMGUIDE_DEBUG_FILE=/tmp/dmguide.log dmguide
//
// When disabled (default), Logger returns a logger that discards everything.
package debug

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	enabled bool
	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
	logFile *os.File
)

func init() {
	if os.Getenv("DMGUIDE_DEBUG") != "" {
		SetEnabled(true)
	}
}

// Enabled returns whether debug logging is enabled.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// SetEnabled turns debug logging on or off. Turning it on opens
// DMGUIDE_DEBUG_FILE for appending when set, and falls back to stderr.
func SetEnabled(e bool) {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	enabled = e
	if !e {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}

	var w io.Writer = os.Stderr
	if path := os.Getenv("DMGUIDE_DEBUG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			logFile = f
			w = f
		}
	}
	setOutput(w)
}

// SetOutput enables debug logging and points it at w. Used by tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
	setOutput(w)
}

func setOutput(w io.Writer) {
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With("component", "dmguide")
}

// Logger returns the current debug logger.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Log writes a debug message with structured attributes.
func Log(msg string, args ...any) {
	Logger().Debug(msg, args...)
}
