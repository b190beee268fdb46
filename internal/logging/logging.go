// ABOUTME: Structured logging setup using log/slog
// ABOUTME: Writes to a file in the config directory so the TUI owns the terminal

package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

var logFile *os.File

// Init configures the default slog logger to append to debug.log inside the
// config directory. Terminal output would corrupt the TUI frame, so stdout is
// never used. An empty configDir discards all output.
func Init(configDir string, debug bool) error {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var w io.Writer = io.Discard
	if configDir != "" {
		if err := os.MkdirAll(configDir, 0700); err != nil {
			return err
		}
		f, err := os.OpenFile(filepath.Join(configDir, "debug.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return err
		}
		logFile = f
		w = f
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, opts)))
	return nil
}

// Close releases the log file if one was opened.
func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
