package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// newLogger configures log/slog with tint's tinted console handler,
// colorized when stderr is a terminal and plain otherwise, per
// SPEC_FULL.md §8 Logging. The engine itself never logs; every log line
// here is CLI-level diagnostics (format-file loads, batch summaries,
// --verbose per-line parse failures).
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		NoColor:    !term.IsTerminal(int(os.Stderr.Fd())),
		TimeFormat: "15:04:05",
	}))
}
