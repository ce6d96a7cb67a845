package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// newLogger creates the command line logger. JSON output is used when
// requested or when w is not a terminal.
func newLogger(w *os.File, level string, forceJSON bool) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "tiletwister",
		Level:           lvl,
	}
	if forceJSON || !term.IsTerminal(int(w.Fd())) {
		opts.Formatter = log.JSONFormatter
	}

	return log.NewWithOptions(w, opts), nil
}
