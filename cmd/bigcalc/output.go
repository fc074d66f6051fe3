package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger returns a human-readable logger writing to w.
// Debug events are only written when verbose is set.
func newLogger(w io.Writer, verbose, colored bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !colored,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// printError writes err to w with a highlighted "error:" prefix.
func (a *app) printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", a.errColor.Sprint("error:"), err)
}

// errFailed summarizes failed expressions, or returns nil if there were none.
func errFailed(failed, total int) error {
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d expressions failed", failed, total)
}
