// Package logging builds the diagnostic logger shared by commands.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w. Diagnostics are hidden unless verbose
// is set; warnings and errors are always shown.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Prefix:          "codegauge",
		Level:           level,
		ReportTimestamp: verbose,
	})
}
