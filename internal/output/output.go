// Package output provides formatted output utilities for the CLI.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Writer handles CLI output formatting.
type Writer struct {
	out   io.Writer
	err   io.Writer
	color bool
	quiet bool
}

// New creates a new Writer with default settings.
func New() *Writer {
	return &Writer{
		out:   os.Stdout,
		err:   os.Stderr,
		color: isTerminal(),
	}
}

// NewWithWriters creates a Writer with custom io.Writers (for testing).
func NewWithWriters(out, err io.Writer, color bool) *Writer {
	return &Writer{
		out:   out,
		err:   err,
		color: color,
	}
}

// SetQuiet enables or disables quiet mode.
func (w *Writer) SetQuiet(quiet bool) {
	w.quiet = quiet
}

// Println writes a line to stdout.
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Errorln writes a line to stderr.
func (w *Writer) Errorln(format string, args ...interface{}) {
	fmt.Fprintf(w.err, format+"\n", args...)
}

// Warning prints a warning message to stderr.
func (w *Writer) Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Errorln("%swarning:%s %s", yellow, reset, msg)
	} else {
		w.Errorln("warning: %s", msg)
	}
}

// ErrorPrefix prints an error message with zcalibrate prefix to stderr.
func (w *Writer) ErrorPrefix(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Errorln("%szcalibrate:%s %s", red, reset, msg)
	} else {
		w.Errorln("zcalibrate: %s", msg)
	}
}

// RunSucceeded reports a completed calibration (skipped in quiet mode).
func (w *Writer) RunSucceeded(z int, thresholds string) {
	if w.quiet {
		return
	}
	if w.color {
		w.Println("%s[z=%02d]%s %s %s✓%s", green, z, reset, thresholds, green, reset)
	} else {
		w.Println("[z=%02d] %s done", z, thresholds)
	}
}

// RunFailed reports a calibration with failed stages and the retained
// workspace (skipped in quiet mode).
func (w *Writer) RunFailed(z int, stages []string, workspace string) {
	if w.quiet {
		return
	}
	failed := strings.Join(stages, ", ")
	if w.color {
		w.Errorln("%s[z=%02d] failed:%s %s %s(workspace kept at %s)%s", red, z, reset, failed, dim, workspace, reset)
	} else {
		w.Errorln("[z=%02d] failed: %s (workspace kept at %s)", z, failed, workspace)
	}
}

// isTerminal returns true if stdout is a terminal.
func isTerminal() bool {
	if fi, _ := os.Stdout.Stat(); fi != nil {
		return (fi.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// ANSI color codes.
const (
	reset  = "\033[0m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
)
