// Package stage runs one external pipeline program with explicit stream redirection.
package stage

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Name identifies a pipeline stage.
type Name string

const (
	// Extract derives per-assay mean/SD values from the EGT file.
	Extract Name = "extract"
	// Fit fits beta coefficients to the mean/SD table.
	Fit Name = "fit"
	// Threshold derives the threshold table for one Z score.
	Threshold Name = "threshold"
)

var titleCase = cases.Title(language.English)

// Title returns the display name of the stage (e.g., "Extract").
func (n Name) Title() string {
	return titleCase.String(string(n))
}

// Command describes a single program invocation.
//
// Arguments are passed to the program verbatim; no shell is involved, so
// paths containing spaces or shell metacharacters need no quoting.
type Command struct {
	Stage   Name
	Program string
	Args    []string

	// Stdin is a file to read standard input from. Empty means no input.
	Stdin string
	// Stdout is a file that receives standard output, truncated first.
	// Empty means the stream is discarded.
	Stdout string
	// Stderr is a file that receives standard error, truncated first.
	// Empty means the stream is inherited from the calling process.
	Stderr string
}

// String renders the command the way an operator would type it, including redirections.
func (c Command) String() string {
	var b strings.Builder
	b.WriteString(c.Program)
	for _, arg := range c.Args {
		b.WriteByte(' ')
		b.WriteString(quoteArg(arg))
	}
	if c.Stdin != "" {
		b.WriteString(" < ")
		b.WriteString(quoteArg(c.Stdin))
	}
	if c.Stdout != "" {
		b.WriteString(" > ")
		b.WriteString(quoteArg(c.Stdout))
	}
	if c.Stderr != "" {
		b.WriteString(" 2> ")
		b.WriteString(quoteArg(c.Stderr))
	}
	return b.String()
}

// quoteArg single-quotes an argument for display when it contains characters
// a shell would interpret.
func quoteArg(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"\\$`&|;<>()*?[]{}~#!") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Result is the outcome of one command execution.
type Result struct {
	Stage       Name
	Description string // Rendered command line
	ExitCode    int    // Process exit status; -1 when the process never ran to completion
	Err         error  // Start or redirection failure, nil for a normal exit
}

// Success reports whether the command exited with status zero.
func (r Result) Success() bool {
	return r.Err == nil && r.ExitCode == 0
}
