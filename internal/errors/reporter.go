package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// ErrorLevel represents the severity of a diagnostic.
type ErrorLevel string

const (
	Error ErrorLevel = "error"
	Note  ErrorLevel = "note"
	Help  ErrorLevel = "help"
)

// Reporter formats KernelError values with rustc-like styling, the same
// convention the teacher project's diagnostics use — except a kernel
// diagnostic has no source position to underline, it has a Left/Right
// trace from the root of the checked term down to the failing sub-term.
type Reporter struct {
	// Source, when non-empty, is attributed to the term/command being
	// checked (e.g. the surface-syntax text that produced the failing
	// term) and is shown as context above the trace.
	Source string
}

// NewReporter creates a reporter. source may be empty when no surface
// text is available (e.g. errors from programmatic builder use).
func NewReporter(source string) *Reporter {
	return &Reporter{Source: source}
}

// FormatError renders a KernelError: header, trace path, offending
// sub-terms, then suggestions/notes/help, mirroring the teacher's
// reporter.go section ordering but substituting the trace for a location.
func (r *Reporter) FormatError(err KernelError) string {
	var b strings.Builder

	levelColor := r.getLevelColor(Error)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	b.WriteString(fmt.Sprintf("%s[%s]: %s\n", levelColor(string(Error)), err.Code, err.Message))

	if r.Source != "" {
		b.WriteString(fmt.Sprintf("  %s %s\n", dim("-->"), r.Source))
	}

	if len(err.Trace) > 0 {
		b.WriteString(fmt.Sprintf("  %s %s\n", dim("│"), bold("path: "+r.formatTrace(err.Trace))))
	}

	for _, term := range err.Terms {
		b.WriteString(fmt.Sprintf("  %s   %s\n", dim("│"), term))
	}

	if len(err.Suggestions) > 0 {
		b.WriteString(fmt.Sprintf("  %s\n", dim("│")))
		suggestionColor := color.New(color.FgCyan).SprintFunc()
		for i, s := range err.Suggestions {
			if i == 0 {
				b.WriteString(fmt.Sprintf("  %s %s: %s\n", suggestionColor("help"), suggestionColor("try"), s))
			} else {
				b.WriteString(fmt.Sprintf("  %s       %s\n", suggestionColor(" "), s))
			}
		}
	}

	for _, note := range err.Notes {
		noteColor := color.New(color.FgBlue).SprintFunc()
		b.WriteString(fmt.Sprintf("  %s %s %s\n", dim("│"), noteColor("note:"), note))
	}

	if err.HelpText != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		b.WriteString(fmt.Sprintf("  %s %s %s\n", dim("│"), helpColor("help:"), err.HelpText))
	}

	b.WriteString("\n")
	return b.String()
}

// formatTrace renders a trace as "root -> Left -> Right -> ...".
func (r *Reporter) formatTrace(trace Trace) string {
	steps := make([]string, len(trace))
	for i, s := range trace {
		steps[i] = s.String()
	}
	return "root -> " + strings.Join(steps, " -> ")
}

func (r *Reporter) getLevelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Error:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}
