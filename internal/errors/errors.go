// Package errors formats Orange compiler diagnostics with source context:
// a file:line header and the offending line verbatim (no caret, since
// positions carry no column). Every
// CompilerError the core produces is terminal — the core packages only ever
// return one as a Go error value; cmd/orangec is the one place that formats
// it for a human and calls os.Exit(1).
package errors

import (
	"fmt"
	"strings"

	"github.com/orange-lang/orangec/internal/token"
)

// CompilerError is a single file/line-tagged compilation error.
type CompilerError struct {
	Message string
	Source  string
	Pos     token.Position
}

// New creates a CompilerError at pos with the given message, formatted
// against source for line-context rendering.
func New(pos token.Position, source, format string, args ...any) *CompilerError {
	return &CompilerError{Pos: pos, Source: source, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *CompilerError) Error() string {
	return e.Format()
}

// Format renders "file:line error: message" followed by the source line,
// when one is available.
func (e *CompilerError) Format() string {
	var sb strings.Builder

	file := e.Pos.File
	if file == "" {
		file = "<input>"
	}
	fmt.Fprintf(&sb, "%s:%d error: %s\n", file, e.Pos.Line+1, e.Message)

	if line := e.sourceLine(e.Pos.Line); line != "" {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// sourceLine returns the 0-based line from e.Source, or "" if out of range.
func (e *CompilerError) sourceLine(line int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if line < 0 || line >= len(lines) {
		return ""
	}
	return lines[line]
}

// FormatAll joins multiple errors, one rendered CompilerError per
// blank-line-separated block.
func FormatAll(errs []*CompilerError) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Format()
	}
	return strings.Join(parts, "\n")
}
