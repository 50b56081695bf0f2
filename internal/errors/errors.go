// Package errors formats decafc diagnostics: position-aware messages
// with optional source context and ANSI coloring, plus the exact wire
// format each pipeline stage's error taxon expects.
package errors

import (
	"fmt"
	"strings"

	"github.com/go-decaf/decafc/pkg/token"
)

// Stage tags which of the four error taxa produced a
// CompilerError, and therefore which wire format Error() renders.
type Stage int

const (
	// Lex errors: "Scanner: Line <n> - Error: <msg>".
	Lex Stage = iota
	// Parse errors: "Line: <n> - Expected ...: ...".
	Parse
	// Semantic errors: the bare rule-specific message.
	Semantic
	// Internal marks an invariant violation that should be unreachable.
	Internal
)

// CompilerError is a single diagnostic with enough context to render
// both the terse wire format and a human-friendly, source-
// annotated one for terminal use.
type CompilerError struct {
	Stage   Stage
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// New constructs a CompilerError for the given stage.
func New(stage Stage, pos token.Position, message, source, file string) *CompilerError {
	return &CompilerError{Stage: stage, Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface using the wire format.
func (e *CompilerError) Error() string {
	switch e.Stage {
	case Lex:
		return fmt.Sprintf("Scanner: Line %d - Error: %s", e.Pos.Line, e.Message)
	case Parse:
		return fmt.Sprintf("Line: %d - %s", e.Pos.Line, e.Message)
	case Internal:
		return fmt.Sprintf("Internal error at line %d: %s", e.Pos.Line, e.Message)
	default: // Semantic
		return e.Message
	}
}

// Format renders a human-readable diagnostic with source context and an
// optional caret, for terminal/--debug use. color enables ANSI codes.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("Error at line %d:%d\n", e.Pos.Line, e.Pos.Column))
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+max(e.Pos.Column-1, 0)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Error())
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func (e *CompilerError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// List accumulates CompilerErrors for a single stage run (// lex and semantic stages accumulate; parse short-circuits at the first
// one it returns with).
type List struct {
	Stage  Stage
	Source string
	File   string
	items  []*CompilerError
}

// NewList creates an empty List for the given stage.
func NewList(stage Stage, source, file string) *List {
	return &List{Stage: stage, Source: source, File: file}
}

// Add records a new diagnostic at pos.
func (l *List) Add(pos token.Position, format string, args ...any) {
	l.items = append(l.items, New(l.Stage, pos, fmt.Sprintf(format, args...), l.Source, l.File))
}

// AddError appends an already-built CompilerError as-is, keeping its
// own Stage.
func (l *List) AddError(err *CompilerError) {
	l.items = append(l.items, err)
}

// Empty reports whether no diagnostics were recorded.
func (l *List) Empty() bool { return len(l.items) == 0 }

// Items returns the accumulated diagnostics in emission order.
func (l *List) Items() []*CompilerError { return l.items }

// Lines renders each diagnostic on its own wire-format line.
func (l *List) Lines() []string {
	lines := make([]string, len(l.items))
	for i, it := range l.items {
		lines[i] = it.Error()
	}
	return lines
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
