package cflat

import (
	"fmt"
	"strings"
)

// SyntaxError is a lexer/parser/resolver diagnostic: reported, but never
// fatal to the run that produced it (spec.md §7) — the driver decides
// whether to execute based on whether any were collected.
type SyntaxError struct {
	File    string
	Line    int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("[%s ln %d] Syntax: %s", e.File, e.Line, e.Message)
}

// RuntimeError is an evaluator diagnostic. Every runtime error is fatal to
// the program (spec.md §7): the driver prints it and exits non-zero.
type RuntimeError struct {
	Token   Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[%s ln %d] Runtime: %s", e.Token.File, e.Token.Line, e.Message)
}

func newRuntimeError(tok Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// Diagnostics collects every syntax error seen during a parse, grounded on
// the teacher's MultiError (errors.go): spec.md §7 requires the parser to
// "re-rail" and keep going so a user sees every error in one run, rather
// than stopping at the first.
type Diagnostics struct {
	errs []*SyntaxError
}

func (d *Diagnostics) Add(file string, line int, message string) {
	d.errs = append(d.errs, &SyntaxError{File: file, Line: line, Message: message})
}

func (d *Diagnostics) HasErrors() bool {
	return len(d.errs) > 0
}

func (d *Diagnostics) Errors() []*SyntaxError {
	return d.errs
}

func (d *Diagnostics) String() string {
	if len(d.errs) == 0 {
		return ""
	}
	lines := make([]string, len(d.errs))
	for i, e := range d.errs {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}
