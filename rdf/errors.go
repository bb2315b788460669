package rdf

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyStatement indicates an attempt to encode a quad without
	// subject, predicate and object.
	ErrEmptyStatement = errors.New("rdf: empty statement")
	// ErrMissingField indicates a quad with a nil subject, predicate or
	// object.
	ErrMissingField = errors.New("rdf: missing statement fields")
)

// ParseError provides structured context for N-Quads parse failures.
type ParseError struct {
	// Line is the 1-based line number of the offending statement.
	Line int
	// Statement is the offending input line.
	Statement string
	// Err is the underlying error.
	Err error
}

func (e *ParseError) Error() string {
	var msg strings.Builder
	msg.WriteString("nquads")
	if e.Line > 0 {
		fmt.Fprintf(&msg, ":%d", e.Line)
	}
	msg.WriteString(": ")
	msg.WriteString(e.Err.Error())
	if e.Statement != "" {
		msg.WriteString("\n  ")
		msg.WriteString(excerpt(e.Statement))
	}
	return msg.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

func excerpt(statement string) string {
	const maxExcerptLen = 80
	if len(statement) > maxExcerptLen {
		return statement[:maxExcerptLen] + "..."
	}
	return statement
}

// wrapParseError adds line/statement context to a parse error.
func wrapParseError(line int, statement string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Line: line, Statement: statement, Err: err}
}
