package estimator

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a schema could not be priced.
type ErrorKind int

const (
	// MalformedSchema: missing Vertices/Edges collections, duplicate or
	// unparseable ids, or edges referencing unknown vertices.
	MalformedSchema ErrorKind = iota + 1
	// NoClosedCurve: the schema graph contains no cycle, so there is no
	// profile to cut out.
	NoClosedCurve
	// DegenerateArc: a circular arc whose endpoints coincide.
	DegenerateArc
	// ParseFailure: the input could not be decoded at all. Raised by the
	// loader, never by the core.
	ParseFailure
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedSchema:
		return "malformed schema"
	case NoClosedCurve:
		return "no closed curve"
	case DegenerateArc:
		return "degenerate arc"
	case ParseFailure:
		return "parse failure"
	default:
		return "unknown"
	}
}

// Error is a classified, per-schema estimation failure. All pipeline
// errors are fail-fast: no partial price accompanies an Error.
type Error struct {
	Kind   ErrorKind
	Schema string
	Err    error
	msg    string
}

func (e *Error) Error() string {
	detail := e.msg
	if detail == "" && e.Err != nil {
		detail = e.Err.Error()
	}
	if detail == "" {
		return fmt.Sprintf("%s: %s", e.Schema, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Schema, e.Kind, detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, schema, format string, args ...any) *Error {
	return &Error{Kind: kind, Schema: schema, msg: fmt.Sprintf(format, args...)}
}

// Kind extracts the classification from an error, or 0 when the error
// did not originate from the estimator.
func Kind(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
