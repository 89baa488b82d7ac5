// Package serr classifies the failures of the region analysis and its
// surfaces.
//
// The analysis has a small, fixed failure taxonomy: the input adjacency can
// be malformed (ErrInvalidInput), the graph shape can fall outside the
// documented contract (ErrUnsupported), or a post-analysis consistency check
// can fail, which is always a bug (ErrInvariant). The outer surfaces add
// serialization failures (ErrBadFormat) and missing resources (ErrNotFound).
//
// Each kind is a sentinel error. Constructed errors wrap both their kind and
// their cause through multi-error unwrapping, so a single errors.Is answers
// "was the input bad?" no matter how deep the failure happened:
//
//	err := serr.E(serr.ErrInvalidInput, "augment", "reserved label %q in use", label)
//	if errors.Is(err, serr.ErrInvalidInput) {
//	    // reject, don't retry
//	}
//
//	// attach a cause
//	err := serr.Wrap(serr.ErrBadFormat, "decode", cause, "graph %s", path)
//
// The op string names the pipeline stage or surface operation that failed
// (augment, classify, regions, pst, decode, archive, ...); it prefixes the
// rendered message so an error read in a log locates itself.
package serr

import (
	"errors"
	"fmt"
)

// The failure kinds. Match with errors.Is.
var (
	// ErrInvalidInput: the adjacency is inconsistent, empty, or collides
	// with reserved labels. Raised before any traversal work.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupported: the graph shape is outside the documented contract.
	ErrUnsupported = errors.New("unsupported graph shape")

	// ErrInvariant: a post-analysis consistency check failed. Always a bug.
	ErrInvariant = errors.New("internal invariant violated")

	// ErrBadFormat: a serialization could not be decoded or encoded.
	ErrBadFormat = errors.New("malformed serialization")

	// ErrNotFound: a file or archived resource does not exist.
	ErrNotFound = errors.New("not found")
)

// opError carries a failure kind, the operation that failed, and an
// optional cause. Unwrap exposes kind and cause together, so errors.Is
// matches either.
type opError struct {
	kind  error
	op    string
	msg   string
	cause error
}

// E returns a leaf error of the given kind.
func E(kind error, op, format string, args ...any) error {
	return &opError{kind: kind, op: op, msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and operation context to an underlying cause.
func Wrap(kind error, op string, cause error, format string, args ...any) error {
	return &opError{kind: kind, op: op, msg: fmt.Sprintf(format, args...), cause: cause}
}

// Error renders "op: msg: cause", dropping the parts that are absent.
func (e *opError) Error() string {
	s := e.msg
	if e.op != "" {
		s = e.op + ": " + s
	}
	if e.cause != nil {
		s += ": " + e.cause.Error()
	}
	return s
}

// Unwrap reports both the kind and the cause for errors.Is/As traversal.
func (e *opError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}

// CodeOf maps an error to its machine-readable wire code, used by the HTTP
// API. Unclassified errors map to the empty string.
func CodeOf(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "INVALID_INPUT"
	case errors.Is(err, ErrUnsupported):
		return "UNSUPPORTED"
	case errors.Is(err, ErrInvariant):
		return "INTERNAL_INVARIANT"
	case errors.Is(err, ErrBadFormat):
		return "INVALID_FORMAT"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	default:
		return ""
	}
}

// UserMessage returns the message without the cause chain, for display to
// end users. Errors not built by this package render as-is.
func UserMessage(err error) string {
	var e *opError
	if errors.As(err, &e) {
		if e.op != "" {
			return e.op + ": " + e.msg
		}
		return e.msg
	}
	return err.Error()
}
