// Package icerrors holds the error taxonomy shared by the lr1construct core
// and the server/CLI layers wrapping it, in the style of dekarrin/tunaq's
// server/serr package: a handful of sentinel errors identifying a failure
// category, plus an Error type that can wrap a cause while still answering
// true to errors.Is against the sentinel it represents.
package icerrors

import "errors"

var (
	// ErrEmptyGrammar is returned when a grammar text yields zero accepted
	// productions.
	ErrEmptyGrammar = errors.New("the grammar contains no usable productions")

	// ErrBadArgument is returned for a malformed request (missing grammar
	// field, non-string input, etc.).
	ErrBadArgument = errors.New("one or more of the arguments is invalid")

	// ErrUnknownSymbol identifies a token with no ACTION cell for the
	// current state, i.e. a parse error in the input string itself. The
	// driver reports such errors in parse.Result rather than returning this
	// error.
	ErrUnknownSymbol = errors.New("the input contains a token the grammar does not accept at that position")

	// ErrInternal covers any failure that should never happen given a
	// validated grammar -- a bug in table synthesis or the driver, not a
	// user-facing input problem.
	ErrInternal = errors.New("an internal error occurred while constructing the parser")
)

// Error is a typed error carrying a message and zero or more causes, exactly
// as dekarrin/tunaq's serr.Error does: errors.Is against any cause, or
// against an Error with an identical message and cause list, returns true.
type Error struct {
	msg   string
	cause []error
}

// New creates an Error with the given message and optional causes.
func New(msg string, causes ...error) Error {
	e := Error{msg: msg}
	if len(causes) > 0 {
		e.cause = make([]error, len(causes))
		copy(e.cause, causes)
	}
	return e
}

// Error implements the error interface: the message, followed by the first
// cause's message if one is set.
func (e Error) Error() string {
	if e.msg == "" && e.cause != nil {
		return e.cause[0].Error()
	}
	if e.cause != nil {
		return e.msg + ": " + e.cause[0].Error()
	}
	return e.msg
}

// Unwrap exposes every cause to the errors package (Go 1.20+ multi-error
// unwrap; on 1.19 errors.Is falls back to Is below).
func (e Error) Unwrap() []error {
	if len(e.cause) > 0 {
		return e.cause
	}
	return nil
}

// Is reports whether target is e itself or one of e's causes.
func (e Error) Is(target error) bool {
	if errTarget, ok := target.(Error); ok {
		if e.msg != errTarget.msg || len(e.cause) != len(errTarget.cause) {
			return false
		}
		for i := range e.cause {
			if e.cause[i] != errTarget.cause[i] {
				return false
			}
		}
		return true
	}

	for _, c := range e.cause {
		if c == target {
			return true
		}
	}
	return false
}
