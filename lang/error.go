package lang

import (
	"errors"
	"log/slog"
	"strings"
)

// Predefined errors (sentinel values). Test with [errors.Is]; the identity
// of a sentinel survives [Error.Wrap] and [Error.With].
var (
	// ErrFormatSyntax is the parent of every document grammar error.
	ErrFormatSyntax       = NewError("format syntax error")
	ErrEmptyGroupName     = ErrFormatSyntax.derive("group name cannot be empty")
	ErrDuplicateGroupName = ErrFormatSyntax.derive("duplicate group name")
	ErrEmptyKeyName       = ErrFormatSyntax.derive("key name cannot be empty")
	ErrDuplicateKeyName   = ErrFormatSyntax.derive("duplicate key name")
	ErrEmptyValue         = ErrFormatSyntax.derive("value cannot be empty")
	ErrInvalidGroupName   = ErrFormatSyntax.derive("group name cannot be rendered")
	ErrInvalidKeyName     = ErrFormatSyntax.derive("key name cannot be rendered")
	ErrMultilineValue     = ErrFormatSyntax.derive("value spans multiple lines")

	// ErrValueSyntax reports a malformed value literal.
	ErrValueSyntax   = NewError("value syntax error")
	ErrInvalidFloat  = ErrValueSyntax.derive("invalid float value")
	ErrInvalidInt    = ErrValueSyntax.derive("invalid integer value")
	ErrInvalidNative = ErrValueSyntax.derive("unsupported native value")

	ErrInvalidKeyFormat = NewError("invalid key format")
	ErrKeyNotFound      = NewError("key not found")
	ErrReadFile         = NewError("failed to read file")
	ErrWriteFile        = NewError("failed to write file")
	ErrQuery            = NewError("query failed")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg    string
	err    error       // wrapped cause, for errors.Unwrap
	attrs  []slog.Attr // attributes for structured logging
	base   *Error      // sentinel this error was derived from
	parent *Error      // category of base, if any
}

// NewError creates a new sentinel Error with a message.
func NewError(msg string) *Error {
	e := &Error{msg: msg}
	e.base = e

	return e
}

// derive creates a sentinel that also matches its parent category.
func (e *Error) derive(msg string) *Error {
	d := NewError(msg)
	d.parent = e.base

	return d
}

// WrapError converts err into an *Error. An *Error anywhere in the chain is
// returned as is.
func WrapError(err error) *Error {
	if err == nil {
		return nil
	}

	var ee *Error
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
//
// The message is "<msg> [k=v ...]: <cause>", where each part is present only
// if set.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(e.msg)

	if len(e.attrs) > 0 {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteByte('[')

		for i, a := range e.attrs {
			if i > 0 {
				sb.WriteByte(' ')
			}

			sb.WriteString(a.String())
		}

		sb.WriteByte(']')
	}

	if e.err != nil {
		if sb.Len() > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(e.err.Error())
	}

	return sb.String()
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from, or that
// sentinel's category.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}

	if t == e {
		return true
	}

	if e.base == nil {
		return false
	}

	return t == e.base || t == e.base.parent
}

// Attr returns the value of the attribute with the given key.
func (e *Error) Attr(key string) (slog.Value, bool) {
	for _, a := range e.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}

	return slog.Value{}, false
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	c := *e
	c.err = err

	return &c
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	c := *e
	c.attrs = make([]slog.Attr, 0, len(e.attrs)+len(attrs))
	c.attrs = append(c.attrs, e.attrs...)
	c.attrs = append(c.attrs, attrs...)

	return &c
}
