// Package errors provides structured error reporting for the component
// library.
//
// UI code never surfaces errors to end users: geometry degrades to
// zero-size rects and a panicking content closure only loses its own
// overlay for that frame. What does go wrong is reported here, through a
// replaceable [ErrorHandler], so applications can log or collect it.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates invalid configuration or theme data.
	KindConfig
	// KindParsing indicates a value that could not be parsed.
	KindParsing
	// KindRender indicates a backend failed to draw or present a frame.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindParsing:
		return "parsing"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error is a structured error carrying the failed operation and its kind.
type Error struct {
	// Op is the operation that failed (e.g., "theme.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Path is the file involved, if any.
	Path string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "overlay.content").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents a value that could not be parsed.
type ParseError struct {
	// Field names what was being parsed (e.g., "colors.popover").
	Field string
	// Value is the raw input.
	Value string
	// Reason explains the failure.
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s from %q: %s", e.Field, e.Value, e.Reason)
}

// ErrorHandler receives reported errors.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Wrap builds an *Error for op and kind around err. It returns nil when
// err is nil so it can wrap call results directly.
func Wrap(op string, kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Kind: kind, Err: err}
}
