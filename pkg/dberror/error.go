package dberror

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrorCategory classifies errors by their nature and appropriate handling strategy.
type ErrorCategory int

const (
	// ErrCategoryUser represents errors caused by invalid user input or operations.
	// Examples: invalid SQL syntax, unknown tables, type mismatches.
	// These errors are fixable by modifying the statement.
	ErrCategoryUser ErrorCategory = iota

	// ErrCategorySystem represents errors requiring administrator intervention.
	// Examples: the data directory is not writable, a page file vanished.
	ErrCategorySystem

	// ErrCategoryData represents errors related to data corruption or integrity.
	// Examples: a page file whose size is not a multiple of the page size.
	ErrCategoryData
)

func (c ErrorCategory) String() string {
	switch c {
	case ErrCategoryUser:
		return "user"
	case ErrCategorySystem:
		return "system"
	case ErrCategoryData:
		return "data"
	default:
		return "unknown"
	}
}

// NoPosition marks errors that are not tied to a location in the statement text.
const NoPosition = -1

// DBError represents a structured database error with rich context information.
type DBError struct {
	// Kind is the error kind, which doubles as the error code (e.g. "NOT_FOUND").
	Kind Kind

	// Category classifies the error for appropriate handling strategy.
	Category ErrorCategory

	// Message is a human-readable description of what went wrong.
	Message string

	// Detail provides additional context about the specific error instance.
	// Example: "table 'users' in database 'd'".
	Detail string

	// Hint suggests how the user might fix or work around this error.
	Hint string

	// Position is the character offset from the start of the statement for
	// lexical and syntax errors, or NoPosition.
	Position int

	// Operation identifies the operation that was being performed when the error occurred.
	// Examples: "CreateTable", "Append", "Execute".
	Operation string

	// Component identifies the system component where the error originated.
	// Examples: "Lexer", "Catalog", "Heap".
	Component string

	// Cause is the underlying error that triggered this database error.
	Cause error

	// Stack contains the call stack where this error was created.
	Stack []uintptr
}

// New creates a new DBError with the specified kind and message.
func New(kind Kind, message string) *DBError {
	return &DBError{
		Kind:     kind,
		Category: kind.category(),
		Message:  message,
		Position: NoPosition,
		Stack:    captureStack(),
	}
}

// Newf is New with a formatted message.
func Newf(kind Kind, format string, args ...any) *DBError {
	return &DBError{
		Kind:     kind,
		Category: kind.category(),
		Message:  fmt.Sprintf(format, args...),
		Position: NoPosition,
		Stack:    captureStack(),
	}
}

// Wrap wraps an existing error with database-specific context information.
// If the error is already a DBError, it enriches the existing error with
// operation and component context (only if not already set).
func Wrap(err error, kind Kind, operation, component string) *DBError {
	if err == nil {
		return nil
	}

	var dbErr *DBError
	if errors.As(err, &dbErr) {
		if dbErr.Operation == "" {
			dbErr.Operation = operation
		}
		if dbErr.Component == "" {
			dbErr.Component = component
		}
		return dbErr
	}

	return &DBError{
		Kind:      kind,
		Category:  kind.category(),
		Message:   err.Error(),
		Position:  NoPosition,
		Operation: operation,
		Component: component,
		Cause:     err,
		Stack:     captureStack(),
	}
}

// WithDetail sets Detail and returns the receiver for chaining.
func (e *DBError) WithDetail(detail string) *DBError {
	e.Detail = detail
	return e
}

// WithHint sets Hint and returns the receiver for chaining.
func (e *DBError) WithHint(hint string) *DBError {
	e.Hint = hint
	return e
}

// At sets the statement position and returns the receiver for chaining.
func (e *DBError) At(pos int) *DBError {
	e.Position = pos
	return e
}

// In sets Operation and Component and returns the receiver for chaining.
func (e *DBError) In(operation, component string) *DBError {
	e.Operation = operation
	e.Component = component
	return e
}

// captureStack skips runtime.Callers, captureStack and the constructor.
func captureStack() []uintptr {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	return pcs[0:n]
}

// Error implements the standard Go error interface
//
// The format follows the pattern:
// [KIND] Message: Detail (at position N) caused by: underlying error
func (e *DBError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Kind, e.Message))

	if e.Detail != "" {
		b.WriteString(fmt.Sprintf(": %s", e.Detail))
	}

	if e.Position != NoPosition {
		b.WriteString(fmt.Sprintf(" (at position %d)", e.Position))
	}

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(" caused by: %v", e.Cause))
	}

	return b.String()
}

// Unwrap returns the underlying cause error, enabling error chain traversal
// with Go's standard error handling functions like errors.Is and errors.As.
func (e *DBError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a Kind sentinel or a DBError of the same kind.
func (e *DBError) Is(target error) bool {
	switch t := target.(type) {
	case Kind:
		return e.Kind == t
	case *DBError:
		return t != nil && e.Kind == t.Kind
	default:
		return false
	}
}

// FormatStack returns a human-readable stack trace for debugging purposes.
func (e *DBError) FormatStack() string {
	if len(e.Stack) == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(e.Stack)

	b.WriteString("Stack trace:\n")
	for {
		f, more := frames.Next()
		b.WriteString(fmt.Sprintf("  %s\n    %s:%d\n",
			f.Function, f.File, f.Line))
		if !more {
			break
		}
	}

	return b.String()
}

// KindOf returns the Kind of the first DBError in err's chain, or KindInternal
// for errors that did not originate in this module. KindOf(nil) is "".
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var dbErr *DBError
	if errors.As(err, &dbErr) {
		return dbErr.Kind
	}
	return KindInternal
}
