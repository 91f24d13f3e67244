// Package errors defines the closed taxonomy of failures the interpreter
// can surface to a host, and a structured error type that carries enough
// context (kind, message, offending form) to render a useful diagnostic.
package errors

import "fmt"

// Kind is one of the closed set of failure categories the core can raise.
// The set is intentionally closed: callers may switch exhaustively on it.
type Kind string

const (
	ReaderError          Kind = "ReaderError"
	UnmatchedParentheses Kind = "UnmatchedParentheses"
	UnmatchedQuotation   Kind = "UnmatchedQuotation"
	UndefinedVariable    Kind = "UndefinedVariable"
	UndefinedProcedure   Kind = "UndefinedProcedure"
	InvalidArity         Kind = "InvalidArity"
	IllegalFunctionCall  Kind = "IllegalFunctionCall"
	IllegalVariableName  Kind = "IllegalVariableName"
	IllegalProcedureName Kind = "IllegalProcedureName"
	SymbolLocked         Kind = "SymbolLocked"
	ArithmeticError      Kind = "ArithmeticError"
	TypeMismatch         Kind = "TypeMismatch"
)

// LispError is the structured error type returned by every subsystem of
// the core. It never wraps a lower-level error: it IS the error.
type LispError struct {
	ErrKind   Kind
	Message   string
	Offending string // printed form of the offending datum, if any
}

// New creates a LispError with no offending-datum context.
func New(kind Kind, format string, args ...any) *LispError {
	return &LispError{ErrKind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewWithDatum creates a LispError that names the offending datum's
// printed representation in its message.
func NewWithDatum(kind Kind, offending string, format string, args ...any) *LispError {
	return &LispError{
		ErrKind:   kind,
		Message:   fmt.Sprintf(format, args...),
		Offending: offending,
	}
}

// Kind returns the error's failure category.
func (e *LispError) Kind() Kind {
	return e.ErrKind
}

// Error implements the error interface.
func (e *LispError) Error() string {
	return e.Format(false)
}

// Format renders the error as "<kind>: <message> (near: <offending>)".
// When color is true, the kind is highlighted with ANSI bold.
func (e *LispError) Format(color bool) string {
	kind := string(e.ErrKind)
	if color {
		kind = "\033[1;31m" + kind + "\033[0m"
	}
	msg := kind + ": " + e.Message
	if e.Offending != "" {
		msg += " (near: " + e.Offending + ")"
	}
	return msg
}

// Is supports errors.Is(err, Kind) style matching against a *LispError
// of the same kind constructed with errors.New(kind, "").
func (e *LispError) Is(target error) bool {
	other, ok := target.(*LispError)
	if !ok {
		return false
	}
	return e.ErrKind == other.ErrKind
}
