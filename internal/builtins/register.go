package builtins

import (
	"io"

	"github.com/AlxV07/golisp/internal/datum"
)

// LockedNames returns the closed set of names that may never be rebound
// (spec.md §4.5). Note this enumeration deliberately omits AND, OR and
// DISPLAY even though they are seeded builtins below: the spec's locked
// list names only the symbols below, so those three stay shadowable.
func LockedNames() datum.LockedSet {
	names := []string{
		"+", "-", "*", "/", "=", "<", ">", "NOT",
		"CONS", "CAR", "CDR", "LIST",
		"IF", "COND", "QUOTE",
		"DEFUN", "DEFVAR", "DEFPARAMETER", "LET", "LAMBDA", "FUNCTION", "FUNCALL",
		"PRINT", "NEWLINE",
		"NIL", "T",
	}
	set := make(datum.LockedSet, len(names))
	for _, n := range names {
		set[datum.NormalizeSymbolName(n)] = true
	}
	return set
}

// Register seeds env with every built-in procedure and constant, wiring
// print/display/newline to w.
func Register(env *datum.Environment, w io.Writer) {
	env.SeedVar("NIL", datum.NIL)
	env.SeedVar("T", datum.T)

	procs := map[string]datum.BuiltinFunc{
		"+": Add, "-": Sub, "*": Mul, "/": Div,
		"=": Equal, "<": LessThan, ">": GreaterThan, "not": Not,
		"and": And, "or": Or,
		"cons": Cons, "car": Car, "cdr": Cdr, "list": List,
		"quote": Quote, "if": If, "cond": Cond, "let": Let,
		"defun": Defun, "defvar": Defvar, "defparameter": Defparameter,
		"lambda": Lambda, "function": Function, "funcall": Funcall,
		"print":   printFn(w),
		"display": displayFn(w),
		"newline": newlineFn(w),
	}
	for name, fn := range procs {
		normalized := datum.NormalizeSymbolName(name)
		env.SeedBuiltin(normalized, datum.NewBuiltin(normalized, fn))
	}
}
