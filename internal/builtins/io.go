package builtins

import (
	"fmt"
	"io"

	"github.com/AlxV07/golisp/internal/datum"
)

// printFn implements `print` [exact 1]: writes the printed (quoted)
// representation followed by a newline, and returns NIL.
func printFn(w io.Writer) datum.BuiltinFunc {
	return func(args datum.Datum, env *datum.Environment, ev datum.Evaluator) (datum.Datum, error) {
		vals, err := evalArgs("print", args, env, ev)
		if err != nil {
			return nil, err
		}
		if err := exact("print", vals, 1); err != nil {
			return nil, err
		}
		fmt.Fprintln(w, vals[0].String())
		return datum.NIL, nil
	}
}

// displayFn implements `display` [exact 1]: writes the human-facing (bare)
// representation followed by a newline, and returns NIL.
func displayFn(w io.Writer) datum.BuiltinFunc {
	return func(args datum.Datum, env *datum.Environment, ev datum.Evaluator) (datum.Datum, error) {
		vals, err := evalArgs("display", args, env, ev)
		if err != nil {
			return nil, err
		}
		if err := exact("display", vals, 1); err != nil {
			return nil, err
		}
		fmt.Fprintln(w, vals[0].Display())
		return datum.NIL, nil
	}
}

// newlineFn implements `newline` [exact 0]: writes a line terminator.
func newlineFn(w io.Writer) datum.BuiltinFunc {
	return func(args datum.Datum, env *datum.Environment, ev datum.Evaluator) (datum.Datum, error) {
		vals, err := evalArgs("newline", args, env, ev)
		if err != nil {
			return nil, err
		}
		if err := exact("newline", vals, 0); err != nil {
			return nil, err
		}
		fmt.Fprintln(w)
		return datum.NIL, nil
	}
}
