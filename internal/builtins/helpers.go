// Package builtins implements the concrete built-in procedure library:
// arithmetic, list primitives, comparison, binding/control forms,
// higher-order calls, and I/O (spec.md §4.4).
package builtins

import (
	"github.com/AlxV07/golisp/internal/datum"
	"github.com/AlxV07/golisp/internal/errors"
)

// evalArgs evaluates every element of a raw argument list left to right in
// env, returning the evaluated values. Used by eager (ordinary) builtins.
func evalArgs(name string, args datum.Datum, env *datum.Environment, ev datum.Evaluator) ([]datum.Datum, error) {
	if !datum.IsProperList(args) {
		return nil, errors.New(errors.TypeMismatch, "%s: argument list must be a proper list", name)
	}
	var out []datum.Datum
	cur := args
	for {
		c, ok := cur.(*datum.Cons)
		if !ok {
			break
		}
		v, err := ev.Evaluate(c.Head, env)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		cur = c.Tail
	}
	return out, nil
}

// rawElements returns the raw (unevaluated) elements of a proper argument
// list, used by special operators that decide for themselves what to
// evaluate.
func rawElements(name string, args datum.Datum) ([]datum.Datum, error) {
	if !datum.IsProperList(args) {
		return nil, errors.New(errors.TypeMismatch, "%s: argument list must be a proper list", name)
	}
	return datum.Elements(args), nil
}

func exact(name string, vals []datum.Datum, n int) error {
	if len(vals) != n {
		return errors.New(errors.InvalidArity, "%s expects exactly %d argument(s), got %d", name, n, len(vals))
	}
	return nil
}

func atLeast(name string, vals []datum.Datum, n int) error {
	if len(vals) < n {
		return errors.New(errors.InvalidArity, "%s expects at least %d argument(s), got %d", name, n, len(vals))
	}
	return nil
}

// number is an internal numeric value used to implement the
// integer-stays-integer-unless-mixed promotion rule (spec.md §4.4).
type number struct {
	isFloat bool
	i       int64
	f       float64
}

func toNumber(name string, d datum.Datum) (number, error) {
	switch v := d.(type) {
	case datum.Integer:
		return number{i: int64(v)}, nil
	case datum.Float:
		return number{isFloat: true, f: float64(v)}, nil
	default:
		return number{}, errors.NewWithDatum(errors.TypeMismatch, d.String(),
			"%s expects a number, got %s", name, d.Kind())
	}
}

func (n number) asFloat() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

func (n number) toDatum() datum.Datum {
	if n.isFloat {
		return datum.Float(n.f)
	}
	return datum.Integer(n.i)
}

func addNumbers(a, b number) number {
	if a.isFloat || b.isFloat {
		return number{isFloat: true, f: a.asFloat() + b.asFloat()}
	}
	return number{i: a.i + b.i}
}

func subNumbers(a, b number) number {
	if a.isFloat || b.isFloat {
		return number{isFloat: true, f: a.asFloat() - b.asFloat()}
	}
	return number{i: a.i - b.i}
}

func mulNumbers(a, b number) number {
	if a.isFloat || b.isFloat {
		return number{isFloat: true, f: a.asFloat() * b.asFloat()}
	}
	return number{i: a.i * b.i}
}

func negateNumber(a number) number {
	if a.isFloat {
		return number{isFloat: true, f: -a.f}
	}
	return number{i: -a.i}
}
