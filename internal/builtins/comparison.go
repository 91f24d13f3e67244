package builtins

import (
	"github.com/AlxV07/golisp/internal/datum"
)

// Equal implements `=` [≥ 1]: T if all arguments are numerically equal.
func Equal(args datum.Datum, env *datum.Environment, ev datum.Evaluator) (datum.Datum, error) {
	vals, err := evalArgs("=", args, env, ev)
	if err != nil {
		return nil, err
	}
	if err := atLeast("=", vals, 1); err != nil {
		return nil, err
	}
	first, err := toNumber("=", vals[0])
	if err != nil {
		return nil, err
	}
	for _, v := range vals[1:] {
		n, err := toNumber("=", v)
		if err != nil {
			return nil, err
		}
		if n.asFloat() != first.asFloat() {
			return datum.NIL, nil
		}
	}
	return datum.T, nil
}

// LessThan implements `<` [exact 2] with the mathematically standard
// meaning (spec.md §9 Open Question 6).
func LessThan(args datum.Datum, env *datum.Environment, ev datum.Evaluator) (datum.Datum, error) {
	vals, err := evalArgs("<", args, env, ev)
	if err != nil {
		return nil, err
	}
	if err := exact("<", vals, 2); err != nil {
		return nil, err
	}
	a, err := toNumber("<", vals[0])
	if err != nil {
		return nil, err
	}
	b, err := toNumber("<", vals[1])
	if err != nil {
		return nil, err
	}
	return datum.BoolDatum(a.asFloat() < b.asFloat()), nil
}

// GreaterThan implements `>` [exact 2] with the mathematically standard
// meaning (spec.md §9 Open Question 6).
func GreaterThan(args datum.Datum, env *datum.Environment, ev datum.Evaluator) (datum.Datum, error) {
	vals, err := evalArgs(">", args, env, ev)
	if err != nil {
		return nil, err
	}
	if err := exact(">", vals, 2); err != nil {
		return nil, err
	}
	a, err := toNumber(">", vals[0])
	if err != nil {
		return nil, err
	}
	b, err := toNumber(">", vals[1])
	if err != nil {
		return nil, err
	}
	return datum.BoolDatum(a.asFloat() > b.asFloat()), nil
}

// Not implements `not` [exact 1]: T if argument is NIL, else NIL.
func Not(args datum.Datum, env *datum.Environment, ev datum.Evaluator) (datum.Datum, error) {
	vals, err := evalArgs("not", args, env, ev)
	if err != nil {
		return nil, err
	}
	if err := exact("not", vals, 1); err != nil {
		return nil, err
	}
	return datum.BoolDatum(datum.IsNil(vals[0])), nil
}

// And implements `and`: short-circuits at the first NIL argument, stopping
// before evaluating the rest. Empty `and` is T.
func And(args datum.Datum, env *datum.Environment, ev datum.Evaluator) (datum.Datum, error) {
	var result datum.Datum = datum.T
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
		if datum.IsNil(v) {
			return datum.NIL, nil
		}
		result = v
		cur = c.Tail
	}
	return result, nil
}

// Or implements `or`: short-circuits at the first non-NIL argument,
// stopping before evaluating the rest. Empty `or` is NIL.
func Or(args datum.Datum, env *datum.Environment, ev datum.Evaluator) (datum.Datum, error) {
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
		if !datum.IsNil(v) {
			return v, nil
		}
		cur = c.Tail
	}
	return datum.NIL, nil
}
