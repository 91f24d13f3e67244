package builtins

import (
	"github.com/AlxV07/golisp/internal/datum"
	"github.com/AlxV07/golisp/internal/errors"
)

// Cons implements `cons` [exact 2]: constructs a pair.
func Cons(args datum.Datum, env *datum.Environment, ev datum.Evaluator) (datum.Datum, error) {
	vals, err := evalArgs("cons", args, env, ev)
	if err != nil {
		return nil, err
	}
	if err := exact("cons", vals, 2); err != nil {
		return nil, err
	}
	return datum.NewCons(vals[0], vals[1]), nil
}

// Car implements `car` [exact 1]: head of a cons; fails on non-cons.
func Car(args datum.Datum, env *datum.Environment, ev datum.Evaluator) (datum.Datum, error) {
	vals, err := evalArgs("car", args, env, ev)
	if err != nil {
		return nil, err
	}
	if err := exact("car", vals, 1); err != nil {
		return nil, err
	}
	c, ok := vals[0].(*datum.Cons)
	if !ok {
		return nil, errors.NewWithDatum(errors.TypeMismatch, vals[0].String(), "car expects a cons")
	}
	return c.Head, nil
}

// Cdr implements `cdr` [exact 1]: tail of a cons; fails on non-cons.
func Cdr(args datum.Datum, env *datum.Environment, ev datum.Evaluator) (datum.Datum, error) {
	vals, err := evalArgs("cdr", args, env, ev)
	if err != nil {
		return nil, err
	}
	if err := exact("cdr", vals, 1); err != nil {
		return nil, err
	}
	c, ok := vals[0].(*datum.Cons)
	if !ok {
		return nil, errors.NewWithDatum(errors.TypeMismatch, vals[0].String(), "cdr expects a cons")
	}
	return c.Tail, nil
}

// List implements `list` [≥ 0]: returns the (already proper) argument
// list with each element evaluated.
func List(args datum.Datum, env *datum.Environment, ev datum.Evaluator) (datum.Datum, error) {
	vals, err := evalArgs("list", args, env, ev)
	if err != nil {
		return nil, err
	}
	return datum.List(vals...), nil
}
