package builtins

import (
	"github.com/AlxV07/golisp/internal/datum"
	"github.com/AlxV07/golisp/internal/errors"
)

// Add implements `+` [≥ 0]: sum of arguments, empty sum is 0.
func Add(args datum.Datum, env *datum.Environment, ev datum.Evaluator) (datum.Datum, error) {
	vals, err := evalArgs("+", args, env, ev)
	if err != nil {
		return nil, err
	}
	acc := number{i: 0}
	for _, v := range vals {
		n, err := toNumber("+", v)
		if err != nil {
			return nil, err
		}
		acc = addNumbers(acc, n)
	}
	return acc.toDatum(), nil
}

// Mul implements `*` [≥ 0]: product of arguments, empty product is 1.
func Mul(args datum.Datum, env *datum.Environment, ev datum.Evaluator) (datum.Datum, error) {
	vals, err := evalArgs("*", args, env, ev)
	if err != nil {
		return nil, err
	}
	acc := number{i: 1}
	for _, v := range vals {
		n, err := toNumber("*", v)
		if err != nil {
			return nil, err
		}
		acc = mulNumbers(acc, n)
	}
	return acc.toDatum(), nil
}

// Sub implements `-` [≥ 1]: negation with one argument, else left-fold
// subtraction.
func Sub(args datum.Datum, env *datum.Environment, ev datum.Evaluator) (datum.Datum, error) {
	vals, err := evalArgs("-", args, env, ev)
	if err != nil {
		return nil, err
	}
	if err := atLeast("-", vals, 1); err != nil {
		return nil, err
	}
	first, err := toNumber("-", vals[0])
	if err != nil {
		return nil, err
	}
	if len(vals) == 1 {
		return negateNumber(first).toDatum(), nil
	}
	acc := first
	for _, v := range vals[1:] {
		n, err := toNumber("-", v)
		if err != nil {
			return nil, err
		}
		acc = subNumbers(acc, n)
	}
	return acc.toDatum(), nil
}

// Div implements `/` [≥ 1]: reciprocal of 1.0 with one argument, else
// left-fold true division. Division by zero fails with ArithmeticError.
func Div(args datum.Datum, env *datum.Environment, ev datum.Evaluator) (datum.Datum, error) {
	vals, err := evalArgs("/", args, env, ev)
	if err != nil {
		return nil, err
	}
	if err := atLeast("/", vals, 1); err != nil {
		return nil, err
	}
	if len(vals) == 1 {
		n, err := toNumber("/", vals[0])
		if err != nil {
			return nil, err
		}
		if n.asFloat() == 0 {
			return nil, errors.New(errors.ArithmeticError, "/ : division by zero")
		}
		return datum.Float(1.0 / n.asFloat()), nil
	}
	acc, err := toNumber("/", vals[0])
	if err != nil {
		return nil, err
	}
	total := acc.asFloat()
	for _, v := range vals[1:] {
		n, err := toNumber("/", v)
		if err != nil {
			return nil, err
		}
		if n.asFloat() == 0 {
			return nil, errors.New(errors.ArithmeticError, "/ : division by zero")
		}
		total /= n.asFloat()
	}
	return datum.Float(total), nil
}
