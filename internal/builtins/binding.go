package builtins

import (
	"github.com/AlxV07/golisp/internal/datum"
	"github.com/AlxV07/golisp/internal/errors"
)

// Quote implements `quote` [exact 1]: returns the argument form verbatim.
func Quote(args datum.Datum, env *datum.Environment, ev datum.Evaluator) (datum.Datum, error) {
	elems, err := rawElements("quote", args)
	if err != nil {
		return nil, err
	}
	if err := exact("quote", elems, 1); err != nil {
		return nil, err
	}
	return elems[0], nil
}

// If implements `if` [exact 3]: non-NIL test evaluates the consequent,
// else the alternative (spec.md §9 Open Question 1: non-NIL is true).
func If(args datum.Datum, env *datum.Environment, ev datum.Evaluator) (datum.Datum, error) {
	elems, err := rawElements("if", args)
	if err != nil {
		return nil, err
	}
	if err := exact("if", elems, 3); err != nil {
		return nil, err
	}
	test, err := ev.Evaluate(elems[0], env)
	if err != nil {
		return nil, err
	}
	if datum.IsTruthy(test) {
		return ev.Evaluate(elems[1], env)
	}
	return ev.Evaluate(elems[2], env)
}

// Cond implements `cond` [≥ 1]: walks (test expr…) clauses left to right,
// evaluating the body of the first clause whose test is truthy.
func Cond(args datum.Datum, env *datum.Environment, ev datum.Evaluator) (datum.Datum, error) {
	clauses, err := rawElements("cond", args)
	if err != nil {
		return nil, err
	}
	if err := atLeast("cond", clauses, 1); err != nil {
		return nil, err
	}
	for _, clauseDatum := range clauses {
		clause, err := rawElements("cond", clauseDatum)
		if err != nil {
			return nil, err
		}
		if len(clause) == 0 {
			return nil, errors.New(errors.InvalidArity, "cond: each clause needs a test")
		}
		test, err := ev.Evaluate(clause[0], env)
		if err != nil {
			return nil, err
		}
		if datum.IsTruthy(test) {
			var result datum.Datum = datum.NIL
			for _, expr := range clause[1:] {
				result, err = ev.Evaluate(expr, env)
				if err != nil {
					return nil, err
				}
			}
			return result, nil
		}
	}
	return datum.NIL, nil
}

// Let implements `let` [≥ 2]: evaluates (name expr) initializers
// left-to-right in the outer scope, binds them in a derived scope, then
// evaluates the body in that scope. No let*-style staggering.
func Let(args datum.Datum, env *datum.Environment, ev datum.Evaluator) (datum.Datum, error) {
	elems, err := rawElements("let", args)
	if err != nil {
		return nil, err
	}
	if err := atLeast("let", elems, 2); err != nil {
		return nil, err
	}
	bindings, err := rawElements("let", elems[0])
	if err != nil {
		return nil, err
	}
	newEnv := env.Derive()
	for _, b := range bindings {
		pair, err := rawElements("let", b)
		if err != nil {
			return nil, err
		}
		if len(pair) != 2 {
			return nil, errors.New(errors.InvalidArity, "let: each binding must be (name expr)")
		}
		sym, ok := pair[0].(datum.Symbol)
		if !ok {
			return nil, errors.NewWithDatum(errors.IllegalVariableName, pair[0].String(), "let binding name must be a symbol")
		}
		val, err := ev.Evaluate(pair[1], env)
		if err != nil {
			return nil, err
		}
		if err := newEnv.BindVar(sym, val); err != nil {
			return nil, err
		}
	}
	var result datum.Datum = datum.NIL
	for _, expr := range elems[1:] {
		result, err = ev.Evaluate(expr, newEnv)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Defun implements `defun` [≥ 3]: `(defun name (params…) body…)`. Binds
// name to a user-defined procedure in the current scope and returns the
// name symbol. An empty body is rejected here, at definition time.
func Defun(args datum.Datum, env *datum.Environment, ev datum.Evaluator) (datum.Datum, error) {
	elems, err := rawElements("defun", args)
	if err != nil {
		return nil, err
	}
	if err := atLeast("defun", elems, 3); err != nil {
		return nil, err
	}
	nameSym, ok := elems[0].(datum.Symbol)
	if !ok {
		return nil, errors.NewWithDatum(errors.IllegalProcedureName, elems[0].String(), "defun name must be a symbol")
	}
	if !datum.IsProperList(elems[1]) {
		return nil, errors.New(errors.TypeMismatch, "defun: parameter list must be a proper list")
	}
	body := datum.List(elems[2:]...)
	proc := datum.NewUserDefined(string(nameSym), elems[1], body, env)
	if err := env.BindProc(nameSym, proc); err != nil {
		return nil, err
	}
	return nameSym, nil
}

// Defvar implements `defvar` [exact 2]: binds name to value only if not
// already bound in the current scope.
func Defvar(args datum.Datum, env *datum.Environment, ev datum.Evaluator) (datum.Datum, error) {
	elems, err := rawElements("defvar", args)
	if err != nil {
		return nil, err
	}
	if err := exact("defvar", elems, 2); err != nil {
		return nil, err
	}
	nameSym, ok := elems[0].(datum.Symbol)
	if !ok {
		return nil, errors.NewWithDatum(errors.IllegalVariableName, elems[0].String(), "defvar name must be a symbol")
	}
	val, err := ev.Evaluate(elems[1], env)
	if err != nil {
		return nil, err
	}
	if err := env.DefineVarIfAbsent(nameSym, val); err != nil {
		return nil, err
	}
	return nameSym, nil
}

// Defparameter implements `defparameter` [exact 2]: binds name
// unconditionally (overwrite allowed).
func Defparameter(args datum.Datum, env *datum.Environment, ev datum.Evaluator) (datum.Datum, error) {
	elems, err := rawElements("defparameter", args)
	if err != nil {
		return nil, err
	}
	if err := exact("defparameter", elems, 2); err != nil {
		return nil, err
	}
	nameSym, ok := elems[0].(datum.Symbol)
	if !ok {
		return nil, errors.NewWithDatum(errors.IllegalVariableName, elems[0].String(), "defparameter name must be a symbol")
	}
	val, err := ev.Evaluate(elems[1], env)
	if err != nil {
		return nil, err
	}
	if err := env.BindVar(nameSym, val); err != nil {
		return nil, err
	}
	return nameSym, nil
}

// Lambda implements `lambda` [≥ 2]: constructs and returns an anonymous
// user-defined procedure without binding it.
func Lambda(args datum.Datum, env *datum.Environment, ev datum.Evaluator) (datum.Datum, error) {
	elems, err := rawElements("lambda", args)
	if err != nil {
		return nil, err
	}
	if err := atLeast("lambda", elems, 2); err != nil {
		return nil, err
	}
	if !datum.IsProperList(elems[0]) {
		return nil, errors.New(errors.TypeMismatch, "lambda: parameter list must be a proper list")
	}
	body := datum.List(elems[1:]...)
	return datum.NewUserDefined("", elems[0], body, env), nil
}

// Function implements `function` [exact 1]: returns the procedure bound
// at the name symbol, resolved in the procedure namespace.
func Function(args datum.Datum, env *datum.Environment, ev datum.Evaluator) (datum.Datum, error) {
	elems, err := rawElements("function", args)
	if err != nil {
		return nil, err
	}
	if err := exact("function", elems, 1); err != nil {
		return nil, err
	}
	sym, ok := elems[0].(datum.Symbol)
	if !ok {
		return nil, errors.NewWithDatum(errors.IllegalProcedureName, elems[0].String(), "function expects a symbol")
	}
	return env.LookupProc(sym)
}

// Funcall implements `funcall` [≥ 1]: evaluates its first argument to a
// procedure, then invokes it on the remaining (still-raw) arguments —
// which get evaluated exactly once, by the normal call mechanics of
// whatever procedure is being invoked.
func Funcall(args datum.Datum, env *datum.Environment, ev datum.Evaluator) (datum.Datum, error) {
	c, ok := args.(*datum.Cons)
	if !ok {
		return nil, errors.New(errors.InvalidArity, "funcall expects at least 1 argument")
	}
	procVal, err := ev.Evaluate(c.Head, env)
	if err != nil {
		return nil, err
	}
	proc, ok := procVal.(*datum.Procedure)
	if !ok {
		return nil, errors.NewWithDatum(errors.TypeMismatch, procVal.String(), "funcall expects a procedure")
	}
	return ev.Apply(proc, c.Tail, env)
}
