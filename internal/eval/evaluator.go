// Package eval implements the recursive evaluator: dispatch on form shape,
// special-operator vs. ordinary-procedure invocation, and user-defined
// procedure calls with lexical closures.
package eval

import (
	"github.com/AlxV07/golisp/internal/datum"
	"github.com/AlxV07/golisp/internal/errors"
)

// Evaluator drives evaluation. It is stateless: all mutable state lives in
// the Environment passed to Evaluate.
type Evaluator struct{}

// New creates an Evaluator.
func New() *Evaluator {
	return &Evaluator{}
}

// Evaluate dispatches on the shape of form, per spec.md §4.3:
//
//  1. NIL, T, numbers, strings, procedures are self-evaluating.
//  2. A symbol is resolved in the variable namespace.
//  3. A cons form's head must name a procedure; it is invoked with the
//     tail as its (unevaluated) argument list.
func (ev *Evaluator) Evaluate(form datum.Datum, env *datum.Environment) (datum.Datum, error) {
	switch form.Kind() {
	case datum.KindNil, datum.KindTrue, datum.KindInteger, datum.KindFloat,
		datum.KindString, datum.KindProcedure:
		return form, nil

	case datum.KindSymbol:
		sym := form.(datum.Symbol)
		return env.LookupVar(sym)

	case datum.KindCons:
		cons := form.(*datum.Cons)
		sym, ok := cons.Head.(datum.Symbol)
		if !ok {
			return nil, errors.NewWithDatum(errors.IllegalFunctionCall, cons.Head.String(),
				"the head of a compound form must be a symbol naming a procedure")
		}
		procDatum, err := env.LookupProc(sym)
		if err != nil {
			return nil, err
		}
		proc, ok := procDatum.(*datum.Procedure)
		if !ok {
			return nil, errors.NewWithDatum(errors.IllegalFunctionCall, sym.String(),
				"%s does not name a procedure", sym)
		}
		return ev.Apply(proc, cons.Tail, env)

	default:
		return nil, errors.New(errors.ReaderError, "internal error: unrecognized datum kind")
	}
}

// Apply invokes proc on args (the raw, unevaluated argument list) in env.
// Whether args get evaluated is entirely proc's decision: built-ins decide
// per-procedure, user-defined procedures always evaluate eagerly.
func (ev *Evaluator) Apply(proc *datum.Procedure, args datum.Datum, env *datum.Environment) (datum.Datum, error) {
	if proc.IsBuiltin() {
		return proc.Builtin(args, env, ev)
	}
	return ev.callUserDefined(proc, args, env)
}

// callUserDefined implements spec.md §4.3's four-step user-defined call
// contract: arity check, derive a scope from the definition environment,
// bind evaluated arguments left-to-right, then evaluate the body in
// sequence and return the last value.
func (ev *Evaluator) callUserDefined(proc *datum.Procedure, args datum.Datum, callerEnv *datum.Environment) (datum.Datum, error) {
	newEnv := proc.DefEnv.Derive()

	var paramCur, argCur datum.Datum = proc.Params, args
	for {
		pc, pOK := paramCur.(*datum.Cons)
		ac, aOK := argCur.(*datum.Cons)
		if !pOK && !aOK {
			break
		}
		if !pOK || !aOK {
			return nil, errors.NewWithDatum(errors.InvalidArity, proc.Name,
				"%s expects %d argument(s)", proc.Name, datum.Len(proc.Params))
		}
		paramSym, ok := pc.Head.(datum.Symbol)
		if !ok {
			return nil, errors.NewWithDatum(errors.IllegalVariableName, pc.Head.String(),
				"parameter names must be symbols")
		}
		val, err := ev.Evaluate(ac.Head, callerEnv)
		if err != nil {
			return nil, err
		}
		if err := newEnv.BindVar(paramSym, val); err != nil {
			return nil, err
		}
		paramCur, argCur = pc.Tail, ac.Tail
	}

	var result datum.Datum = datum.NIL
	body := proc.Body
	for {
		bc, ok := body.(*datum.Cons)
		if !ok {
			break
		}
		var err error
		result, err = ev.Evaluate(bc.Head, newEnv)
		if err != nil {
			return nil, err
		}
		body = bc.Tail
	}
	return result, nil
}
