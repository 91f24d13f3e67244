package eval_test

import (
	"bytes"
	"testing"

	"github.com/AlxV07/golisp/internal/builtins"
	"github.com/AlxV07/golisp/internal/datum"
	"github.com/AlxV07/golisp/internal/errors"
	"github.com/AlxV07/golisp/internal/eval"
	"github.com/AlxV07/golisp/internal/reader"
)

func newEnv(t *testing.T) (*datum.Environment, *eval.Evaluator) {
	t.Helper()
	env := datum.NewEnvironment(datum.TwoNamespace, builtins.LockedNames())
	builtins.Register(env, &bytes.Buffer{})
	return env, eval.New()
}

func evalSource(t *testing.T, source string) (datum.Datum, error) {
	t.Helper()
	env, ev := newEnv(t)
	forms, err := reader.ReadAll(source)
	if err != nil {
		t.Fatalf("reader error: %v", err)
	}
	var last datum.Datum = datum.NIL
	for _, f := range forms {
		last, err = ev.Evaluate(f, env)
		if err != nil {
			return nil, err
		}
	}
	return last, nil
}

func TestSelfEvaluation(t *testing.T) {
	env, ev := newEnv(t)
	for _, d := range []datum.Datum{datum.Integer(5), datum.Float(1.5), datum.String("x"), datum.NIL, datum.T} {
		got, err := ev.Evaluate(d, env)
		if err != nil {
			t.Fatalf("Evaluate(%v) error: %v", d, err)
		}
		if got != d {
			t.Errorf("Evaluate(%v) = %v, want unchanged", d, got)
		}
	}
}

func TestQuoteInvariance(t *testing.T) {
	env, ev := newEnv(t)
	forms, err := reader.ReadAll("(a b c)")
	if err != nil {
		t.Fatalf("reader error: %v", err)
	}
	quoted := datum.List(datum.Symbol("QUOTE"), forms[0])
	got, err := ev.Evaluate(quoted, env)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if got.String() != forms[0].String() {
		t.Errorf("(quote f) = %v, want %v", got, forms[0])
	}
}

func TestVariableRoundTrip(t *testing.T) {
	got, err := evalSource(t, `(defparameter x 42) x`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != datum.Integer(42) {
		t.Errorf("got %v, want 42", got)
	}
}

func TestFibonacci(t *testing.T) {
	got, err := evalSource(t, `(defun fib (n) (if (< n 2) n (+ (fib (- n 1)) (fib (- n 2))))) (fib 10)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != datum.Integer(55) {
		t.Errorf("fib(10) = %v, want 55", got)
	}
}

func TestLetScopeIsolation(t *testing.T) {
	env, ev := newEnv(t)
	if err := env.BindVar("X", datum.Integer(1)); err != nil {
		t.Fatal(err)
	}
	forms, err := reader.ReadAll(`(let ((x 99)) x)`)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ev.Evaluate(forms[0], env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != datum.Integer(99) {
		t.Errorf("got %v, want 99", got)
	}
	outer, err := env.LookupVar("X")
	if err != nil || outer != datum.Integer(1) {
		t.Errorf("let leaked into caller scope: got %v, err %v", outer, err)
	}
}

func TestUserProcedureCallDoesNotLeakToCallerScope(t *testing.T) {
	env, ev := newEnv(t)
	forms, err := reader.ReadAll(`
		(defun bump (n) (defparameter inner (+ n 1)) inner)
		(bump 10)
	`)
	if err != nil {
		t.Fatal(err)
	}
	var last datum.Datum
	for _, f := range forms {
		last, err = ev.Evaluate(f, env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if last != datum.Integer(11) {
		t.Errorf("got %v, want 11", last)
	}
	if _, err := env.LookupVar("INNER"); err == nil {
		t.Error("expected a binding made inside a procedure call to not leak into the caller scope")
	}
}

func TestArityDiscipline(t *testing.T) {
	_, err := evalSource(t, `(< 1)`)
	assertKind(t, err, errors.InvalidArity)

	_, err = evalSource(t, `(if 1 2)`)
	assertKind(t, err, errors.InvalidArity)
}

func TestLockDiscipline(t *testing.T) {
	_, err := evalSource(t, `(defun + (a b) a)`)
	assertKind(t, err, errors.SymbolLocked)

	_, err = evalSource(t, `(defparameter nil 1)`)
	assertKind(t, err, errors.SymbolLocked)
}

func TestShortCircuitAnd(t *testing.T) {
	_, err := evalSource(t, `(and nil (undefined-thing))`)
	if err != nil {
		t.Fatalf("expected short-circuit to prevent evaluation of the second form: %v", err)
	}
}

func TestShortCircuitOr(t *testing.T) {
	_, err := evalSource(t, `(or t (undefined-thing))`)
	if err != nil {
		t.Fatalf("expected short-circuit to prevent evaluation of the second form: %v", err)
	}
}

func TestFuncallWithFunctionDesignator(t *testing.T) {
	got, err := evalSource(t, `(defun sq (x) (* x x)) (defun f (g) (funcall g 3)) (f #'sq)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != datum.Integer(9) {
		t.Errorf("got %v, want 9", got)
	}
}

func TestFuncallArgumentsEvaluatedExactlyOnce(t *testing.T) {
	// Each evaluation of an argument prints it, so the output records how
	// many times each argument form was evaluated.
	env := datum.NewEnvironment(datum.TwoNamespace, builtins.LockedNames())
	var out bytes.Buffer
	builtins.Register(env, &out)
	ev := eval.New()
	forms, err := reader.ReadAll(`
		(defun count-and-return (v) (print v) v)
		(defun add (a b) (+ a b))
		(funcall #'add (count-and-return 1) (count-and-return 2))
	`)
	if err != nil {
		t.Fatalf("reader error: %v", err)
	}
	var got datum.Datum
	for _, f := range forms {
		got, err = ev.Evaluate(f, env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if got != datum.Integer(3) {
		t.Errorf("got %v, want 3", got)
	}
	if out.String() != "1\n2\n" {
		t.Errorf("each argument should be evaluated exactly once: output = %q, want %q", out.String(), "1\n2\n")
	}
}

func assertKind(t *testing.T, err error, kind errors.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected an error of kind %s, got nil", kind)
	}
	le, ok := err.(*errors.LispError)
	if !ok {
		t.Fatalf("expected *errors.LispError, got %T", err)
	}
	if le.Kind() != kind {
		t.Errorf("got kind %s, want %s", le.Kind(), kind)
	}
}
