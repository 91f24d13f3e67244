package builtins_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/AlxV07/golisp/internal/builtins"
	"github.com/AlxV07/golisp/internal/datum"
	"github.com/AlxV07/golisp/internal/errors"
	"github.com/AlxV07/golisp/internal/eval"
	"github.com/AlxV07/golisp/internal/reader"
)

func run(t *testing.T, source string, out *bytes.Buffer) (datum.Datum, error) {
	t.Helper()
	env := datum.NewEnvironment(datum.TwoNamespace, builtins.LockedNames())
	if out == nil {
		out = &bytes.Buffer{}
	}
	builtins.Register(env, out)
	ev := eval.New()
	forms, err := reader.ReadAll(source)
	if err != nil {
		return nil, err
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

func TestArithmeticPromotion(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{"(+ 1 2 3)", "6"},
		{"(+)", "0"},
		{"(* )", "1"},
		{"(+ 1 2.0)", "3.0"},
		{"(- 5)", "-5"},
		{"(- 10 3 2)", "5"},
		{"(/ 2)", "0.5"},
		{"(/ 10 2)", "5.0"},
	}
	for _, c := range cases {
		t.Run(c.source, func(t *testing.T) {
			got, err := run(t, c.source, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != c.want {
				t.Errorf("%s = %s, want %s", c.source, got.String(), c.want)
			}
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	_, err := run(t, "(/ 1 0)", nil)
	le, ok := err.(*errors.LispError)
	if !ok || le.Kind() != errors.ArithmeticError {
		t.Errorf("expected ArithmeticError, got %v", err)
	}
}

func TestListPrimitives(t *testing.T) {
	got, err := run(t, "(car (cdr (cons 1 (cons 2 (cons 3 nil)))))", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != datum.Integer(2) {
		t.Errorf("got %v, want 2", got)
	}
}

func TestCarOnNonConsIsTypeMismatch(t *testing.T) {
	_, err := run(t, "(car 1)", nil)
	le, ok := err.(*errors.LispError)
	if !ok || le.Kind() != errors.TypeMismatch {
		t.Errorf("expected TypeMismatch, got %v", err)
	}
}

func TestComparison(t *testing.T) {
	cases := []struct {
		source string
		want   datum.Datum
	}{
		{"(= 1 1 1)", datum.T},
		{"(= 1 2)", datum.NIL},
		{"(< 1 2)", datum.T},
		{"(> 1 2)", datum.NIL},
		{"(not nil)", datum.T},
		{"(not t)", datum.NIL},
	}
	for _, c := range cases {
		t.Run(c.source, func(t *testing.T) {
			got, err := run(t, c.source, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c.want {
				t.Errorf("%s = %v, want %v", c.source, got, c.want)
			}
		})
	}
}

func TestCondFallthroughToNil(t *testing.T) {
	got, err := run(t, `(cond ((< 1 0) "a"))`, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !datum.IsNil(got) {
		t.Errorf("expected NIL when no clause matches, got %v", got)
	}
}

func TestDefvarIsNoOpOnSecondCall(t *testing.T) {
	got, err := run(t, `(defvar p 1) (defvar p 2) p`, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != datum.Integer(1) {
		t.Errorf("got %v, want 1", got)
	}
}

func TestDefparameterOverwrites(t *testing.T) {
	got, err := run(t, `(defparameter p 1) (defparameter p 2) p`, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != datum.Integer(2) {
		t.Errorf("got %v, want 2", got)
	}
}

func TestLambdaIsAnonymous(t *testing.T) {
	got, err := run(t, `(lambda (a) a)`, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "#<FUNCTION LAMBDA>" {
		t.Errorf("got %q, want %q", got.String(), "#<FUNCTION LAMBDA>")
	}
}

func TestPrintQuotesStringsDisplayDoesNot(t *testing.T) {
	var buf bytes.Buffer
	if _, err := run(t, `(print "hi")`, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(buf.String()) != `"hi"` {
		t.Errorf("print output = %q, want %q", buf.String(), `"hi"`)
	}

	buf.Reset()
	if _, err := run(t, `(display "hi")`, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "hi" {
		t.Errorf("display output = %q, want %q", buf.String(), "hi")
	}
}

func TestPrintReturnsNil(t *testing.T) {
	got, err := run(t, `(print "hi")`, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !datum.IsNil(got) {
		t.Errorf("print returned %v, want NIL", got)
	}
}

func TestNewlineWritesOnlyATerminator(t *testing.T) {
	var buf bytes.Buffer
	if _, err := run(t, `(newline)`, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "\n" {
		t.Errorf("newline output = %q, want %q", buf.String(), "\n")
	}
}

func TestLockedNamesCoverage(t *testing.T) {
	locked := builtins.LockedNames()
	for _, name := range []string{"+", "-", "*", "/", "=", "<", ">", "NOT", "CONS", "CAR", "CDR",
		"LIST", "IF", "COND", "QUOTE", "DEFUN", "DEFVAR", "DEFPARAMETER", "LET", "LAMBDA",
		"FUNCTION", "FUNCALL", "PRINT", "NEWLINE", "NIL", "T"} {
		if !locked[datum.NormalizeSymbolName(name)] {
			t.Errorf("expected %s to be locked", name)
		}
	}
	for _, name := range []string{"AND", "OR", "DISPLAY"} {
		if locked[datum.NormalizeSymbolName(name)] {
			t.Errorf("expected %s to NOT be locked per spec.md §4.5's literal enumeration", name)
		}
	}
}
