// Package golisp is the embeddable public facade over the interpreter
// core: reader, environment, evaluator, and built-in procedure library.
// It is modeled on the teacher's pkg/dwscript facade — an Engine
// constructed with functional options, a Compile/Run split for running
// one source many times, and a one-shot Eval.
package golisp

import (
	"bytes"
	"io"

	"github.com/AlxV07/golisp/internal/builtins"
	"github.com/AlxV07/golisp/internal/datum"
	"github.com/AlxV07/golisp/internal/errors"
	"github.com/AlxV07/golisp/internal/eval"
	"github.com/AlxV07/golisp/internal/reader"
)

// Program is source that has been read into forms but not yet evaluated,
// returned by Engine.Compile so the same forms can be Run repeatedly.
type Program struct {
	forms []datum.Datum
}

// Result is the outcome of evaluating a Program or a one-shot source
// string: the value of the last top-level form, and everything written by
// print/display/newline during that call.
type Result struct {
	Value   datum.Datum
	Output  string
	Success bool
}

// Engine bundles a global environment, an evaluator, and an output sink.
// The zero value is not usable; construct with New.
type Engine struct {
	env *datum.Environment
	ev  *eval.Evaluator
	buf *bytes.Buffer
	out io.Writer
}

// Option configures an Engine at construction time.
type Option func(*engineConfig)

type engineConfig struct {
	out io.Writer
	ns  datum.Namespacing
}

// WithOutput directs everything print/display/newline write to w, in
// addition to the internal buffer each Result.Output is captured from.
func WithOutput(w io.Writer) Option {
	return func(c *engineConfig) { c.out = w }
}

// WithNamespacing selects single- or two-namespace variable/procedure
// binding (spec.md §4.4/§9; TwoNamespace is the implemented default).
func WithNamespacing(ns datum.Namespacing) Option {
	return func(c *engineConfig) { c.ns = ns }
}

// New constructs an Engine with a freshly seeded global environment.
func New(opts ...Option) *Engine {
	cfg := &engineConfig{ns: datum.TwoNamespace}
	for _, opt := range opts {
		opt(cfg)
	}

	buf := &bytes.Buffer{}
	var sink io.Writer = buf
	if cfg.out != nil {
		sink = io.MultiWriter(buf, cfg.out)
	}

	env := datum.NewEnvironment(cfg.ns, builtins.LockedNames())
	builtins.Register(env, sink)

	return &Engine{env: env, ev: eval.New(), buf: buf, out: cfg.out}
}

// Compile reads source into a Program without evaluating it.
func (e *Engine) Compile(source string) (*Program, error) {
	forms, err := reader.ReadAll(source)
	if err != nil {
		return nil, err
	}
	return &Program{forms: forms}, nil
}

// Run evaluates every form of p in order against a fresh child of the
// engine's initial global environment, returning the value of the last
// form. Each call to Run derives its own child, so bindings introduced by
// defun/defvar/defparameter during one Run do not persist into the next
// (spec.md §2/§4.7's top-level driver contract).
func (e *Engine) Run(p *Program) (*Result, error) {
	return e.RunTraced(p, nil)
}

// RunTraced is Run with an optional hook invoked immediately before each
// top-level form is evaluated, for the `golisp run --trace` CLI flag
// (SPEC_FULL.md §2.1). trace may be nil.
func (e *Engine) RunTraced(p *Program, trace func(index int, form datum.Datum)) (*Result, error) {
	mark := e.buf.Len()
	callEnv := e.env.Derive()

	var last datum.Datum = datum.NIL
	for i, form := range p.forms {
		if trace != nil {
			trace(i, form)
		}
		v, err := e.ev.Evaluate(form, callEnv)
		if err != nil {
			return &Result{Output: e.buf.String()[mark:], Success: false}, err
		}
		last = v
	}
	return &Result{Value: last, Output: e.buf.String()[mark:], Success: true}, nil
}

// Eval compiles and runs source in one step, equivalent to Compile followed
// by Run.
func (e *Engine) Eval(source string) (*Result, error) {
	program, err := e.Compile(source)
	if err != nil {
		return nil, err
	}
	return e.Run(program)
}

// Parse exposes the reader alone, without evaluating anything — used by
// the `golisp parse` CLI subcommand to print the forms the reader would
// hand to the evaluator.
func Parse(source string) ([]datum.Datum, error) {
	return reader.ReadAll(source)
}

// AsLispError type-asserts err to *errors.LispError, returning ok=false for
// any non-interpreter error (there should be none, by design).
func AsLispError(err error) (*errors.LispError, bool) {
	le, ok := err.(*errors.LispError)
	return le, ok
}
