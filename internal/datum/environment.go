package datum

import (
	"github.com/AlxV07/golisp/internal/errors"
)

// Namespacing selects whether variables and procedures share one binding
// table (SingleNamespace, Scheme-style) or occupy two separate tables
// (TwoNamespace, Common-Lisp-style). spec.md §4.4/§9 fixes TwoNamespace as
// the implemented default; SingleNamespace is an additive supplemental
// mode grounded on original_source/pylisp/scheme_pylisp.py.
type Namespacing int

const (
	TwoNamespace Namespacing = iota
	SingleNamespace
)

// LockedSet is the closed set of globally seeded names that cannot be
// rebound by defun/defvar/defparameter (spec.md §4.5). It is shared,
// read-only, and never copied when an Environment is derived.
type LockedSet map[string]bool

// Environment maps symbol names to datums, with snapshot-on-derive
// semantics: deriving a child copies the parent's binding tables so that
// mutations performed inside a call cannot leak back to the caller
// (spec.md §4.2, §9 Design Notes — grounded on
// original_source/pylisp/common_pylisp.py's Environment.copy()).
type Environment struct {
	vars  map[string]Datum
	procs map[string]Datum // unused (aliases vars) in SingleNamespace mode
	ns    Namespacing
	lock  LockedSet
}

// NewEnvironment creates a fresh root environment with no bindings.
func NewEnvironment(ns Namespacing, lock LockedSet) *Environment {
	e := &Environment{
		vars: make(map[string]Datum),
		ns:   ns,
		lock: lock,
	}
	if ns == TwoNamespace {
		e.procs = make(map[string]Datum)
	} else {
		e.procs = e.vars
	}
	return e
}

// Derive returns a new scope initialized with a snapshot of this scope's
// bindings: a shallow copy of the variable and procedure tables.
func (e *Environment) Derive() *Environment {
	child := &Environment{
		vars: make(map[string]Datum, len(e.vars)),
		ns:   e.ns,
		lock: e.lock,
	}
	for k, v := range e.vars {
		child.vars[k] = v
	}
	if e.ns == TwoNamespace {
		child.procs = make(map[string]Datum, len(e.procs))
		for k, v := range e.procs {
			child.procs[k] = v
		}
	} else {
		child.procs = child.vars
	}
	return child
}

// LookupVar resolves a symbol in the variable namespace.
func (e *Environment) LookupVar(name Symbol) (Datum, error) {
	if v, ok := e.vars[string(name)]; ok {
		return v, nil
	}
	return nil, errors.NewWithDatum(errors.UndefinedVariable, string(name),
		"undefined variable %s", name)
}

// LookupProc resolves a symbol in the procedure namespace (the table
// `function`/#' and compound-form head lookups consult).
func (e *Environment) LookupProc(name Symbol) (Datum, error) {
	if v, ok := e.procs[string(name)]; ok {
		return v, nil
	}
	return nil, errors.NewWithDatum(errors.UndefinedProcedure, string(name),
		"undefined procedure %s", name)
}

// IsLocked reports whether name is one of the globally seeded, unrebindable
// names (spec.md §4.5).
func (e *Environment) IsLocked(name Symbol) bool {
	return e.lock != nil && e.lock[string(name)]
}

// BindVar unconditionally binds name to val in the current scope's
// variable table, overwriting any existing binding. Fails with
// SymbolLocked if name denotes a built-in.
func (e *Environment) BindVar(name Symbol, val Datum) error {
	if e.IsLocked(name) {
		return errors.NewWithDatum(errors.SymbolLocked, string(name),
			"%s is a locked built-in name", name)
	}
	e.vars[string(name)] = val
	return nil
}

// DefineVarIfAbsent binds name to val only if the current scope's variable
// table has no existing binding for it (defvar semantics); a pre-existing
// binding makes this a silent no-op. Still fails with SymbolLocked if name
// denotes a built-in, even when absent.
func (e *Environment) DefineVarIfAbsent(name Symbol, val Datum) error {
	if e.IsLocked(name) {
		return errors.NewWithDatum(errors.SymbolLocked, string(name),
			"%s is a locked built-in name", name)
	}
	if _, ok := e.vars[string(name)]; ok {
		return nil
	}
	e.vars[string(name)] = val
	return nil
}

// BindProc unconditionally binds name to val in the current scope's
// procedure table (defun semantics). Fails with SymbolLocked if name
// denotes a built-in.
func (e *Environment) BindProc(name Symbol, val Datum) error {
	if e.IsLocked(name) {
		return errors.NewWithDatum(errors.SymbolLocked, string(name),
			"%s is a locked built-in name", name)
	}
	e.procs[string(name)] = val
	return nil
}

// SeedBuiltin installs a built-in procedure into both namespaces of a
// pristine (not yet locked) global environment: the procedure table always,
// and — in SingleNamespace mode where the tables are the same map — the
// variable table too, so a bare symbol reference also resolves it.
func (e *Environment) SeedBuiltin(name string, proc *Procedure) {
	e.procs[name] = proc
}

// SeedVar installs a constant into the variable table of a pristine global
// environment (used to seed NIL and T).
func (e *Environment) SeedVar(name string, val Datum) {
	e.vars[name] = val
}
