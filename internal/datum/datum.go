// Package datum implements the tagged value/form universe shared by source
// forms and runtime values, and the lexically scoped environment that maps
// symbol names to them.
package datum

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upper = cases.Upper(language.Und)

// Kind tags which variant a Datum is.
type Kind int

const (
	KindNil Kind = iota
	KindTrue
	KindInteger
	KindFloat
	KindString
	KindSymbol
	KindCons
	KindProcedure
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "NIL"
	case KindTrue:
		return "T"
	case KindInteger:
		return "INTEGER"
	case KindFloat:
		return "FLOAT"
	case KindString:
		return "STRING"
	case KindSymbol:
		return "SYMBOL"
	case KindCons:
		return "CONS"
	case KindProcedure:
		return "PROCEDURE"
	default:
		return "UNKNOWN"
	}
}

// Datum is every source form and every runtime value: the empty list, the
// truth value, numbers, strings, symbols, cons pairs, and procedures.
type Datum interface {
	Kind() Kind
	// String renders the value the way `print` does: strings are quoted.
	String() string
	// Display renders the value the way `display` does: strings are bare.
	Display() string
}

// NormalizeSymbolName case-folds an identifier to upper-case the way the
// reader does for every symbol token it reads.
func NormalizeSymbolName(name string) string {
	return upper.String(name)
}

// ---- Nil and True: unique, zero-size singleton values ----

type nilDatum struct{}

func (nilDatum) Kind() Kind       { return KindNil }
func (nilDatum) String() string   { return "NIL" }
func (nilDatum) Display() string  { return "NIL" }

type trueDatum struct{}

func (trueDatum) Kind() Kind      { return KindTrue }
func (trueDatum) String() string  { return "T" }
func (trueDatum) Display() string { return "T" }

// NIL is the unique empty-list value and the canonical falsy value.
var NIL Datum = nilDatum{}

// T is the canonical truth value.
var T Datum = trueDatum{}

// IsNil reports whether d is the distinguished NIL value.
func IsNil(d Datum) bool {
	_, ok := d.(nilDatum)
	return ok
}

// IsTruthy reports whether d counts as true in a conditional: every datum
// other than NIL is truthy (spec.md §9 Open Question 1).
func IsTruthy(d Datum) bool {
	return !IsNil(d)
}

// BoolDatum converts a Go bool to the canonical T/NIL pair.
func BoolDatum(b bool) Datum {
	if b {
		return T
	}
	return NIL
}

// ---- Integer ----

// Integer is a 64-bit signed self-evaluating number.
type Integer int64

func (Integer) Kind() Kind          { return KindInteger }
func (i Integer) String() string    { return strconv.FormatInt(int64(i), 10) }
func (i Integer) Display() string   { return i.String() }

// ---- Float ----

// Float is a 64-bit IEEE self-evaluating number.
type Float float64

func (Float) Kind() Kind        { return KindFloat }
func (f Float) String() string  { return formatFloat(float64(f)) }
func (f Float) Display() string { return f.String() }

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// ---- String ----

// String is an immutable self-evaluating byte sequence.
type String string

func (String) Kind() Kind         { return KindString }
func (s String) String() string   { return `"` + string(s) + `"` }
func (s String) Display() string  { return string(s) }

// ---- Symbol ----

// Symbol is an interned, upper-cased variable/procedure name. Evaluating a
// bare symbol looks it up in the current environment.
type Symbol string

// NewSymbol constructs a Symbol, case-folding the name the way the reader
// does; use this instead of a bare conversion when the name's casing is
// not already normalized.
func NewSymbol(name string) Symbol {
	return Symbol(NormalizeSymbolName(name))
}

func (Symbol) Kind() Kind         { return KindSymbol }
func (s Symbol) String() string   { return string(s) }
func (s Symbol) Display() string  { return string(s) }
