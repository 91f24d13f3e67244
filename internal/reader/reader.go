// Package reader implements the S-expression reader (spec.md §4.1): a
// character scan over source text that produces an ordered sequence of
// top-level forms, grounded on original_source/pylisp/common_pylisp.py's
// Parser/ConsBuilder algorithm and styled after the teacher's rune-based
// internal/lexer.Lexer.
package reader

import (
	"strconv"

	"github.com/AlxV07/golisp/internal/datum"
	"github.com/AlxV07/golisp/internal/errors"
)

// builder is one open, in-construction list: head is the first cons of the
// list (nil while the list is still empty), tail is the cons currently
// receiving the next appended element.
type builder struct {
	head *datum.Cons
	tail *datum.Cons
}

// Reader scans a source string into a sequence of datums. It carries a
// stack of open-list builders and a stack of pending-quote nesting levels
// (the depths at which a `quote` or `function` wrapper was opened, so the
// wrapper can auto-close after receiving exactly one datum); ReadAll keeps
// the atom accumulator. A Reader is single-use: construct a fresh one per
// source.
type Reader struct {
	runes       []rune
	pos         int
	level       int
	builders    []*builder
	quoteLevels []int
	results     []datum.Datum
}

// New creates a Reader over source.
func New(source string) *Reader {
	return &Reader{runes: []rune(source)}
}

// ReadAll scans the reader's source to completion and returns every
// top-level form it produced, in order.
func (r *Reader) ReadAll() ([]datum.Datum, error) {
	var inString bool
	var strBuf []rune
	var atomBuf []rune

	flushAtom := func() error {
		if len(atomBuf) == 0 {
			return nil
		}
		tok := string(atomBuf)
		atomBuf = atomBuf[:0]
		return r.add(classifyAtom(tok))
	}

	n := len(r.runes)
	for r.pos < n {
		ch := r.runes[r.pos]

		if inString {
			if ch == '"' {
				if err := r.add(datum.String(string(strBuf))); err != nil {
					return nil, err
				}
				strBuf = nil
				inString = false
			} else {
				strBuf = append(strBuf, ch)
			}
			r.pos++
			continue
		}

		switch {
		case ch == ';':
			for r.pos < n && r.runes[r.pos] != '\n' {
				r.pos++
			}

		case ch == '"':
			if err := flushAtom(); err != nil {
				return nil, err
			}
			inString = true
			r.pos++

		case ch == '(':
			if err := flushAtom(); err != nil {
				return nil, err
			}
			r.openList()
			r.pos++

		case ch == ')':
			if err := flushAtom(); err != nil {
				return nil, err
			}
			if err := r.closeList(); err != nil {
				return nil, err
			}
			r.pos++

		case ch == '\'':
			if err := flushAtom(); err != nil {
				return nil, err
			}
			if err := r.wrapNext("QUOTE"); err != nil {
				return nil, err
			}
			r.pos++

		case ch == '#' && r.pos+1 < n && r.runes[r.pos+1] == '\'':
			if err := flushAtom(); err != nil {
				return nil, err
			}
			if err := r.wrapNext("FUNCTION"); err != nil {
				return nil, err
			}
			r.pos += 2

		case isSpace(ch):
			if err := flushAtom(); err != nil {
				return nil, err
			}
			r.pos++

		default:
			atomBuf = append(atomBuf, ch)
			r.pos++
		}
	}

	if inString {
		return nil, errors.New(errors.UnmatchedQuotation, "unterminated string literal")
	}
	if err := flushAtom(); err != nil {
		return nil, err
	}
	if len(r.builders) != 0 {
		return nil, errors.New(errors.UnmatchedParentheses, "unclosed list at end of input")
	}
	return r.results, nil
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

// classifyAtom classifies a maximal run of non-delimiter characters, in the
// order spec.md §4.1 prescribes: signed integer, then decimal float,
// otherwise a case-folded symbol.
func classifyAtom(tok string) datum.Datum {
	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return datum.Integer(i)
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return datum.Float(f)
	}
	return datum.NewSymbol(tok)
}

// openList pushes a new, empty list builder.
func (r *Reader) openList() {
	r.level++
	r.builders = append(r.builders, &builder{})
}

// closeList pops the innermost builder and feeds its completed list (NIL if
// empty) as a datum into the enclosing builder, or emits it as a top-level
// form if there is none.
func (r *Reader) closeList() error {
	if len(r.builders) == 0 {
		return errors.New(errors.UnmatchedParentheses, "unexpected )")
	}
	r.level--
	b := r.builders[len(r.builders)-1]
	r.builders = r.builders[:len(r.builders)-1]

	var result datum.Datum = datum.NIL
	if b.head != nil {
		result = b.head
	}
	if len(r.builders) == 0 {
		r.results = append(r.results, result)
		return nil
	}
	return r.add(result)
}

// wrapNext opens a list, seeds it with the symbol naming the wrapper (QUOTE
// or FUNCTION), and records the nesting level at which it was opened so
// add can auto-close it once it has received its one datum.
func (r *Reader) wrapNext(symbolName string) error {
	r.openList()
	if err := r.add(datum.NewSymbol(symbolName)); err != nil {
		return err
	}
	r.quoteLevels = append(r.quoteLevels, r.level)
	return nil
}

// add appends leaf to the innermost open builder, or emits it directly as a
// top-level form when no list is open. After appending, if the current
// nesting level matches the innermost pending-quote level, the just-filled
// quote/function wrapper is automatically closed.
func (r *Reader) add(leaf datum.Datum) error {
	if len(r.builders) == 0 {
		r.results = append(r.results, leaf)
		return nil
	}
	top := r.builders[len(r.builders)-1]
	next := &datum.Cons{Head: leaf, Tail: datum.NIL}
	if top.head == nil {
		top.head = next
		top.tail = next
	} else {
		top.tail.Tail = next
		top.tail = next
	}
	if len(r.quoteLevels) > 0 && r.quoteLevels[len(r.quoteLevels)-1] == r.level {
		r.quoteLevels = r.quoteLevels[:len(r.quoteLevels)-1]
		return r.closeList()
	}
	return nil
}

// ReadAll is a convenience wrapper equivalent to New(source).ReadAll().
func ReadAll(source string) ([]datum.Datum, error) {
	return New(source).ReadAll()
}
