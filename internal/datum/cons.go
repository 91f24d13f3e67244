package datum

import "strings"

// Cons is a pair of two datums. A proper list is either NIL or a Cons
// whose Tail is itself a proper list. The reader never produces cycles and
// no mutator in this package is capable of creating one.
type Cons struct {
	Head Datum
	Tail Datum
}

func (*Cons) Kind() Kind { return KindCons }

func (c *Cons) String() string { return c.render(func(d Datum) string { return d.String() }) }

func (c *Cons) Display() string { return c.render(func(d Datum) string { return d.Display() }) }

func (c *Cons) render(elem func(Datum) string) string {
	var sb strings.Builder
	sb.WriteByte('(')
	cur := Datum(c)
	first := true
	for {
		cc, ok := cur.(*Cons)
		if !ok {
			// improper tail
			sb.WriteString(" . ")
			sb.WriteString(elem(cur))
			break
		}
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(elem(cc.Head))
		if IsNil(cc.Tail) {
			break
		}
		cur = cc.Tail
	}
	sb.WriteByte(')')
	return sb.String()
}

// NewCons builds a single pair.
func NewCons(head, tail Datum) *Cons {
	return &Cons{Head: head, Tail: tail}
}

// List builds a proper list from the given elements, NIL-terminated.
func List(elems ...Datum) Datum {
	result := NIL
	for i := len(elems) - 1; i >= 0; i-- {
		result = NewCons(elems[i], result)
	}
	return result
}

// IsProperList reports whether d is NIL or a chain of Cons cells whose
// final Tail is NIL.
func IsProperList(d Datum) bool {
	for {
		if IsNil(d) {
			return true
		}
		c, ok := d.(*Cons)
		if !ok {
			return false
		}
		d = c.Tail
	}
}

// Elements collects a proper list's elements into a slice. The caller must
// have already established (or not care) that d is proper; an improper
// tail simply stops collection at the last Cons without error.
func Elements(d Datum) []Datum {
	var out []Datum
	for {
		c, ok := d.(*Cons)
		if !ok {
			return out
		}
		out = append(out, c.Head)
		d = c.Tail
	}
}

// Len returns the number of elements in a proper (or improperly
// terminated) list, stopping at the first non-Cons tail.
func Len(d Datum) int {
	n := 0
	for {
		c, ok := d.(*Cons)
		if !ok {
			return n
		}
		n++
		d = c.Tail
	}
}
