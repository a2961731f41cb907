package cflat

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is the runtime value domain: int64, float64, bool, string, *List, or
// nil (the language's null). Go's `any` already behaves as a tagged union
// at the interface level, which is the idiom the teacher's own node
// evaluation (`Node.Eval(env) (any, error)` in its former nodes.go) relies
// on throughout; cflat keeps the same representation instead of introducing
// a hand-rolled union struct.
type Value = any

// List is the language's mutable, reference-typed list. Aliases of the same
// *List observe each other's mutations, matching spec.md §3's "lists are
// reference-typed and mutated in place."
type List struct {
	Elements []Value
}

func NewList(elements []Value) *List {
	return &List{Elements: elements}
}

func (l *List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = stringify(e)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// stringify renders a Value in its default textual form, used by print,
// println, string concatenation, and implicit (str) casts of non-string
// operands.
func stringify(v Value) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case bool:
		if x {
			return "true"
		}
		return "false"
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		// Java's Double.toString always keeps a decimal point, so a
		// whole-valued double prints as "1.0" rather than "1".
		s := strconv.FormatFloat(x, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	case string:
		return x
	case *List:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}

// valuesEqual implements the language's structural equality: numbers,
// strings, and booleans compare by content; lists compare by reference
// identity (spec.md §4.4, "Equality uses structural value comparison...
// lists by reference identity").
func valuesEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	al, aIsList := a.(*List)
	bl, bIsList := b.(*List)
	if aIsList || bIsList {
		return aIsList && bIsList && al == bl
	}
	return a == b
}
