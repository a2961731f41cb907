package cflat

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/oarkflow/date"
)

// loadNatives installs the twelve built-in functions from
// original_source/Runtime.java's loadNativeFunctions, plus one addition
// (today) not present in the original. stdout/stdin are read from the
// calling Interpreter's Stdout/Stdin fields so tests can substitute an in-memory reader/writer instead
// of the process's real console.
func loadNatives(g *Globals) {
	g.defineNative("print", false, &Callable{Arity: 1, Call: func(interp *Interpreter, args []Value) (Value, error) {
		fmt.Fprint(interp.Stdout, stringify(args[0]))
		return nil, nil
	}})
	g.defineNative("println", false, &Callable{Arity: 0, Call: func(interp *Interpreter, args []Value) (Value, error) {
		fmt.Fprintln(interp.Stdout)
		return nil, nil
	}})
	g.defineNative("println", false, &Callable{Arity: 1, Call: func(interp *Interpreter, args []Value) (Value, error) {
		fmt.Fprintln(interp.Stdout, stringify(args[0]))
		return nil, nil
	}})
	g.defineNative("length", true, &Callable{Arity: 1, Call: func(interp *Interpreter, args []Value) (Value, error) {
		switch v := args[0].(type) {
		case *List:
			return int64(len(v.Elements)), nil
		case string:
			return int64(len(v)), nil
		default:
			return int64(-1), nil
		}
	}})
	g.defineNative("yeet", true, &Callable{Arity: 2, Call: nativeYeet})
	g.defineNative("isAlphabetic", true, &Callable{Arity: 1, Call: firstCharPredicate(unicode.IsLetter)})
	g.defineNative("isUpperCase", true, &Callable{Arity: 1, Call: firstCharPredicate(unicode.IsUpper)})
	g.defineNative("isLowerCase", true, &Callable{Arity: 1, Call: firstCharPredicate(unicode.IsLower)})
	g.defineNative("toUpperCase", true, &Callable{Arity: 1, Call: func(interp *Interpreter, args []Value) (Value, error) {
		s, err := castToString(args[0])
		if err != nil {
			return nil, err
		}
		return strings.ToUpper(s), nil
	}})
	g.defineNative("toLowerCase", true, &Callable{Arity: 1, Call: func(interp *Interpreter, args []Value) (Value, error) {
		s, err := castToString(args[0])
		if err != nil {
			return nil, err
		}
		return strings.ToLower(s), nil
	}})
	g.defineNative("input", true, &Callable{Arity: 0, Call: func(interp *Interpreter, args []Value) (Value, error) {
		line, err := interp.Stdin.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}})
	g.defineNative("rand", true, &Callable{Arity: 0, Call: func(interp *Interpreter, args []Value) (Value, error) {
		return rand.Float64(), nil
	}})
	g.defineNative("clock", true, &Callable{Arity: 0, Call: func(interp *Interpreter, args []Value) (Value, error) {
		return time.Now().UnixMilli(), nil
	}})
	g.defineNative("today", true, &Callable{Arity: 0, Call: nativeToday})
}

func nativeYeet(interp *Interpreter, args []Value) (Value, error) {
	i, err := castToInteger(args[1])
	if err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case *List:
		if i < 0 || int(i) >= len(v.Elements) {
			return nil, fmt.Errorf("yeet: index out of range")
		}
		removed := v.Elements[i]
		v.Elements = append(v.Elements[:i], v.Elements[i+1:]...)
		return removed, nil
	case string:
		if i < 0 || int(i) >= len(v) {
			return nil, fmt.Errorf("yeet: index out of range")
		}
		return v[:i] + v[i+1:], nil
	default:
		return int64(-1), nil
	}
}

func firstCharPredicate(pred func(rune) bool) func(*Interpreter, []Value) (Value, error) {
	return func(interp *Interpreter, args []Value) (Value, error) {
		s, ok := args[0].(string)
		if !ok || len(s) == 0 {
			return false, nil
		}
		return pred(rune(s[0])), nil
	}
}

// nativeToday formats the current date with the standard library and
// round-trips it through github.com/oarkflow/date's flexible parser —
// the same library call the teacher's utils.go makes (date.Parse) — then
// formats the parsed time as YYYY-MM-DD again. If parsing fails, the
// standard-library string is returned unchanged.
func nativeToday(interp *Interpreter, args []Value) (Value, error) {
	raw := time.Now().Format("2006-01-02")
	parsed, err := date.Parse(raw)
	if err != nil {
		return raw, nil
	}
	return parsed.Format("2006-01-02"), nil
}

// NewStdio returns a reader on the process's real stdin and the process's
// stdout, in the form NewInterpreter takes them.
func NewStdio() (*bufio.Reader, io.Writer) {
	return bufio.NewReader(os.Stdin), os.Stdout
}
