package cflat

import (
	"fmt"
	"strconv"
)

// The four coercions spec.md §4.4 calls out by name. These mirror
// Interpreter.java's castToBoolean/castToInteger/castToDouble/castToString
// field for field, including the int->bool "odd is truthy" quirk — see
// DESIGN.md's Open Questions section for why that is preserved rather than
// fixed. Unlike the original, an unsupported source type produces a Go
// error instead of a null-pointer crash (the original NPEs when casting a
// list or a null to bln/int/dbl); the observable semantics for every
// well-typed cflat program are unchanged.
func castToBoolean(v Value) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case int64:
		return x%2 == 1, nil
	case float64:
		return x > 0.0, nil
	case string:
		return len(x) != 0, nil
	default:
		return false, fmt.Errorf("cannot convert %s to bln", typeName(v))
	}
}

func castToInteger(v Value) (int64, error) {
	switch x := v.(type) {
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case int64:
		return x, nil
	case float64:
		return int64(x), nil
	case string:
		n, err := strconv.ParseInt(x, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to int", x)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("cannot convert %s to int", typeName(v))
	}
}

func castToDouble(v Value) (float64, error) {
	switch x := v.(type) {
	case bool:
		if x {
			return 1.0, nil
		}
		return 0.0, nil
	case int64:
		return float64(x), nil
	case float64:
		return x, nil
	case string:
		n, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to dbl", x)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("cannot convert %s to dbl", typeName(v))
	}
}

func castToString(v Value) (string, error) {
	return stringify(v), nil
}

func typeName(v Value) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bln"
	case int64:
		return "int"
	case float64:
		return "dbl"
	case string:
		return "str"
	case *List:
		return "arr"
	default:
		return fmt.Sprintf("%T", v)
	}
}
