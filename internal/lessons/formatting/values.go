package formatting

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// formatValue renders v for verb and reports whether v is numeric, which
// decides default alignment and whether zero padding applies.
func formatValue(v any, verb byte, precision int) (string, bool, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return "<nil>", false, nil
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		s, err := formatInt(rv.Int(), rv.Type().Bits(), verb)
		return s, true, err

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		s, err := formatUint(rv.Uint(), verb)
		return s, true, err

	case reflect.Float32, reflect.Float64:
		bits := 64
		if rv.Kind() == reflect.Float32 {
			bits = 32
		}
		s, err := formatFloat(rv.Float(), bits, verb, precision)
		return s, true, err

	case reflect.String:
		s := rv.String()
		if verb == '?' {
			return strconv.Quote(s), false, nil
		}
		if verb != 0 {
			return "", false, fmt.Errorf("%w: verb %q on string", ErrBadSpec, verb)
		}
		if precision >= 0 {
			s = truncateRunes(s, precision)
		}
		return s, false, nil
	}

	if verb == '?' {
		return fmt.Sprintf("%+v", v), false, nil
	}
	if verb != 0 {
		return "", false, fmt.Errorf("%w: verb %q on %T", ErrBadSpec, verb, v)
	}
	return fmt.Sprint(v), false, nil
}

// formatInt renders radix verbs of negative values as two's complement at
// the value's bit width, so int8(-2) in binary is 11111110.
func formatInt(n int64, bits int, verb byte) (string, error) {
	switch verb {
	case 0, '?':
		return strconv.FormatInt(n, 10), nil
	case 'b', 'o', 'x', 'X':
		u := uint64(n)
		if bits < 64 {
			u &= 1<<uint(bits) - 1
		}
		return formatUint(u, verb)
	case 'e':
		return exponent(strconv.FormatFloat(float64(n), 'e', -1, 64)), nil
	default:
		return "", fmt.Errorf("%w: verb %q on integer", ErrBadSpec, verb)
	}
}

func formatUint(n uint64, verb byte) (string, error) {
	switch verb {
	case 0, '?':
		return strconv.FormatUint(n, 10), nil
	case 'b':
		return strconv.FormatUint(n, 2), nil
	case 'o':
		return strconv.FormatUint(n, 8), nil
	case 'x':
		return strconv.FormatUint(n, 16), nil
	case 'X':
		return strings.ToUpper(strconv.FormatUint(n, 16)), nil
	case 'e':
		return exponent(strconv.FormatFloat(float64(n), 'e', -1, 64)), nil
	default:
		return "", fmt.Errorf("%w: verb %q on integer", ErrBadSpec, verb)
	}
}

// exponent rewrites strconv's "1.234e+03" as "1.234e3" and "7.6e-04" as
// "7.6e-4".
func exponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 {
		return s
	}
	mant, exp := s[:i], s[i+1:]
	sign := ""
	switch {
	case strings.HasPrefix(exp, "-"):
		sign, exp = "-", exp[1:]
	case strings.HasPrefix(exp, "+"):
		exp = exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp, sign = "0", ""
	}
	return mant + "e" + sign + exp
}

// formatFloat prints the shortest representation unless a precision is
// given. Debug output keeps a trailing ".0" on whole numbers.
func formatFloat(f float64, bits int, verb byte, precision int) (string, error) {
	switch verb {
	case 0, '?':
		if precision >= 0 {
			return strconv.FormatFloat(f, 'f', precision, bits), nil
		}
		s := strconv.FormatFloat(f, 'f', -1, bits)
		if verb == '?' && !math.IsInf(f, 0) && !math.IsNaN(f) && !strings.Contains(s, ".") {
			s += ".0"
		}
		return s, nil
	case 'e':
		return exponent(strconv.FormatFloat(f, 'e', precision, bits)), nil
	default:
		return "", fmt.Errorf("%w: verb %q on float", ErrBadSpec, verb)
	}
}

func truncateRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
