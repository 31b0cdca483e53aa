// Package formatting renders placeholder templates such as
// "{0}, {name:0>width$}, {:.2}" and walks through them in a lesson.
package formatting

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	ErrUnclosedPlaceholder = errors.New("unclosed placeholder")
	ErrUnmatchedBrace      = errors.New("unmatched '}'")
	ErrMissingArgument     = errors.New("missing argument")
	ErrBadSpec             = errors.New("invalid format spec")
)

// Arg is a named argument referenced as {name}.
type Arg struct {
	Name  string
	Value any
}

func Named(name string, v any) Arg {
	return Arg{Name: name, Value: v}
}

// Render substitutes placeholders in tmpl. Arguments of type Arg are named;
// all others are positional, in order. "{{" and "}}" produce literal braces.
func Render(tmpl string, args ...any) (string, error) {
	var positional []any
	named := map[string]any{}
	for _, a := range args {
		if na, ok := a.(Arg); ok {
			named[na.Name] = na.Value
			continue
		}
		positional = append(positional, a)
	}

	r := renderer{positional: positional, named: named}

	var out strings.Builder
	rest := tmpl
	for rest != "" {
		i := strings.IndexAny(rest, "{}")
		if i == -1 {
			out.WriteString(rest)
			break
		}
		out.WriteString(rest[:i])

		if rest[i] == '}' {
			if strings.HasPrefix(rest[i:], "}}") {
				out.WriteByte('}')
				rest = rest[i+2:]
				continue
			}
			return "", fmt.Errorf("%w at offset %d", ErrUnmatchedBrace, len(tmpl)-len(rest)+i)
		}

		if strings.HasPrefix(rest[i:], "{{") {
			out.WriteByte('{')
			rest = rest[i+2:]
			continue
		}

		end := strings.IndexByte(rest[i:], '}')
		if end == -1 {
			return "", fmt.Errorf("%w at offset %d", ErrUnclosedPlaceholder, len(tmpl)-len(rest)+i)
		}

		s, err := r.placeholder(rest[i+1 : i+end])
		if err != nil {
			return "", err
		}
		out.WriteString(s)
		rest = rest[i+end+1:]
	}

	return out.String(), nil
}

// MustRender is Render for templates known to be valid; it panics on error.
func MustRender(tmpl string, args ...any) string {
	s, err := Render(tmpl, args...)
	if err != nil {
		panic(err)
	}
	return s
}

type renderer struct {
	positional []any
	named      map[string]any
	next       int
}

func (r *renderer) placeholder(body string) (string, error) {
	key, specStr, _ := strings.Cut(body, ":")

	v, err := r.resolve(strings.TrimSpace(key))
	if err != nil {
		return "", err
	}

	sp, err := parseSpec(specStr)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrBadSpec, specStr, err)
	}

	width := sp.width
	if sp.widthArg != "" {
		wv, err := r.resolve(sp.widthArg)
		if err != nil {
			return "", err
		}
		width, err = toCount(wv)
		if err != nil {
			return "", fmt.Errorf("%w: width %s: %v", ErrBadSpec, sp.widthArg, err)
		}
	}

	precision := sp.precision
	if sp.precisionArg != "" {
		pv, err := r.resolve(sp.precisionArg)
		if err != nil {
			return "", err
		}
		precision, err = toCount(pv)
		if err != nil {
			return "", fmt.Errorf("%w: precision %s: %v", ErrBadSpec, sp.precisionArg, err)
		}
	}

	body, numeric, err := formatValue(v, sp.verb, precision)
	if err != nil {
		return "", err
	}

	return pad(body, numeric, sp, width), nil
}

// resolve looks up "" (next positional), an index, or a name.
func (r *renderer) resolve(key string) (any, error) {
	if key == "" {
		if r.next >= len(r.positional) {
			return nil, fmt.Errorf("%w: positional %d", ErrMissingArgument, r.next)
		}
		v := r.positional[r.next]
		r.next++
		return v, nil
	}
	if idx, err := strconv.Atoi(key); err == nil {
		if idx < 0 || idx >= len(r.positional) {
			return nil, fmt.Errorf("%w: positional %d", ErrMissingArgument, idx)
		}
		return r.positional[idx], nil
	}
	v, ok := r.named[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingArgument, key)
	}
	return v, nil
}

func toCount(v any) (int, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.Int() < 0 {
			return 0, errors.New("negative count")
		}
		return int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), nil
	default:
		return 0, fmt.Errorf("not an integer: %T", v)
	}
}

func pad(body string, numeric bool, sp spec, width int) string {
	n := utf8.RuneCountInString(body)
	if width <= n {
		return body
	}
	fill := width - n

	if sp.zero && numeric {
		sign := ""
		if strings.HasPrefix(body, "-") || strings.HasPrefix(body, "+") {
			sign, body = body[:1], body[1:]
		}
		return sign + strings.Repeat("0", fill) + body
	}

	align := sp.align
	if align == 0 {
		align = '<'
		if numeric {
			align = '>'
		}
	}

	f := string(sp.fill)
	switch align {
	case '>':
		return strings.Repeat(f, fill) + body
	case '^':
		left := fill / 2
		return strings.Repeat(f, left) + body + strings.Repeat(f, fill-left)
	default:
		return body + strings.Repeat(f, fill)
	}
}
