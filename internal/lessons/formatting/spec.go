package formatting

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// spec is the parsed part of a placeholder after ':'.
// Grammar: [[fill]align][0][width][.precision][verb]
// where width and precision are digits or an argument followed by '$'.
type spec struct {
	fill  rune
	align rune

	zero bool

	width    int
	widthArg string

	precision    int
	precisionArg string

	verb byte
}

func isAlign(r rune) bool { return r == '<' || r == '>' || r == '^' }

func parseSpec(s string) (spec, error) {
	sp := spec{fill: ' ', precision: -1}
	if s == "" {
		return sp, nil
	}

	first, size := utf8.DecodeRuneInString(s)
	if second, size2 := utf8.DecodeRuneInString(s[size:]); size < len(s) && isAlign(second) {
		sp.fill, sp.align = first, second
		s = s[size+size2:]
	} else if isAlign(first) {
		sp.align = first
		s = s[size:]
	}

	if strings.HasPrefix(s, "0") && sp.align == 0 {
		sp.zero = true
		s = s[1:]
	}

	w, arg, rest, err := parseCount(s)
	if err != nil {
		return sp, fmt.Errorf("width: %w", err)
	}
	if w < 0 {
		w = 0
	}
	sp.width, sp.widthArg, s = w, arg, rest

	if strings.HasPrefix(s, ".") {
		p, parg, rest, err := parseCount(s[1:])
		if err != nil {
			return sp, fmt.Errorf("precision: %w", err)
		}
		if p < 0 && parg == "" {
			return sp, errors.New("precision: missing count")
		}
		sp.precision, sp.precisionArg, s = p, parg, rest
	}

	switch s {
	case "":
	case "?", "b", "o", "x", "X", "e":
		sp.verb = s[0]
	default:
		return sp, fmt.Errorf("unknown verb %q", s)
	}
	return sp, nil
}

// parseCount reads "12", "name$" or "3$" from the front of s. It returns
// n == -1 when s starts with neither.
func parseCount(s string) (n int, arg string, rest string, err error) {
	if i := strings.IndexByte(s, '$'); i > 0 && isIdent(s[:i]) {
		return 0, s[:i], s[i+1:], nil
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return -1, "", s, nil
	}
	v, convErr := strconv.Atoi(s[:end])
	if convErr != nil {
		return 0, "", s, convErr
	}
	return v, "", s[end:], nil
}

func isIdent(s string) bool {
	for _, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return s != ""
}
