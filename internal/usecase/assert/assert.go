package assert

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/aalvaropc/primer/internal/domain"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// GoldenReader resolves a golden reference to its expected transcript text.
type GoldenReader func(ref string) (string, error)

// maxDiffLines caps how many changed lines a golden failure reports.
const maxDiffLines = 6

func pass(name, msg string) domain.AssertionResult {
	return domain.AssertionResult{Name: name, Passed: true, Message: msg}
}

func fail(name, msg string) domain.AssertionResult {
	return domain.AssertionResult{Name: name, Passed: false, Message: msg}
}

// LineCount checks the exact number of transcript lines.
func LineCount(expected int, got int) domain.AssertionResult {
	if got == expected {
		return pass("lines", fmt.Sprintf("%d lines", got))
	}
	return fail("lines", fmt.Sprintf("expected %d lines, got %d", expected, got))
}

// ContainsLine checks that some transcript line equals want exactly.
func ContainsLine(want string, lines []string) domain.AssertionResult {
	for _, l := range lines {
		if l == want {
			return pass("contains", fmt.Sprintf("found %q", want))
		}
	}
	return fail("contains", fmt.Sprintf("no line equals %q", want))
}

// Golden compares the whole transcript text with the expected text and
// reports the first differing lines on mismatch.
func Golden(ref string, want string, got string) domain.AssertionResult {
	if want == got {
		return pass("golden", fmt.Sprintf("matches %s", ref))
	}
	return fail("golden", fmt.Sprintf("differs from %s:\n%s", ref, lineDiff(want, got)))
}

func lineDiff(want, got string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(want, got)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	shown := 0
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		default:
			continue
		}
		for _, l := range strings.SplitAfter(d.Text, "\n") {
			if l == "" {
				continue
			}
			if shown == maxDiffLines {
				sb.WriteString("  ...\n")
				return strings.TrimRight(sb.String(), "\n")
			}
			sb.WriteString(prefix)
			sb.WriteString(strings.TrimSuffix(l, "\n"))
			sb.WriteByte('\n')
			shown++
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Evaluate applies the expectations to a transcript. Golden files are read
// through readGolden only when the expectation names one.
func Evaluate(spec domain.ExpectSpec, tr domain.Transcript, readGolden GoldenReader) []domain.AssertionResult {
	var out []domain.AssertionResult

	if spec.Lines != nil {
		out = append(out, LineCount(*spec.Lines, len(tr.Lines)))
	}
	for _, want := range spec.Contains {
		out = append(out, ContainsLine(want, tr.Lines))
	}
	if spec.Golden != "" {
		out = append(out, evaluateGolden(spec.Golden, tr, readGolden))
	}

	if len(spec.JSONPath) == 0 {
		return out
	}

	doc := tr.Document()
	for _, expr := range sortedKeys(spec.JSONPath) {
		val, getErr := jsonpath.Get(expr, doc)
		out = append(out, jsonPathChecks(expr, spec.JSONPath[expr], val, getErr)...)
	}
	return out
}

func evaluateGolden(ref string, tr domain.Transcript, readGolden GoldenReader) domain.AssertionResult {
	if readGolden == nil {
		return fail("golden", fmt.Sprintf("golden %s: no reader configured", ref))
	}
	want, err := readGolden(ref)
	if err != nil {
		return fail("golden", fmt.Sprintf("golden %s: %v", ref, err))
	}
	return Golden(ref, want, tr.Text())
}

func jsonPathChecks(expr string, a domain.JSONPathAssertion, val any, getErr error) []domain.AssertionResult {
	var out []domain.AssertionResult
	if a.Exists {
		out = append(out, checkExists(expr, val, getErr))
	}
	if a.Eq != nil {
		out = append(out, checkString("jsonpath.eq", expr, val, getErr, func(s string) (bool, string) {
			return s == *a.Eq, fmt.Sprintf("eq %q", *a.Eq)
		}))
	}
	if a.Contains != nil {
		out = append(out, checkString("jsonpath.contains", expr, val, getErr, func(s string) (bool, string) {
			return strings.Contains(s, *a.Contains), fmt.Sprintf("contains %q", *a.Contains)
		}))
	}
	if a.Matches != nil {
		re, err := regexp.Compile(*a.Matches)
		if err != nil {
			out = append(out, fail("jsonpath.matches", fmt.Sprintf("jsonpath %q: invalid regex %q: %v", expr, *a.Matches, err)))
		} else {
			out = append(out, checkString("jsonpath.matches", expr, val, getErr, func(s string) (bool, string) {
				return re.MatchString(s), fmt.Sprintf("matches %q", *a.Matches)
			}))
		}
	}
	if a.Gt != nil {
		out = append(out, checkNumber("jsonpath.gt", expr, val, getErr, func(f float64) (bool, string) {
			return f > *a.Gt, fmt.Sprintf("> %v", *a.Gt)
		}))
	}
	if a.Lt != nil {
		out = append(out, checkNumber("jsonpath.lt", expr, val, getErr, func(f float64) (bool, string) {
			return f < *a.Lt, fmt.Sprintf("< %v", *a.Lt)
		}))
	}
	return out
}

func checkExists(expr string, val any, getErr error) domain.AssertionResult {
	if getErr != nil {
		return fail("jsonpath.exists", fmt.Sprintf("invalid jsonpath %q: %v", expr, getErr))
	}
	if isEmptyJSONPathValue(val) {
		return fail("jsonpath.exists", fmt.Sprintf("jsonpath %q: expected value to exist, got empty", expr))
	}
	return pass("jsonpath.exists", fmt.Sprintf("jsonpath %q exists", expr))
}

func checkString(name, expr string, val any, getErr error, pred func(string) (bool, string)) domain.AssertionResult {
	if getErr != nil {
		return fail(name, fmt.Sprintf("jsonpath %q: %v", expr, getErr))
	}
	s, err := jsonPathToString(val)
	if err != nil {
		return fail(name, fmt.Sprintf("jsonpath %q: %v", expr, err))
	}
	ok, what := pred(s)
	if ok {
		return pass(name, fmt.Sprintf("jsonpath %q %s", expr, what))
	}
	return fail(name, fmt.Sprintf("jsonpath %q: expected %s, got %q", expr, what, s))
}

func checkNumber(name, expr string, val any, getErr error, pred func(float64) (bool, string)) domain.AssertionResult {
	if getErr != nil {
		return fail(name, fmt.Sprintf("jsonpath %q: %v", expr, getErr))
	}
	f, err := jsonPathToFloat64(val)
	if err != nil {
		return fail(name, fmt.Sprintf("jsonpath %q: %v", expr, err))
	}
	ok, what := pred(f)
	if ok {
		return pass(name, fmt.Sprintf("jsonpath %q: %v %s", expr, f, what))
	}
	return fail(name, fmt.Sprintf("jsonpath %q: expected %s, got %v", expr, what, f))
}

func jsonPathToString(val any) (string, error) {
	switch v := val.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", fmt.Errorf("value is null")
	default:
		return fmt.Sprint(v), nil
	}
}

func jsonPathToFloat64(val any) (float64, error) {
	switch v := val.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("value %q is not numeric", v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("value of type %T is not numeric", val)
	}
}

func isEmptyJSONPathValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func sortedKeys(m map[string]domain.JSONPathAssertion) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
