package flowcontrol

import (
	"fmt"
	"strconv"
	"strings"
)

// debugList renders xs as a bracketed, comma separated list. Strings are
// quoted.
func debugList[T any](xs []T) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		if s, ok := any(x).(string); ok {
			parts[i] = strconv.Quote(s)
			continue
		}
		parts[i] = fmt.Sprint(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
