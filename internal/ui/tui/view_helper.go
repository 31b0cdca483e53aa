package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/primer/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// renderTranscript numbers each line in a faint gutter.
func renderTranscript(theme Theme, tr domain.Transcript) string {
	if len(tr.Lines) == 0 {
		return theme.Help.Render("(no output)")
	}

	width := len(fmt.Sprint(len(tr.Lines)))
	var b strings.Builder
	for i, line := range tr.Lines {
		b.WriteString(theme.Gutter.Render(fmt.Sprintf("%*d", width, i+1)))
		b.WriteString("  ")
		b.WriteString(line)
		if i < len(tr.Lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
