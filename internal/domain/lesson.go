package domain

import (
	"io"
	"time"
)

// LessonRef describes a lesson without running it.
type LessonRef struct {
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Tags    []string `json:"tags,omitempty"`
}

// Lesson is a runnable walkthrough. Run writes its whole transcript to w and
// never returns early; a panic inside Run is a bug in the lesson.
type Lesson struct {
	LessonRef
	Run func(w io.Writer)
}

// Transcript is the captured output of a single lesson run.
type Transcript struct {
	Lesson    string    `json:"lesson"`
	Title     string    `json:"title"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
	Lines     []string  `json:"lines"`
}

// Text joins the lines back into the exact console output.
func (t Transcript) Text() string {
	if len(t.Lines) == 0 {
		return ""
	}
	n := 0
	for _, l := range t.Lines {
		n += len(l) + 1
	}
	b := make([]byte, 0, n)
	for _, l := range t.Lines {
		b = append(b, l...)
		b = append(b, '\n')
	}
	return string(b)
}

// Document is the generic JSON shape that JSONPath assertions run against.
func (t Transcript) Document() map[string]any {
	lines := make([]any, len(t.Lines))
	for i, l := range t.Lines {
		lines[i] = l
	}
	return map[string]any{
		"lesson":     t.Lesson,
		"title":      t.Title,
		"lines":      lines,
		"line_count": float64(len(t.Lines)),
	}
}
