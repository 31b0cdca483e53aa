package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// RunErrorKind is a high-level classification of runtime errors.
type RunErrorKind string

const (
	RunErrorUnknown  RunErrorKind = "unknown"
	RunErrorNotFound RunErrorKind = "not_found"
	RunErrorCanceled RunErrorKind = "canceled"
	RunErrorTimeout  RunErrorKind = "timeout"
	RunErrorPanic    RunErrorKind = "panic"
)

// RunError represents a structured error recorded in a result.
type RunError struct {
	Kind    RunErrorKind `json:"kind"`
	Message string       `json:"message"`
}

// PanicError carries a value recovered from a lesson panic.
type PanicError struct {
	Lesson string
	Value  any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("lesson %s panicked: %v", e.Lesson, e.Value)
}

// ClassifyRunError maps an error to a RunErrorKind.
func ClassifyRunError(err error) RunErrorKind {
	if err == nil {
		return RunErrorUnknown
	}
	var pe *PanicError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return RunErrorTimeout
	case errors.Is(err, context.Canceled):
		return RunErrorCanceled
	case errors.As(err, &pe):
		return RunErrorPanic
	case IsKind(err, KindNotFound), errors.Is(err, ErrNotFound):
		return RunErrorNotFound
	default:
		return RunErrorUnknown
	}
}

func NewRunError(err error) *RunError {
	if err == nil {
		return nil
	}
	return &RunError{Kind: ClassifyRunError(err), Message: err.Error()}
}

// AssertionResult is the output of a single assertion.
type AssertionResult struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// LessonResult is the outcome of checking one lesson.
type LessonResult struct {
	Lesson     string            `json:"lesson"`
	LineCount  int               `json:"line_count"`
	DurationMS int64             `json:"duration_ms"`
	Assertions []AssertionResult `json:"assertions"`
	Error      *RunError         `json:"error,omitempty"`
}

// Failed reports whether the lesson errored or any assertion failed.
func (r LessonResult) Failed() bool {
	if r.Error != nil {
		return true
	}
	for _, a := range r.Assertions {
		if !a.Passed {
			return true
		}
	}
	return false
}

// CheckRun is the outcome of checking a whole workbook.
type CheckRun struct {
	WorkbookName string         `json:"workbook_name"`
	WorkbookPath string         `json:"workbook_path"`
	StartedAt    time.Time      `json:"started_at"`
	EndedAt      time.Time      `json:"ended_at"`
	Results      []LessonResult `json:"results"`
}

// Failures counts failed lesson results.
func (c CheckRun) Failures() int {
	n := 0
	for _, r := range c.Results {
		if r.Failed() {
			n++
		}
	}
	return n
}
