package domain

// JSONPathAssertion defines a JSONPath-based check against a transcript
// document. Any combination of fields may be set.
type JSONPathAssertion struct {
	Exists   bool
	Eq       *string
	Contains *string
	Matches  *string
	Gt       *float64
	Lt       *float64
}

// ExpectSpec defines the expectations for one lesson transcript.
type ExpectSpec struct {
	// Lines is the exact expected line count (optional).
	Lines *int

	// Contains lists lines that must appear verbatim.
	Contains []string

	// Golden is a file with the exact expected transcript (optional),
	// resolved relative to the workbook.
	Golden string

	JSONPath map[string]JSONPathAssertion
}

// LessonCheck pairs a lesson with its expectations.
type LessonCheck struct {
	Lesson string
	Expect ExpectSpec
}

// Workbook groups lesson checks under one name.
type Workbook struct {
	Name   string
	Path   string
	Checks []LessonCheck
}
