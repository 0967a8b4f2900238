// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExamQuestion is a single generated question/answer pair.
type ExamQuestion struct {
	// Question is the exam question text.
	Question string `json:"question"`

	// Answer is the expected answer.
	Answer string `json:"answer"`
}

// QuestionSet holds all questions generated for one lecture. It is the
// on-disk shape of a per-lecture JSON file; insertion order is significant
// and drives numbering on export.
type QuestionSet struct {
	Questions []ExamQuestion `json:"questions"`
}

// FlattenedRecord is an ExamQuestion with provenance, produced by merging
// all per-lecture QuestionSet files for text export.
type FlattenedRecord struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`

	// Source is the base name of the JSON file the record came from,
	// extension stripped (e.g. "Lecture.01.Introduction").
	Source string `json:"source"`
}
