package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// FilterAll is the criteria value that places no constraint on a dimension.
const FilterAll = "all"

// Field names a logical column of the question sheet.
type Field string

const (
	FieldCode       Field = "code"
	FieldOutput     Field = "output"
	FieldDifficulty Field = "difficulty"
	FieldType       Field = "type"
)

// Fields lists every logical column in resolution order.
var Fields = []Field{FieldCode, FieldOutput, FieldDifficulty, FieldType}

// ParseField converts a user supplied name into a Field.
func ParseField(name string) (Field, bool) {
	f := Field(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Fields {
		if f == known {
			return f, true
		}
	}
	return "", false
}

// Question is one "guess the output" item loaded from the sheet.
// Code and ExpectedOutput keep the cell text exactly as stored, escape
// sequences included.
type Question struct {
	ID             string `json:"id"`
	Code           string `json:"code"`
	ExpectedOutput string `json:"output"`
	Difficulty     string `json:"difficulty"` // trimmed, lower-cased
	Type           string `json:"type"`       // trimmed
}

// NewQuestion builds a Question and derives its content ID.
func NewQuestion(code, expectedOutput, difficulty, questionType string) Question {
	return Question{
		ID:             QuestionID(code, expectedOutput),
		Code:           code,
		ExpectedOutput: expectedOutput,
		Difficulty:     difficulty,
		Type:           questionType,
	}
}

// QuestionID is a stable identifier derived from the snippet and its output,
// so the same row keeps its ID across refreshes and reorderings.
func QuestionID(code, expectedOutput string) string {
	sum := sha256.Sum256([]byte(code + "\x00" + expectedOutput))
	return hex.EncodeToString(sum[:8])
}

// EmptyBankQuestion is served when the bank has nothing to offer.
var EmptyBankQuestion = Question{
	ID:             "empty-bank",
	Code:           `print("No questions are available yet.")`,
	ExpectedOutput: "No questions are available yet.",
}

// IsEmptyBank reports whether q is the empty-bank sentinel.
func (q Question) IsEmptyBank() bool {
	return q.ID == EmptyBankQuestion.ID
}

// FilterCriteria narrows a question list. Empty or "all" means unconstrained.
type FilterCriteria struct {
	Difficulty string
	Type       string
}

// HeaderMap maps each logical field to its column index, -1 when absent.
type HeaderMap map[Field]int

// Column returns the index for f, or -1 when the field is absent.
func (h HeaderMap) Column(f Field) int {
	idx, ok := h[f]
	if !ok {
		return -1
	}
	return idx
}

// Resolved counts the fields that were found in the header row.
func (h HeaderMap) Resolved() int {
	n := 0
	for _, f := range Fields {
		if h.Column(f) >= 0 {
			n++
		}
	}
	return n
}

// Snapshot is one complete load of the bank. It is never mutated once built.
type Snapshot struct {
	ID        string     `json:"id"`
	Questions []Question `json:"questions"`
	FetchedAt time.Time  `json:"fetched_at"`
}

// Len returns the number of questions held by s. A nil snapshot is empty.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Questions)
}
