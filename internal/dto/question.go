package dto

import (
	"time"

	"codequiz/internal/domain"
)

// QuestionResponse is a single question for the quiz page.
// @Description One "guess the output" question
type QuestionResponse struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Output     string `json:"output"`
	Difficulty string `json:"difficulty"`
	Type       string `json:"type"`
	// Fallback reports that the requested filters matched nothing.
	Fallback bool `json:"fallback"`
}

// QuestionListItem is one entry of the question list.
type QuestionListItem struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Output     string `json:"output"`
	Difficulty string `json:"difficulty"`
	Type       string `json:"type"`
}

// FiltersResponse lists the labels available for filtering.
type FiltersResponse struct {
	Difficulties []string `json:"difficulties"`
	Types        []string `json:"types"`
}

// DistinctValuesResponse lists the distinct values of one field.
type DistinctValuesResponse struct {
	Field  string   `json:"field"`
	Values []string `json:"values"`
}

// CheckAnswerRequest is the body of POST /api/check.
type CheckAnswerRequest struct {
	QuestionID string `json:"question_id" validate:"required,max=64"`
	Answer     string `json:"answer" validate:"max=2000"`
}

// CheckAnswerResponse reports whether the learner's answer was right.
type CheckAnswerResponse struct {
	QuestionID string `json:"question_id"`
	Correct    bool   `json:"correct"`
	Expected   string `json:"expected"`
}

// BankStatusResponse describes the cached question bank.
type BankStatusResponse struct {
	SnapshotID    string    `json:"snapshot_id"`
	QuestionCount int       `json:"question_count"`
	FetchedAt     time.Time `json:"fetched_at"`
	FetchCount    int       `json:"fetch_count"`
	FailureCount  int       `json:"failure_count"`
	LastError     string    `json:"last_error,omitempty"`
}

// HealthResponse is returned by the liveness probe.
type HealthResponse struct {
	Status string `json:"status"`
}

// ToQuestionListItems converts domain questions for the list response.
func ToQuestionListItems(questions []domain.Question) []QuestionListItem {
	items := make([]QuestionListItem, 0, len(questions))
	for _, q := range questions {
		items = append(items, QuestionListItem{
			ID:         q.ID,
			Code:       q.Code,
			Output:     q.ExpectedOutput,
			Difficulty: q.Difficulty,
			Type:       q.Type,
		})
	}
	return items
}
