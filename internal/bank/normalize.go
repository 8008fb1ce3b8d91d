package bank

import (
	"strings"

	"codequiz/internal/domain"
)

// NormalizeRows converts data rows (header row excluded) into questions.
// Code and output cells are copied verbatim; difficulty and type are trimmed,
// and difficulty is lower-cased. Rows with neither code nor output are dropped.
func NormalizeRows(rows [][]string, hm domain.HeaderMap) []domain.Question {
	questions := make([]domain.Question, 0, len(rows))
	for _, row := range rows {
		code := cell(row, hm.Column(domain.FieldCode))
		output := cell(row, hm.Column(domain.FieldOutput))
		if strings.TrimSpace(code) == "" && strings.TrimSpace(output) == "" {
			continue
		}

		difficulty := strings.ToLower(strings.TrimSpace(cell(row, hm.Column(domain.FieldDifficulty))))
		questionType := strings.TrimSpace(cell(row, hm.Column(domain.FieldType)))
		questions = append(questions, domain.NewQuestion(code, output, difficulty, questionType))
	}
	return questions
}

// BuildQuestions resolves the header row of grid and normalizes the rest.
// An empty grid, or one whose header matches nothing, yields no questions.
func BuildQuestions(grid [][]string, aliases AliasTable) ([]domain.Question, domain.HeaderMap) {
	if len(grid) == 0 {
		return []domain.Question{}, ResolveHeaders(nil, aliases)
	}
	hm := ResolveHeaders(grid[0], aliases)
	return NormalizeRows(grid[1:], hm), hm
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
