package bank

import (
	"testing"

	"codequiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQuestions_EnglishHeaders(t *testing.T) {
	grid := [][]string{
		{"code", "output", "difficulty", "type"},
		{"print(1+1)", "2", "easy", "math"},
	}

	questions, _ := BuildQuestions(grid, DefaultAliases)

	require.Len(t, questions, 1)
	assert.Equal(t, "print(1+1)", questions[0].Code)
	assert.Equal(t, "2", questions[0].ExpectedOutput)
	assert.Equal(t, "easy", questions[0].Difficulty)
	assert.Equal(t, "math", questions[0].Type)
	assert.Equal(t, domain.QuestionID("print(1+1)", "2"), questions[0].ID)
}

func TestBuildQuestions_KoreanHeadersWithBlankMetadata(t *testing.T) {
	grid := [][]string{
		{"문제", "답", "난이도", "분류"},
		{"print('hi')", "hi", "", ""},
	}

	questions, _ := BuildQuestions(grid, DefaultAliases)

	require.Len(t, questions, 1)
	assert.Equal(t, "print('hi')", questions[0].Code)
	assert.Equal(t, "hi", questions[0].ExpectedOutput)
	assert.Empty(t, questions[0].Difficulty)
	assert.Empty(t, questions[0].Type)
}

func TestBuildQuestions_HeaderOnlyGrid(t *testing.T) {
	questions, hm := BuildQuestions([][]string{{"code", "output", "difficulty", "type"}}, DefaultAliases)
	assert.Empty(t, questions)
	assert.Equal(t, 4, hm.Resolved())

	questions, hm = BuildQuestions(nil, DefaultAliases)
	assert.NotNil(t, questions)
	assert.Empty(t, questions)
	assert.Equal(t, 0, hm.Resolved())
}

func TestNormalizeRows(t *testing.T) {
	hm := domain.HeaderMap{
		domain.FieldCode: 0, domain.FieldOutput: 1, domain.FieldDifficulty: 2, domain.FieldType: 3,
	}

	tests := []struct {
		name     string
		rows     [][]string
		expected []domain.Question
	}{
		{
			name: "content whitespace is preserved, metadata trimmed",
			rows: [][]string{{"  for i in range(2):\n    print(i)  ", "0\\n1 ", "  HARD ", "  Loops "}},
			expected: []domain.Question{
				domain.NewQuestion("  for i in range(2):\n    print(i)  ", "0\\n1 ", "hard", "Loops"),
			},
		},
		{
			name:     "row of empty strings is dropped",
			rows:     [][]string{{"", "", "", ""}},
			expected: []domain.Question{},
		},
		{
			name:     "whitespace-only content is dropped",
			rows:     [][]string{{"   ", "\n", "easy", "math"}},
			expected: []domain.Question{},
		},
		{
			name: "output alone is enough",
			rows: [][]string{{"", "42", "easy"}},
			expected: []domain.Question{
				domain.NewQuestion("", "42", "easy", ""),
			},
		},
		{
			name: "short rows read missing cells as empty",
			rows: [][]string{{"print(1)"}, {}},
			expected: []domain.Question{
				domain.NewQuestion("print(1)", "", "", ""),
			},
		},
		{
			name: "order kept and duplicates not removed",
			rows: [][]string{{"a", "1"}, {"b", "2"}, {"a", "1"}},
			expected: []domain.Question{
				domain.NewQuestion("a", "1", "", ""),
				domain.NewQuestion("b", "2", "", ""),
				domain.NewQuestion("a", "1", "", ""),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeRows(tt.rows, hm))
		})
	}
}

func TestNormalizeRows_AbsentColumns(t *testing.T) {
	hm := domain.HeaderMap{
		domain.FieldCode: 1, domain.FieldOutput: -1, domain.FieldDifficulty: -1, domain.FieldType: -1,
	}

	questions := NormalizeRows([][]string{{"ignored", "print(2)", "hard", "x"}}, hm)

	require.Len(t, questions, 1)
	assert.Equal(t, "print(2)", questions[0].Code)
	assert.Empty(t, questions[0].ExpectedOutput)
	assert.Empty(t, questions[0].Difficulty)
	assert.Empty(t, questions[0].Type)
}
