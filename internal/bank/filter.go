package bank

import (
	"sort"
	"strings"

	"codequiz/internal/domain"
)

// Filter returns the questions matching every active criterion, in order.
// When no criterion is active the input slice itself is returned, so callers
// must treat the result as read-only.
func Filter(questions []domain.Question, criteria domain.FilterCriteria) []domain.Question {
	difficulty, byDifficulty := activeCriterion(criteria.Difficulty)
	questionType, byType := activeCriterion(criteria.Type)
	if !byDifficulty && !byType {
		return questions
	}

	matched := make([]domain.Question, 0)
	for _, q := range questions {
		if byDifficulty && normalizeLabel(q.Difficulty) != difficulty {
			continue
		}
		if byType && normalizeLabel(q.Type) != questionType {
			continue
		}
		matched = append(matched, q)
	}
	return matched
}

// DistinctValues collects the sorted, de-duplicated non-empty values of field.
// Only difficulty and type are supported.
func DistinctValues(questions []domain.Question, field domain.Field) []string {
	seen := make(map[string]struct{})
	for _, q := range questions {
		var v string
		switch field {
		case domain.FieldDifficulty:
			v = normalizeLabel(q.Difficulty)
		case domain.FieldType:
			v = strings.TrimSpace(q.Type)
		default:
			return []string{}
		}
		if v != "" {
			seen[v] = struct{}{}
		}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

func activeCriterion(value string) (string, bool) {
	v := normalizeLabel(value)
	if v == "" || v == domain.FilterAll {
		return "", false
	}
	return v, true
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
