// Package bank turns the raw question sheet into a cached, filterable
// question bank.
package bank

import "codequiz/internal/domain"

// AliasTable lists, per logical field, the header labels accepted for it in
// priority order. Matching is exact and case-sensitive.
type AliasTable map[domain.Field][]string

// DefaultAliases covers the English and Korean headers the sheet has used.
var DefaultAliases = AliasTable{
	domain.FieldCode:       {"code", "Code", "코드", "문제"},
	domain.FieldOutput:     {"output", "Output", "출력", "답", "정답"},
	domain.FieldDifficulty: {"difficulty", "Difficulty", "난이도"},
	domain.FieldType:       {"type", "Type", "분류", "유형"},
}

// Merge returns a new table with extra labels appended after the existing ones.
// Unknown field names in extra are ignored.
func (t AliasTable) Merge(extra map[string][]string) AliasTable {
	merged := make(AliasTable, len(t))
	for field, aliases := range t {
		merged[field] = append([]string(nil), aliases...)
	}
	for name, aliases := range extra {
		field, ok := domain.ParseField(name)
		if !ok {
			continue
		}
		merged[field] = append(merged[field], aliases...)
	}
	return merged
}

// ResolveHeaders maps each logical field to the column holding it. Aliases are
// tried in order against the whole row, and the first column carrying a
// matching label wins. Fields without a match are recorded as absent (-1).
func ResolveHeaders(headerRow []string, aliases AliasTable) domain.HeaderMap {
	hm := make(domain.HeaderMap, len(domain.Fields))
	for _, field := range domain.Fields {
		hm[field] = findColumn(headerRow, aliases[field])
	}
	return hm
}

func findColumn(headerRow []string, candidates []string) int {
	for _, alias := range candidates {
		for idx, cell := range headerRow {
			if cell == alias {
				return idx
			}
		}
	}
	return -1
}
