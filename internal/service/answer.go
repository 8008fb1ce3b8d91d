package service

import "strings"

// escapeDecoder interprets the backslash escapes authors type into the
// output column. The double backslash pair is listed first so `\\n` stays a
// literal backslash followed by n.
var escapeDecoder = strings.NewReplacer(
	`\\`, `\`,
	`\n`, "\n",
	`\t`, "\t",
	`\r`, "\r",
	`\"`, `"`,
	`\'`, `'`,
)

// DecodeEscapes turns escape sequences stored in the sheet into the
// characters they stand for.
func DecodeEscapes(s string) string {
	return escapeDecoder.Replace(s)
}

// AnswerMatches compares a learner's answer with the stored expected output.
// Surrounding whitespace is ignored on both sides and line endings are unified.
func AnswerMatches(expectedRaw, answer string) bool {
	expected := normalizeAnswer(DecodeEscapes(expectedRaw))
	return expected == normalizeAnswer(answer)
}

func normalizeAnswer(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimSpace(s)
}
