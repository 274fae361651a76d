package formatting

import (
	"strings"
	"unicode"
)

const fence = "```"

// Normalize reduces raw model output to the text most likely to be the
// intended JSON payload. A code fence wrapping the payload is removed,
// leading and trailing prose outside the outermost object braces is
// dropped, and surrounding whitespace is trimmed. Text inside the object,
// including backticks within string values, is never altered. Normalize
// never fails and is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	for {
		next := strings.TrimSpace(unfence(s))
		if next == s {
			break
		}
		s = next
	}

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start >= 0 && end > start {
		s = s[start : end+1]
	}

	return strings.TrimSpace(s)
}

// unfence strips an opening fence with its language tag from the start of
// s and a closing fence from the end. Fences elsewhere are left in place.
func unfence(s string) string {
	body, ok := strings.CutPrefix(s, fence)
	if !ok {
		return s
	}
	body = strings.TrimLeftFunc(body, isTagRune)
	body = strings.TrimSpace(body)
	body, _ = strings.CutSuffix(body, fence)
	return body
}

func isTagRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '+' || r == '_'
}
