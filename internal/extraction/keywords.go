package extraction

import "strings"

// matchKeywords returns the keywords present in text, ignoring case, in the
// order they are configured.
func matchKeywords(text string, keywords []string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			found = append(found, kw)
		}
	}
	return found
}
