package ui

import "github.com/sahilm/fuzzy"

// SuggestNames returns up to max names fuzzy-matching input, best match
// first. Used for "did you mean" hints when a plan lookup fails.
func SuggestNames(input string, names []string, max int) []string {
	matches := fuzzy.Find(input, names)

	var suggestions []string
	for _, m := range matches {
		if len(suggestions) == max {
			break
		}
		suggestions = append(suggestions, m.Str)
	}
	return suggestions
}
