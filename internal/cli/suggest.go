package cli

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far off a typo may be and still match
const maxSuggestDistance = 3

// ClosestMatch returns the candidate nearest to input by edit distance, or ""
// when nothing is close enough
func ClosestMatch(input string, candidates []string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return ""
	}

	best, bestDist := "", maxSuggestDistance+1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(input, strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func suggestFrom(input string, candidates []string) string {
	if match := ClosestMatch(input, candidates); match != "" {
		return "Did you mean '" + match + "'?"
	}
	return "Valid values: " + strings.Join(candidates, ", ")
}
