// Package score ranks candidate project names against a typed query,
// blending subsequence match quality with how recently the project was
// created and touched.
package score

import (
	"math"
	"strings"
	"time"
	"unicode"
)

// Tuning weights. Empirically chosen; changing them only reshuffles
// ranking, nothing depends on exact values.
const (
	createdWeight = 2.0
	accessWeight  = 5.0
	lengthDamping = 10.0
)

// Compute scores name against query at the given clock. The returned
// positions are the rune indexes of name that matched the query, for
// highlighting; they are nil when query is empty or the name was
// filtered out. A non-empty query that is not an in-order subsequence
// of name (case-insensitive) scores exactly 0.
func Compute(name, query string, created, accessed, now time.Time) (float64, []int) {
	score := 0.0
	var positions []int

	if query != "" {
		matchScore, pos, ok := matchQuery(name, query)
		if !ok {
			return 0, nil
		}
		score = matchScore
		positions = pos
	}

	// Recency always contributes, so an empty query ranks by freshness.
	days := now.Sub(created).Seconds() / 86400.0
	score += createdWeight / math.Sqrt(days+1)

	hours := now.Sub(accessed).Seconds() / 3600.0
	score += accessWeight / math.Sqrt(hours+1)

	return score, positions
}

// matchQuery walks name left to right, greedily consuming query runes in
// order. Each hit earns a base point, a word-boundary bonus when it starts
// the name or follows a non-alphanumeric rune, and a proximity bonus that
// decays with the gap since the previous hit. The accumulated score is then
// scaled by match density and damped for long names.
func matchQuery(name, query string) (float64, []int, bool) {
	nameRunes := []rune(strings.ToLower(name))
	queryRunes := []rune(strings.ToLower(query))

	score := 0.0
	positions := make([]int, 0, len(queryRunes))
	lastPos := -1
	queryIdx := 0

	for pos, r := range nameRunes {
		if queryIdx >= len(queryRunes) {
			break
		}
		if r != queryRunes[queryIdx] {
			continue
		}

		score += 1.0
		if pos == 0 || !isAlphaNum(nameRunes[pos-1]) {
			score += 1.0
		}
		if lastPos >= 0 {
			gap := pos - lastPos - 1
			score += 1.0 / math.Sqrt(float64(gap)+1)
		}

		positions = append(positions, pos)
		lastPos = pos
		queryIdx++
	}

	if queryIdx < len(queryRunes) {
		return 0, nil, false
	}

	if lastPos >= 0 {
		score *= float64(len(queryRunes)) / float64(lastPos+1)
	}
	score *= lengthDamping / (float64(len(nameRunes)) + lengthDamping)

	return score, positions, true
}

func isAlphaNum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
