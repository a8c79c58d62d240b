package fuzzy

import (
	"strings"
	"unicode/utf8"
)

// LevenshteinDistance counts the single-rune edits that turn s1 into s2.
// Both inputs are normalized first.
func LevenshteinDistance(s1, s2 string) int {
	r1 := []rune(normalize(s1))
	r2 := []rune(normalize(s2))

	if len(r1) == 0 {
		return len(r2)
	}
	if len(r2) == 0 {
		return len(r1)
	}

	// Two rows are enough
	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(r2)]
}

// Threshold is the typo tolerance for a query of this length.
func Threshold(query string) int {
	n := utf8.RuneCountInString(query)
	switch {
	case n <= 3:
		return 0
	case n < 8:
		return 1
	default:
		return 2
	}
}

// Match reports whether query appears in text, either as a substring, a
// word prefix, or a word within the typo tolerance.
func Match(query, text string) bool {
	query = normalize(query)
	text = normalize(text)
	if query == "" {
		return true
	}

	// Covers scripts written without spaces
	if strings.Contains(text, query) {
		return true
	}

	threshold := Threshold(query)
	for _, word := range strings.Fields(text) {
		if strings.HasPrefix(word, query) {
			return true
		}
		if threshold > 0 && LevenshteinDistance(query, word) <= threshold {
			return true
		}
	}
	return false
}

// Score rates how well query matches the given fields. Zero means no match.
func Score(query string, fields ...string) float64 {
	query = normalize(query)
	if query == "" {
		return 0
	}

	best := 0.0
	for _, field := range fields {
		text := normalize(field)
		score := 0.0
		if strings.Contains(text, query) {
			score = 100
			if containsWord(text, query) {
				score += 50
			}
		} else {
			for _, word := range strings.Fields(text) {
				if strings.HasPrefix(word, query) {
					score = max(score, 60)
				}
				if dist := LevenshteinDistance(query, word); dist <= Threshold(query) && dist > 0 {
					score = max(score, 50-float64(dist)*15)
				}
			}
		}
		best = max(best, score)
	}
	return best
}

// normalize lowercases and collapses whitespace
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// containsWord checks if text contains query as a whole word
func containsWord(text, query string) bool {
	for _, word := range strings.Fields(text) {
		if word == query {
			return true
		}
	}
	return false
}
