package service

import (
	"strings"

	"github.com/aliskhannn/snarky-quiz/internal/domain/entities"
)

// AnswerMatcher resolves typed answers to option indexes with fuzzy matching support.
type AnswerMatcher struct {
	threshold float64 // Similarity threshold (0.0 - 1.0)
}

// NewAnswerMatcher creates a new AnswerMatcher.
func NewAnswerMatcher() *AnswerMatcher {
	return &AnswerMatcher{
		threshold: 0.8, // 80% similarity required
	}
}

// Match returns the option of q the input refers to. The input is either an
// option letter (A-D, case-insensitive, optionally followed by "." or ")") or
// the option text itself, typos tolerated. Ambiguous input does not match.
func (m *AnswerMatcher) Match(q entities.Question, input string) (int, bool) {
	in := m.normalize(input)
	if in == "" {
		return -1, false
	}

	if idx, ok := letterIndex(in); ok {
		return idx, true
	}

	best, bestScore, tie := -1, 0.0, false
	for idx, option := range q.Options {
		score := m.similarity(in, m.normalize(option))
		switch {
		case score > bestScore:
			best, bestScore, tie = idx, score, false
		case score == bestScore:
			tie = true
		}
	}

	if best < 0 || tie || bestScore < m.threshold {
		return -1, false
	}
	return best, true
}

func letterIndex(s string) (int, bool) {
	s = strings.TrimRight(s, ".)")
	if len(s) != 1 {
		return -1, false
	}
	idx := int(s[0] - 'a')
	if idx < 0 || idx >= entities.OptionCount {
		return -1, false
	}
	return idx, true
}

// normalize normalizes a string for comparison.
func (m *AnswerMatcher) normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.TrimSpace(s)

	// Remove extra whitespace
	s = strings.Join(strings.Fields(s), " ")

	return s
}

// similarity calculates the similarity between two strings using Levenshtein distance.
func (m *AnswerMatcher) similarity(s1, s2 string) float64 {
	distance := levenshteinDistance(s1, s2)
	maxLen := max(len([]rune(s1)), len([]rune(s2)))

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/float64(maxLen)
}

// levenshteinDistance calculates the Levenshtein distance between two strings.
func levenshteinDistance(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)

	rows := len(r1) + 1
	cols := len(r2) + 1

	// Two rows are enough.
	prev := make([]int, cols)
	curr := make([]int, cols)

	for j := 0; j < cols; j++ {
		prev[j] = j
	}

	for i := 1; i < rows; i++ {
		curr[0] = i

		for j := 1; j < cols; j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}

			curr[j] = min(
				curr[j-1]+1,    // Insertion
				prev[j]+1,      // Deletion
				prev[j-1]+cost, // Substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[cols-1]
}
