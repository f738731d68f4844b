package service

import (
	"testing"

	"github.com/aliskhannn/snarky-quiz/internal/domain/entities"
)

func TestAnswerMatcherMatch(t *testing.T) {
	q := entities.Question{
		Prompt: "What will [1, 2, 3].push(4) return?",
		Options: [entities.OptionCount]string{
			"[1, 2, 3, 4]",
			"4",
			"undefined",
			"true",
		},
		CorrectIndex: 1,
	}
	m := NewAnswerMatcher()

	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{name: "upper letter", input: "A", want: 0, wantOK: true},
		{name: "lower letter with dot", input: " d. ", want: 3, wantOK: true},
		{name: "letter with paren", input: "c)", want: 2, wantOK: true},
		{name: "letter out of range", input: "e", want: -1},
		{name: "exact option text", input: "undefined", want: 2, wantOK: true},
		{name: "option text with typo", input: "undefind", want: 2, wantOK: true},
		{name: "option text case", input: "TRUE", want: 3, wantOK: true},
		{name: "garbage", input: "banana bread", want: -1},
		{name: "empty", input: "   ", want: -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := m.Match(q, tc.input)
			if got != tc.want || ok != tc.wantOK {
				t.Fatalf("Match(%q) = (%d, %v), want (%d, %v)", tc.input, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestAnswerMatcherRejectsTies(t *testing.T) {
	q := entities.Question{
		Options: [entities.OptionCount]string{"same", "same", "other", "thing"},
	}

	if idx, ok := NewAnswerMatcher().Match(q, "same"); ok {
		t.Fatalf("ambiguous input matched option %d", idx)
	}
}

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"undefined", "undefnied", 2},
	}

	for _, tc := range tests {
		if got := levenshteinDistance(tc.a, tc.b); got != tc.want {
			t.Fatalf("levenshteinDistance(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
