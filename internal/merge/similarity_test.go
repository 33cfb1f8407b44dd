package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJaccard(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{"identical", "the quick brown fox", "the quick brown fox", 1},
		{"disjoint", "alpha beta", "gamma delta", 0},
		{"three of five shared", "the quick brown fox", "the quick brown dog", 0.6},
		{"case and punctuation ignored", "Hello, World!", "hello world", 1},
		{"repeated words count once", "the cat and the cat", "cat and the", 1},
		{"both empty", "", "", 1},
		{"one empty", "words here", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Jaccard(tt.a, tt.b), 1e-9)
			assert.InDelta(t, tt.expected, Jaccard(tt.b, tt.a), 1e-9, "symmetric")
		})
	}
}
