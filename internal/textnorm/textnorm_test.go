package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips utf8 bom",
			input:    "﻿The Power of Now (Eckhart Tolle)",
			expected: "The Power of Now (Eckhart Tolle)",
		},
		{
			name:     "unifies crlf endings",
			input:    "line one\r\nline two\r\n",
			expected: "line one\nline two\n",
		},
		{
			name:     "unifies bare cr endings",
			input:    "line one\rline two",
			expected: "line one\nline two",
		},
		{
			name:     "keeps bom in the middle of the text",
			input:    "abc﻿def",
			expected: "abc﻿def",
		},
		{
			name:     "composes decomposed accents",
			input:    "Anäpodaton", // a + combining diaeresis
			expected: "Anäpodaton",
		},
		{
			name:     "leaves normalized text untouched",
			input:    "Añadido el viernes, 6 de enero de 2017",
			expected: "Añadido el viernes, 6 de enero de 2017",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeMixedEndings(t *testing.T) {
	input := "a\r\nb\rc\nd"
	assert.Equal(t, "a\nb\nc\nd", Normalize(input))
}
