package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/clippings/internal/lang"
)

func mustLang(t *testing.T, code string) *lang.Language {
	t.Helper()
	l, ok := lang.Lookup(code)
	require.True(t, ok, "language %s not found", code)
	return l
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		lang     string
		input    string
		expected time.Time
	}{
		{
			name:     "english us 12h",
			lang:     "en",
			input:    "Tuesday, April 15, 2025 10:16:21 PM",
			expected: time.Date(2025, 4, 15, 22, 16, 21, 0, time.UTC),
		},
		{
			name:     "english uk 24h",
			lang:     "en",
			input:    "Saturday, 26 March 2016 14:59:39",
			expected: time.Date(2016, 3, 26, 14, 59, 39, 0, time.UTC),
		},
		{
			name:     "english uk 12h",
			lang:     "en",
			input:    "Monday, 21 April 2025 8:55:24 PM",
			expected: time.Date(2025, 4, 21, 20, 55, 24, 0, time.UTC),
		},
		{
			name:     "english old firmware no seconds",
			lang:     "en",
			input:    "Wednesday, June 23, 2010, 10:19 PM",
			expected: time.Date(2010, 6, 23, 22, 19, 0, 0, time.UTC),
		},
		{
			name:     "spanish",
			lang:     "es",
			input:    "viernes, 6 de enero de 2017 11:21:19",
			expected: time.Date(2017, 1, 6, 11, 21, 19, 0, time.UTC),
		},
		{
			name:     "spanish single digit hour",
			lang:     "es",
			input:    "miércoles, 21 de febrero de 2018 6:24:41",
			expected: time.Date(2018, 2, 21, 6, 24, 41, 0, time.UTC),
		},
		{
			name:     "german",
			lang:     "de",
			input:    "Montag, 12. Februar 2018 20:21:55",
			expected: time.Date(2018, 2, 12, 20, 21, 55, 0, time.UTC),
		},
		{
			name:     "french",
			lang:     "fr",
			input:    "mercredi 6 janvier 2016 21:04:45",
			expected: time.Date(2016, 1, 6, 21, 4, 45, 0, time.UTC),
		},
		{
			name:     "italian",
			lang:     "it",
			input:    "domenica 4 settembre 2016 20:00:45",
			expected: time.Date(2016, 9, 4, 20, 0, 45, 0, time.UTC),
		},
		{
			name:     "portuguese",
			lang:     "pt",
			input:    "sexta-feira, 12 de janeiro de 2018 21:21:21",
			expected: time.Date(2018, 1, 12, 21, 21, 21, 0, time.UTC),
		},
		{
			name:     "dutch",
			lang:     "nl",
			input:    "woensdag 6 januari 2016 21:04:45",
			expected: time.Date(2016, 1, 6, 21, 4, 45, 0, time.UTC),
		},
		{
			name:     "surrounding whitespace collapsed",
			lang:     "en",
			input:    "  Saturday,  26 March 2016   14:59:39 ",
			expected: time.Date(2016, 3, 26, 14, 59, 39, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input, mustLang(t, tt.lang))
			require.True(t, ok)
			assert.True(t, tt.expected.Equal(got), "expected %v, got %v", tt.expected, got)
		})
	}
}

func TestParse_OldFirmwareZoneSuffix(t *testing.T) {
	got, ok := Parse("Friday, 23 July 10 09:26:48 GMT+01:00", mustLang(t, "en"))
	require.True(t, ok)
	expected := time.Date(2010, 7, 23, 8, 26, 48, 0, time.UTC)
	assert.True(t, expected.Equal(got), "expected %v, got %v", expected, got)
}

func TestParse_EnglishDateUnderSpanishRun(t *testing.T) {
	// Device switched locale mid-file: English timestamps still resolve.
	got, ok := Parse("Tuesday, April 15, 2025 10:16:21 PM", mustLang(t, "es"))
	require.True(t, ok)
	assert.True(t, time.Date(2025, 4, 15, 22, 16, 21, 0, time.UTC).Equal(got))
}

func TestParse_GenericNumericFallback(t *testing.T) {
	got, ok := Parse("2025-04-15 22:16:21", mustLang(t, "en"))
	require.True(t, ok)
	assert.True(t, time.Date(2025, 4, 15, 22, 16, 21, 0, time.UTC).Equal(got))
}

func TestParse_Unparseable(t *testing.T) {
	for _, input := range []string{"", "   ", "not a date at all"} {
		got, ok := Parse(input, mustLang(t, "en"))
		assert.False(t, ok, "input %q", input)
		assert.True(t, got.IsZero())
	}
}
