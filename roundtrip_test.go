package clippings

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/clippings/entities"
)

func kindPhrase(k entities.Kind) string {
	switch k {
	case entities.KindNote:
		return "Your Note on"
	case entities.KindBookmark:
		return "Your Bookmark on"
	case entities.KindClip:
		return "Clip This Article on"
	default:
		return "Your Highlight on"
	}
}

// reserialize writes records back out in the device's own format, the way a
// re-imported export would look.
func reserialize(records []entities.Record) string {
	blocks := make([]string, 0, len(records))
	for _, r := range records {
		title := r.Title
		if r.Author != entities.UnknownAuthor {
			title = fmt.Sprintf("%s (%s)", r.Title, r.Author)
		}
		meta := fmt.Sprintf("- %s Location %s", kindPhrase(r.Kind), r.Location.Raw)
		if r.DateRaw != "" {
			meta += " | Added on " + r.DateRaw
		}
		blocks = append(blocks, block(title, meta, r.Content))
	}
	return clippingsFile(blocks...)
}

func TestParse_IdempotentReimport(t *testing.T) {
	input := clippingsFile(
		block("Atomic Habits (James Clear)",
			"- Your Highlight on Location 100-110 | Added on Friday, March 7, 2025 10:15:32 AM",
			"This is the beginning"),
		block("Atomic Habits (James Clear)",
			"- Your Highlight on Location 100-120 | Added on Friday, March 7, 2025 10:16:05 AM",
			"This is the beginning of a longer sentence"),
		block("Atomic Habits (James Clear)",
			"- Your Note on Location 115 | Added on Friday, March 7, 2025 10:17:00 AM",
			"How habits compound."),
		block("Meditations (Marcus Aurelius)",
			"- Your Highlight on Location 50-55 | Added on Friday, March 7, 2025 11:00:00 AM",
			"You have power over your mind."),
	)

	first, err := Parse(input, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, first.Records, 3, "the two overlapping highlights collapse")

	second, err := Parse(reserialize(first.Records), DefaultOptions())
	require.NoError(t, err)

	assert.Zero(t, second.Metrics.DuplicatesRemoved)
	assert.Zero(t, second.Metrics.MergedHighlights)
	require.Len(t, second.Records, len(first.Records))
	for i := range first.Records {
		assert.Equal(t, first.Records[i].ID, second.Records[i].ID, "record %d", i)
		assert.Equal(t, first.Records[i].Content, second.Records[i].Content, "record %d", i)
		assert.Equal(t, first.Records[i].Location, second.Records[i].Location, "record %d", i)
	}
}
