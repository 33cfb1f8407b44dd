package blockparse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrlokans/clippings/entities"
)

func TestParseTitle(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		title      string
		author     string
		authorRaw  string
		sideloaded bool
	}{
		{
			name:      "title with author",
			input:     "The_Power_of_Now (Eckhart Tolle)",
			title:     "The_Power_of_Now",
			author:    "Eckhart Tolle",
			authorRaw: "Eckhart Tolle",
		},
		{
			name:      "subtitle with colon",
			input:     "The Selfish Gene: 30th Anniversary Edition (Richard Dawkins)",
			title:     "The Selfish Gene: 30th Anniversary Edition",
			author:    "Richard Dawkins",
			authorRaw: "Richard Dawkins",
		},
		{
			name:      "nested parentheses in title",
			input:     "Book With (Nested (Parentheses)) (Author Name)",
			title:     "Book With (Nested (Parentheses))",
			author:    "Author Name",
			authorRaw: "Author Name",
		},
		{
			name:      "parentheses inside author group",
			input:     "Collected Essays (John (Ed.) Smith)",
			title:     "Collected Essays",
			author:    "John (Ed.) Smith",
			authorRaw: "John (Ed.) Smith",
		},
		{
			name:   "no author keeps underscores",
			input:  "Harry_Potter_und_die_Kammer_des_Schreckens",
			title:  "Harry_Potter_und_die_Kammer_des_Schreckens",
			author: entities.UnknownAuthor,
		},
		{
			name:       "sideloaded epub with author",
			input:      "Deep Work (Cal Newport).epub",
			title:      "Deep Work",
			author:     "Cal Newport",
			authorRaw:  "Cal Newport",
			sideloaded: true,
		},
		{
			name:       "sideloaded pdf without author",
			input:      "Clean Architecture.pdf",
			title:      "Clean Architecture",
			author:     entities.UnknownAuthor,
			sideloaded: true,
		},
		{
			name:       "double extension",
			input:      "War and Peace.fb2.zip",
			title:      "War and Peace",
			author:     entities.UnknownAuthor,
			sideloaded: true,
		},
		{
			name:       "uppercase extension",
			input:      "Some Report.PDF",
			title:      "Some Report",
			author:     entities.UnknownAuthor,
			sideloaded: true,
		},
		{
			name:       "zlib remnant stripped",
			input:      "Thinking in Systems (z-lib.org).pdf",
			title:      "Thinking in Systems",
			author:     entities.UnknownAuthor,
			sideloaded: true,
		},
		{
			name:       "edition marker stripped",
			input:      "Clean Code 2nd Edition.mobi",
			title:      "Clean Code",
			author:     entities.UnknownAuthor,
			sideloaded: true,
		},
		{
			name:       "parenthesized edition is not an author",
			input:      "Design Patterns (3rd ed.).pdf",
			title:      "Design Patterns",
			author:     entities.UnknownAuthor,
			sideloaded: true,
		},
		{
			name:      "edition in title survives when a real author follows",
			input:     "The C Programming Language 2nd Edition (Kernighan, Ritchie)",
			title:     "The C Programming Language 2nd Edition",
			author:    "Kernighan, Ritchie",
			authorRaw: "Kernighan, Ritchie",
		},
		{
			name:       "numeric list prefix stripped",
			input:      "01 - Under the Hood.epub",
			title:      "Under the Hood",
			author:     entities.UnknownAuthor,
			sideloaded: true,
		},
		{
			name:   "bare year title survives numeric prefix cleanup",
			input:  "1984",
			title:  "1984",
			author: entities.UnknownAuthor,
		},
		{
			name:       "empty brackets removed",
			input:      "Some Novel [].txt",
			title:      "Some Novel",
			author:     entities.UnknownAuthor,
			sideloaded: true,
		},
		{
			name:   "unbalanced parens fall back to whole line",
			input:  "Broken Title (Author",
			title:  "Broken Title (Author",
			author: entities.UnknownAuthor,
		},
		{
			name:   "empty author group is not an author",
			input:  "Just a Title ()",
			title:  "Just a Title",
			author: entities.UnknownAuthor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, author, authorRaw, sideloaded := parseTitle(tt.input)
			assert.Equal(t, tt.title, title)
			assert.Equal(t, tt.author, author)
			assert.Equal(t, tt.authorRaw, authorRaw)
			assert.Equal(t, tt.sideloaded, sideloaded)
		})
	}
}

func TestSplitAuthor_Unicode(t *testing.T) {
	title, author, ok := splitAuthor("Cien años de soledad (Gabriel García Márquez)")
	assert.True(t, ok)
	assert.Equal(t, "Cien años de soledad", title)
	assert.Equal(t, "Gabriel García Márquez", author)
}
