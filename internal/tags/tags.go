// Package tags reclassifies tag-list notes into structured tags.
//
// Readers often type "Productivity, Habits" as a Kindle note on a highlight
// instead of prose. Once note linking has run, such a note is better served
// as tags on the highlight it annotates than as a standalone record.
package tags

import (
	"strings"
	"unicode/utf8"

	"github.com/mrlokans/clippings/entities"
)

// Case selects how extracted tags are cased.
type Case string

const (
	CaseOriginal Case = "original"
	CaseLower    Case = "lower"
	CaseUpper    Case = "upper"
)

// A token stops looking like a tag and starts looking like prose past these.
const (
	maxTagWords = 4
	maxTagRunes = 48
)

// functionWords are strong sentence signals. A token carrying any of them is
// prose, not a tag.
var functionWords = map[string]bool{
	"a": true, "an": true, "the": true,
	"is": true, "are": true, "was": true, "were": true, "be": true,
	"i": true, "you": true, "he": true, "she": true, "it": true,
	"we": true, "they": true,
	"this": true, "that": true, "these": true, "those": true,
	"of": true, "to": true, "in": true, "on": true, "at": true,
	"for": true, "with": true, "and": true, "or": true, "but": true,
	"not": true, "as": true, "by": true, "from": true,
	"has": true, "have": true, "had": true,
	"do": true, "does": true, "did": true,
	"will": true, "would": true, "can": true, "could": true, "should": true,
	"my": true, "your": true, "his": true, "her": true, "its": true,
	"our": true, "their": true,
}

// Run populates tags on highlights whose linked note is a tag list. The
// consumed note is marked IsTagOnly so downstream output shaping can drop it;
// the records themselves are never removed here. Returns the records and the
// number of notes consumed into tags.
func Run(records []entities.Record, c Case) ([]entities.Record, int) {
	out := make([]entities.Record, len(records))
	copy(out, records)

	noteAt := make(map[string]int)
	for i := range out {
		if out[i].Kind == entities.KindNote {
			noteAt[out[i].ID] = i
		}
	}

	consumed := 0
	for i := range out {
		h := &out[i]
		if h.Kind != entities.KindHighlight || h.LinkedNoteID == "" || h.Note == "" {
			continue
		}
		extracted, tagOnly := Extract(h.Note, c)
		if !tagOnly {
			continue
		}
		h.Tags = entities.UnionTags(h.Tags, extracted)
		if ni, ok := noteAt[h.LinkedNoteID]; ok {
			out[ni].IsTagOnly = true
		}
		consumed++
	}
	return out, consumed
}

// Extract splits note text on commas, semicolons, periods and newlines into
// candidate tags. Leading '#' is stripped, tokens under 2 runes are dropped,
// duplicates collapse case-insensitively keeping first-seen order. Prose
// tokens are rejected rather than kept, and any rejection means the note as a
// whole is not tag-only.
func Extract(text string, c Case) ([]string, bool) {
	tagOnly := true
	var out []string
	seen := make(map[string]bool)

	for _, tok := range strings.FieldsFunc(text, isTagSeparator) {
		tok = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(tok), "#"))
		if utf8.RuneCountInString(tok) < 2 {
			continue
		}
		if proseLike(tok) {
			tagOnly = false
			continue
		}
		tok = applyCase(tok, c)
		key := strings.ToLower(tok)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tok)
	}
	return out, tagOnly && len(out) > 0
}

func isTagSeparator(r rune) bool {
	return r == ',' || r == ';' || r == '.' || r == '\n'
}

func proseLike(tok string) bool {
	words := strings.Fields(tok)
	if len(words) > maxTagWords || utf8.RuneCountInString(tok) > maxTagRunes {
		return true
	}
	for _, w := range words {
		if functionWords[strings.ToLower(strings.Trim(w, "!?\"'()«»"))] {
			return true
		}
	}
	return false
}

func applyCase(s string, c Case) string {
	switch c {
	case CaseLower:
		return strings.ToLower(s)
	case CaseUpper:
		return strings.ToUpper(s)
	default:
		return s
	}
}
