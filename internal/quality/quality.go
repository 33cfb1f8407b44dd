// Package quality flags highlights whose content looks accidental: a few
// stray characters, a passage starting mid-sentence, or one cut off before
// its end. Flags are advisory metadata; nothing is ever dropped here.
package quality

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mrlokans/clippings/entities"
)

// MinContentRunes is the length below which a highlight reads as an
// accidental tap rather than a deliberate selection.
const MinContentRunes = 5

// validEndings are runes that can legitimately close a highlighted passage.
const validEndings = `.!?…"'”’»)]`

// Run flags suspicious highlights that dedup and merge have not already
// flagged. The first matching reason wins.
func Run(records []entities.Record) []entities.Record {
	out := make([]entities.Record, len(records))
	copy(out, records)

	for i := range out {
		r := &out[i]
		if r.Kind != entities.KindHighlight || r.IsSuspicious || r.IsLimitReached || r.IsEmpty {
			continue
		}
		if reason, flagged := inspect(r.Content); flagged {
			r.IsSuspicious = true
			r.SuspiciousReason = reason
		}
	}
	return out
}

func inspect(content string) (entities.SuspiciousReason, bool) {
	if utf8.RuneCountInString(content) < MinContentRunes {
		return entities.ReasonTooShort, true
	}
	first, _ := utf8.DecodeRuneInString(content)
	if unicode.IsLower(first) {
		return entities.ReasonFragment, true
	}
	last, _ := utf8.DecodeLastRuneInString(content)
	if !strings.ContainsRune(validEndings, last) {
		return entities.ReasonIncomplete, true
	}
	return "", false
}
