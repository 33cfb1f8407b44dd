// Package notelink pairs note records with the highlight they annotate.
//
// Kindle writes a note as its own clipping at the position where the reader
// typed it, which is somewhere inside (or just past) the highlighted passage.
// Linking reunites the two: the highlight gains the note text and both sides
// get a cross-reference by id.
package notelink

import (
	"github.com/mrlokans/clippings/entities"
)

// FallbackRadius is how far (in location units) a note may sit from a
// highlight's nearest edge and still link when no highlight contains it.
const FallbackRadius = 10

// Run links each located note to a highlight of the same book. A note inside
// a highlight's range links to the containing highlight with the nearest
// start; a note contained by nothing links to the nearest highlight edge
// within FallbackRadius. A highlight carries at most one note, so a later
// note in file order displaces an earlier link. Returns the records and the
// number of notes that ended up linked.
func Run(records []entities.Record) ([]entities.Record, int) {
	out := make([]entities.Record, len(records))
	copy(out, records)

	noteAt := make(map[int]int)

	for ni := range out {
		note := &out[ni]
		if note.Kind != entities.KindNote || note.Location.IsZero() {
			continue
		}
		hi := closestHighlight(out, *note)
		if hi < 0 {
			continue
		}
		if prev, taken := noteAt[hi]; taken {
			out[prev].LinkedHighlightID = ""
		}
		noteAt[hi] = ni
		out[hi].Note = note.Content
		out[hi].LinkedNoteID = note.ID
		note.LinkedHighlightID = out[hi].ID
	}

	linked := 0
	for i := range out {
		if out[i].Kind == entities.KindNote && out[i].LinkedHighlightID != "" {
			linked++
		}
	}
	return out, linked
}

// closestHighlight picks the link target for a note, or -1. Containment
// beats proximity: among highlights whose range covers the note position the
// nearest start wins, and only when none contains it does the edge-distance
// fallback apply.
func closestHighlight(records []entities.Record, note entities.Record) int {
	book := note.BookKey()
	pos := note.Location.Start

	best, bestDist := -1, 0
	for i := range records {
		h := &records[i]
		if !candidate(h, book) {
			continue
		}
		if pos < h.Location.Start || pos > h.Location.EffectiveEnd() {
			continue
		}
		if d := pos - h.Location.Start; best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best >= 0 {
		return best
	}

	for i := range records {
		h := &records[i]
		if !candidate(h, book) {
			continue
		}
		d := min(abs(h.Location.Start-pos), abs(h.Location.EffectiveEnd()-pos))
		if d > FallbackRadius {
			continue
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func candidate(h *entities.Record, book string) bool {
	return h.Kind == entities.KindHighlight && !h.Location.IsZero() && h.BookKey() == book
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
