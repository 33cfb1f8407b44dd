// Package merge reconciles highlights that capture the same passage.
//
// Kindles rewrite a highlight each time the reader adjusts its boundaries,
// so an edited highlight shows up as several records at nearly the same
// location with nearly the same words. Two gates decide whether a pair is
// one passage: the ranges must overlap or sit within MaxGap units, and the
// contents must agree (containment or word similarity).
package merge

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mrlokans/clippings/entities"
	"github.com/mrlokans/clippings/internal/identity"
)

// MaxGap is the widest location gap, in device units, at which two
// highlights still count as the same passage.
const MaxGap = 5

// MinSimilarity is the Jaccard threshold for the content gate.
const MinSimilarity = 0.5

// Run scans each book's highlights in file order and collapses mergeable
// pairs, later records folding into earlier ones. A grown highlight keeps
// absorbing rightward, so chains of adjustments end up as one record. When
// collapse is off the would-be losers are only flagged and the returned
// count stays zero.
func Run(records []entities.Record, collapse bool) ([]entities.Record, int) {
	out := make([]entities.Record, len(records))
	copy(out, records)

	merged := 0
	for i := 0; i < len(out); i++ {
		if out[i].Kind != entities.KindHighlight {
			continue
		}
		for j := i + 1; j < len(out); {
			if out[j].Kind != entities.KindHighlight ||
				out[i].BookKey() != out[j].BookKey() ||
				!Mergeable(out[i], out[j]) {
				j++
				continue
			}
			if !collapse {
				flagLoser(out, i, j)
				j++
				continue
			}
			out[i] = combine(out[i], out[j])
			out = append(out[:j], out[j+1:]...)
			merged++
			// j now holds the next record; keep scanning from here.
		}
	}

	if !collapse {
		return out, 0
	}
	return out, merged
}

// Mergeable reports whether two highlights capture the same passage. Both
// need locations; page-only highlights are never merged.
func Mergeable(a, b entities.Record) bool {
	return proximate(a.Location, b.Location) && similarContent(a.Content, b.Content)
}

func proximate(a, b entities.Location) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	aEnd, bEnd := a.EffectiveEnd(), b.EffectiveEnd()
	if a.Start <= bEnd && b.Start <= aEnd {
		return true
	}
	gap := a.Start - bEnd
	if aEnd < b.Start {
		gap = b.Start - aEnd
	}
	return gap <= MaxGap
}

func similarContent(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la == "" || lb == "" {
		return false
	}
	if strings.Contains(la, lb) || strings.Contains(lb, la) {
		return true
	}
	return Jaccard(a, b) >= MinSimilarity
}

// combine folds b into a. Longer content wins, ties going to the later
// record; the location range is the union; the later timestamp wins; tags
// union. The merged record is a fresh reconciliation, so any earlier
// suspicion flags are dropped and the id is recomputed.
func combine(a, b entities.Record) entities.Record {
	merged := a

	if utf8.RuneCountInString(b.Content) >= utf8.RuneCountInString(a.Content) {
		merged.Content = b.Content
		merged.ContentRaw = b.ContentRaw
		merged.WasCleaned = b.WasCleaned
		merged.IsLimitReached = b.IsLimitReached
	}
	merged.WordCount = len(strings.Fields(merged.Content))
	merged.CharCount = utf8.RuneCountInString(merged.Content)

	merged.Location = unionLocation(a.Location, b.Location)
	if merged.Page == 0 {
		merged.Page = b.Page
	}

	if !b.Date.IsZero() && (merged.Date.IsZero() || b.Date.After(merged.Date)) {
		merged.Date = b.Date
		merged.DateRaw = b.DateRaw
	}

	merged.Tags = entities.UnionTags(a.Tags, b.Tags)
	if b.Note != "" {
		merged.Note = b.Note
		merged.LinkedNoteID = b.LinkedNoteID
	}

	merged.IsSuspicious = false
	merged.SuspiciousReason = ""
	merged.PossibleDuplicateOf = ""

	merged.ID = identity.MakeID(string(merged.Kind), merged.Title, merged.Location.Raw, merged.Content)
	return merged
}

func unionLocation(a, b entities.Location) entities.Location {
	start := min(a.Start, b.Start)
	end := max(a.EffectiveEnd(), b.EffectiveEnd())
	if start == end {
		return entities.Location{Raw: strconv.Itoa(start), Start: start}
	}
	return entities.Location{
		Raw:   strconv.Itoa(start) + "-" + strconv.Itoa(end),
		Start: start,
		End:   end,
	}
}

// flagLoser marks the record that collapsing would have removed: the
// shorter one, or the earlier one when lengths tie.
func flagLoser(out []entities.Record, i, j int) {
	loser, survivor := i, j
	if utf8.RuneCountInString(out[i].Content) > utf8.RuneCountInString(out[j].Content) {
		loser, survivor = j, i
	}
	if out[loser].IsSuspicious {
		return
	}
	out[loser].IsSuspicious = true
	out[loser].SuspiciousReason = entities.ReasonOverlapping
	out[loser].PossibleDuplicateOf = out[survivor].ID
}
