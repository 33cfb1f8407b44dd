// Package dedupe reconciles exact re-imports of the same clipping.
//
// Exactness is identity: two records with the same id are the same clipping
// by construction (see the identity package), whatever blocks they came from.
package dedupe

import (
	"github.com/mrlokans/clippings/entities"
)

// Run groups records by id. When collapse is set the last occurrence of each
// id survives, carrying the union of the group's tags; otherwise every record
// is kept and the non-final members are flagged. The removed count reports
// duplicates either way, so callers can see what collapsing would have done
// before opting in.
func Run(records []entities.Record, collapse bool) ([]entities.Record, int) {
	last := make(map[string]int, len(records))
	removed := 0
	for i, r := range records {
		if _, seen := last[r.ID]; seen {
			removed++
		}
		last[r.ID] = i
	}
	if removed == 0 {
		return records, 0
	}

	if !collapse {
		out := make([]entities.Record, len(records))
		copy(out, records)
		for i := range out {
			if last[out[i].ID] == i || out[i].IsSuspicious {
				continue
			}
			out[i].IsSuspicious = true
			out[i].SuspiciousReason = entities.ReasonExactDuplicate
			out[i].PossibleDuplicateOf = out[i].ID
		}
		return out, removed
	}

	tags := make(map[string][]string)
	for _, r := range records {
		if len(r.Tags) > 0 {
			tags[r.ID] = entities.UnionTags(tags[r.ID], r.Tags)
		}
	}

	out := make([]entities.Record, 0, len(records)-removed)
	for i, r := range records {
		if last[r.ID] != i {
			continue
		}
		if union := tags[r.ID]; len(union) > 0 {
			r.Tags = union
		}
		out = append(out, r)
	}
	return out, removed
}
