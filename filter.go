package clippings

import (
	"strings"

	"github.com/mrlokans/clippings/entities"
)

// applyFilters shapes the output per the caller's options. Filters only ever
// drop records; reconciliation is already done by the time they run.
func applyFilters(records []entities.Record, opts Options) []entities.Record {
	out := records

	if len(opts.ExcludeTypes) > 0 {
		excluded := make(map[entities.Kind]bool, len(opts.ExcludeTypes))
		for _, k := range opts.ExcludeTypes {
			excluded[k] = true
		}
		out = keep(out, func(r entities.Record) bool {
			return !excluded[r.Kind]
		})
	}

	if len(opts.OnlyBooks) > 0 {
		allowed := titleSet(opts.OnlyBooks)
		out = keep(out, func(r entities.Record) bool {
			return allowed[strings.ToLower(r.Title)]
		})
	}

	if len(opts.ExcludeBooks) > 0 {
		denied := titleSet(opts.ExcludeBooks)
		out = keep(out, func(r entities.Record) bool {
			return !denied[strings.ToLower(r.Title)]
		})
	}

	if opts.MinContentLength > 0 {
		out = keep(out, func(r entities.Record) bool {
			if r.Kind != entities.KindHighlight && r.Kind != entities.KindClip {
				return true
			}
			return r.CharCount >= opts.MinContentLength
		})
	}

	if opts.HighlightsOnly {
		out = keep(out, func(r entities.Record) bool {
			return r.Kind == entities.KindHighlight
		})
	}

	return out
}

func keep(records []entities.Record, pred func(entities.Record) bool) []entities.Record {
	out := make([]entities.Record, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

func titleSet(titles []string) map[string]bool {
	set := make(map[string]bool, len(titles))
	for _, t := range titles {
		set[strings.ToLower(strings.TrimSpace(t))] = true
	}
	return set
}
