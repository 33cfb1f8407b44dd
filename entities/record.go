package entities

import (
	"strings"
	"time"
)

type Kind string

const (
	KindHighlight Kind = "highlight"
	KindNote      Kind = "note"
	KindBookmark  Kind = "bookmark"
	KindClip      Kind = "clip" // article clip, e.g. from the Kindle browser
)

// UnknownAuthor is the author placeholder for title lines without a
// parenthesized author group.
const UnknownAuthor = "Unknown"

type SuspiciousReason string

const (
	ReasonTooShort       SuspiciousReason = "too_short"
	ReasonFragment       SuspiciousReason = "fragment"
	ReasonIncomplete     SuspiciousReason = "incomplete"
	ReasonOverlapping    SuspiciousReason = "overlapping"
	ReasonExactDuplicate SuspiciousReason = "exact_duplicate"
)

// Location is a Kindle reading position. Start/End are device location units;
// End is zero for single-point locations. Raw keeps the canonical textual form
// ("307" or "64-68") so identity hashing stays stable across runs.
type Location struct {
	Raw   string `json:"raw,omitempty"`
	Start int    `json:"start,omitempty"`
	End   int    `json:"end,omitempty"`
}

// EffectiveEnd returns the end of the range, falling back to Start for
// single-point locations.
func (l Location) EffectiveEnd() int {
	if l.End != 0 {
		return l.End
	}
	return l.Start
}

func (l Location) IsZero() bool {
	return l.Raw == "" && l.Start == 0 && l.End == 0
}

// Record is one parsed clipping. Raw fields retain the source text so callers
// can always reconstruct what the device actually wrote.
type Record struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`

	// Book identity
	Title     string `json:"title"`
	TitleRaw  string `json:"title_raw,omitempty"`
	Author    string `json:"author"`
	AuthorRaw string `json:"author_raw,omitempty"`

	// Body
	Content    string `json:"content"`
	ContentRaw string `json:"content_raw,omitempty"`

	// Position
	Page     int      `json:"page,omitempty"`
	Location Location `json:"location"`

	// Timestamp
	Date    time.Time `json:"date,omitempty"`
	DateRaw string    `json:"date_raw,omitempty"`

	Language string `json:"language,omitempty"`

	// Cross-record links
	Note              string   `json:"note,omitempty"`
	LinkedNoteID      string   `json:"linked_note_id,omitempty"`
	LinkedHighlightID string   `json:"linked_highlight_id,omitempty"`
	Tags              []string `json:"tags,omitempty"`
	IsTagOnly         bool     `json:"is_tag_only,omitempty"`

	// Content stats
	WordCount int `json:"word_count"`
	CharCount int `json:"char_count"`

	// Parse-time observations
	WasCleaned     bool `json:"was_cleaned,omitempty"`
	IsEmpty        bool `json:"is_empty,omitempty"`
	IsLimitReached bool `json:"is_limit_reached,omitempty"`
	IsSideloaded   bool `json:"is_sideloaded,omitempty"`

	// Quality annotations
	IsSuspicious        bool             `json:"is_suspicious,omitempty"`
	SuspiciousReason    SuspiciousReason `json:"suspicious_reason,omitempty"`
	PossibleDuplicateOf string           `json:"possible_duplicate_of,omitempty"`

	// Zero-based index of the source block, stable across runs
	BlockIndex int `json:"block_index"`
}

// BookKey groups records that belong to the same book. Title and author are
// compared case-insensitively everywhere.
func (r Record) BookKey() string {
	return strings.ToLower(strings.TrimSpace(r.Title)) + "|" + strings.ToLower(strings.TrimSpace(r.Author))
}

// UnionTags appends the tags from add that existing does not already hold.
// Comparison is case-insensitive; first-seen order and casing win.
func UnionTags(existing, add []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, t := range existing {
		seen[strings.ToLower(t)] = true
	}
	for _, t := range add {
		key := strings.ToLower(t)
		if !seen[key] {
			existing = append(existing, t)
			seen[key] = true
		}
	}
	return existing
}
