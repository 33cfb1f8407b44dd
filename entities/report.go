package entities

import "time"

type WarningKind string

const (
	WarningUnknownFormat WarningKind = "unknown_format"
)

// Warning describes a block that could not be parsed. Warnings never abort a
// run; the block is skipped and reported here instead.
type Warning struct {
	Kind       WarningKind `json:"kind"`
	BlockIndex int         `json:"block_index"`
	Message    string      `json:"message"`
	Snippet    string      `json:"snippet,omitempty"`
}

// Metrics summarizes one parse run.
type Metrics struct {
	TotalBlocks       int           `json:"total_blocks"`
	ParsedBlocks      int           `json:"parsed_blocks"`
	SkippedBlocks     int           `json:"skipped_blocks"`
	EmptyRemoved      int           `json:"empty_removed"`
	DuplicatesRemoved int           `json:"duplicates_removed"`
	MergedHighlights  int           `json:"merged_highlights"`
	LinkedNotes       int           `json:"linked_notes"`
	NotesConsumed     int           `json:"notes_consumed"`
	DetectedLanguage  string        `json:"detected_language"`
	ParseTime         time.Duration `json:"parse_time"`
}
