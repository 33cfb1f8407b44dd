package clippings

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"

	"github.com/mrlokans/clippings/entities"
)

// LanguageAuto asks the pipeline to detect the input language from the
// metadata lines of the leading blocks.
const LanguageAuto = "auto"

// TagCase selects how extracted tags are cased.
type TagCase string

const (
	TagCaseOriginal TagCase = "original"
	TagCaseLower    TagCase = "lower"
	TagCaseUpper    TagCase = "upper"
)

// Options configure a single pipeline run.
type Options struct {
	// Language is LanguageAuto or a fixed code such as "en" or "de". An
	// unknown code does not abort the run: blocks are parsed leniently with
	// the default keyword table and dates stay unset.
	Language string

	// RemoveDuplicates collapses records sharing an id down to the last
	// occurrence. When false the earlier occurrences are flagged instead.
	RemoveDuplicates bool

	// MergeOverlapping collapses re-highlighted passages into the longer
	// reading. When false the overlaps are flagged instead.
	MergeOverlapping bool

	// ExtractTags reinterprets tag-list notes as tags on the linked
	// highlight.
	ExtractTags bool

	// TagCase is applied to extracted tags.
	TagCase TagCase

	// Output shaping, applied after reconciliation in this order: kind
	// exclusions, book allow/deny lists (case-insensitive exact title
	// match), minimum content length (highlights and clips only), then
	// HighlightsOnly.
	HighlightsOnly   bool
	MinContentLength int
	ExcludeTypes     []entities.Kind
	OnlyBooks        []string
	ExcludeBooks     []string

	// Logger receives stage-level debug output and one summary line per
	// run. nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns the configuration the reference frontend uses:
// auto-detected language, duplicates and overlaps collapsed, notes kept as
// notes, no output filtering.
func DefaultOptions() Options {
	return Options{
		Language:         LanguageAuto,
		RemoveDuplicates: true,
		MergeOverlapping: true,
		TagCase:          TagCaseOriginal,
	}
}

// withDefaults fills the fields a zero value leaves ambiguous.
func (o Options) withDefaults() Options {
	if o.Language == "" {
		o.Language = LanguageAuto
	}
	if o.TagCase == "" {
		o.TagCase = TagCaseOriginal
	}
	return o
}

// Validate reports structurally invalid options. Data-dependent conditions,
// like an unknown language code or a book filter that matches nothing, are
// handled leniently at parse time instead.
func (o Options) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.TagCase,
			validation.In(TagCaseOriginal, TagCaseLower, TagCaseUpper)),
		validation.Field(&o.MinContentLength, validation.Min(0)),
		validation.Field(&o.ExcludeTypes,
			validation.Each(validation.In(
				entities.KindHighlight,
				entities.KindNote,
				entities.KindBookmark,
				entities.KindClip,
			))),
	)
}
