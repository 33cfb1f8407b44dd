package clippings

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mrlokans/clippings/entities"
	"github.com/mrlokans/clippings/internal/blockparse"
	"github.com/mrlokans/clippings/internal/dates"
	"github.com/mrlokans/clippings/internal/dedupe"
	"github.com/mrlokans/clippings/internal/identity"
	"github.com/mrlokans/clippings/internal/lang"
	"github.com/mrlokans/clippings/internal/merge"
	"github.com/mrlokans/clippings/internal/notelink"
	"github.com/mrlokans/clippings/internal/quality"
	"github.com/mrlokans/clippings/internal/tags"
	"github.com/mrlokans/clippings/internal/textnorm"
	"github.com/mrlokans/clippings/internal/tokenizer"
)

// ErrInvalidOptions reports a structurally invalid Options value. The
// wrapped message carries the validation detail.
var ErrInvalidOptions = errors.New("invalid options")

// Result is the complete outcome of one pipeline run: the surviving records
// in file order, the warnings for blocks that could not be parsed, and the
// run metrics. Each run gets a fresh session id.
type Result struct {
	SessionID string             `json:"session_id"`
	Records   []entities.Record  `json:"records"`
	Warnings  []entities.Warning `json:"warnings,omitempty"`
	Metrics   entities.Metrics   `json:"metrics"`
}

// Parse runs the reconciliation pipeline over the contents of one clippings
// file. Malformed blocks become warnings, questionable records get flags, and
// nothing short of invalid options makes the call fail.
func Parse(text string, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	started := time.Now()
	res := &Result{SessionID: uuid.NewString()}

	blocks, scanErr := collectBlocks(textnorm.Normalize(text))
	if scanErr != nil {
		logger.Warn("tokenizer stopped early, parsing what was read",
			zap.Error(scanErr), zap.Int("blocks", len(blocks)))
	}
	res.Metrics.TotalBlocks = len(blocks)

	active, activeCode, datesOn := resolveLanguage(opts.Language, blocks, logger)
	res.Metrics.DetectedLanguage = activeCode

	records := make([]entities.Record, 0, len(blocks))
	for _, b := range blocks {
		rec, warning := blockparse.Parse(b.Lines, b.Index, active)
		if warning != nil {
			res.Warnings = append(res.Warnings, *warning)
			continue
		}
		rec.Language = activeCode
		if datesOn && rec.DateRaw != "" {
			if t, ok := dates.Parse(rec.DateRaw, active); ok {
				rec.Date = t
			}
		}
		rec.ID = identity.MakeID(string(rec.Kind), rec.Title, rec.Location.Raw, rec.Content)
		records = append(records, *rec)
	}
	res.Metrics.ParsedBlocks = len(records)
	res.Metrics.SkippedBlocks = len(res.Warnings)
	logger.Debug("blocks parsed",
		zap.Int("total", res.Metrics.TotalBlocks),
		zap.Int("parsed", res.Metrics.ParsedBlocks),
		zap.String("language", activeCode))

	records, res.Metrics.EmptyRemoved = dropEmpty(records)

	var dupes int
	records, dupes = dedupe.Run(records, opts.RemoveDuplicates)
	if opts.RemoveDuplicates {
		res.Metrics.DuplicatesRemoved = dupes
	} else if dupes > 0 {
		logger.Debug("duplicates flagged, not removed", zap.Int("detected", dupes))
	}

	records, res.Metrics.MergedHighlights = merge.Run(records, opts.MergeOverlapping)
	records, res.Metrics.LinkedNotes = notelink.Run(records)

	if opts.ExtractTags {
		records, res.Metrics.NotesConsumed = tags.Run(records, tags.Case(opts.TagCase))
	}

	records = quality.Run(records)

	res.Records = applyFilters(records, opts)
	res.Metrics.ParseTime = time.Since(started)

	logger.Info("clippings parsed",
		zap.String("session_id", res.SessionID),
		zap.String("language", res.Metrics.DetectedLanguage),
		zap.Int("total_blocks", res.Metrics.TotalBlocks),
		zap.Int("parsed_blocks", res.Metrics.ParsedBlocks),
		zap.Int("empty_removed", res.Metrics.EmptyRemoved),
		zap.Int("duplicates_removed", res.Metrics.DuplicatesRemoved),
		zap.Int("merged_highlights", res.Metrics.MergedHighlights),
		zap.Int("linked_notes", res.Metrics.LinkedNotes),
		zap.Int("records", len(res.Records)),
		zap.Duration("took", res.Metrics.ParseTime))
	return res, nil
}

// ParseReader reads r to the end and parses the contents. The pipeline
// itself does no I/O; this is a convenience for callers holding a file.
func ParseReader(r io.Reader, opts Options) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read clippings: %w", err)
	}
	return Parse(string(data), opts)
}

func collectBlocks(text string) ([]tokenizer.Block, error) {
	sc := tokenizer.NewScanner(text)
	var blocks []tokenizer.Block
	for sc.Scan() {
		blocks = append(blocks, sc.Block())
	}
	return blocks, sc.Err()
}

// resolveLanguage turns the requested language option into a keyword table.
// Auto detection samples the metadata lines of the leading blocks. An
// unknown explicit code keeps the parse going with the default table but
// disables date parsing, since no layout list can be trusted for it.
func resolveLanguage(requested string, blocks []tokenizer.Block, logger *zap.Logger) (*lang.Language, string, bool) {
	requested = strings.TrimSpace(requested)
	if strings.EqualFold(requested, LanguageAuto) {
		l := lang.Detect(metadataSample(blocks))
		return l, l.Code, true
	}
	if l, ok := lang.Lookup(requested); ok {
		return l, l.Code, true
	}
	logger.Warn("unsupported language code, parsing leniently without dates",
		zap.String("language", requested))
	return lang.Default(), requested, false
}

func metadataSample(blocks []tokenizer.Block) []string {
	n := min(len(blocks), lang.DetectSampleSize)
	sample := make([]string, 0, n)
	for _, b := range blocks[:n] {
		if len(b.Lines) > 1 {
			sample = append(sample, b.Lines[1])
		}
	}
	return sample
}

// dropEmpty removes records whose content vanished in sanitization.
// Bookmarks and limit-reached placeholders never carry the IsEmpty mark, so
// they always pass through.
func dropEmpty(records []entities.Record) ([]entities.Record, int) {
	kept := records[:0]
	removed := 0
	for _, r := range records {
		if r.IsEmpty {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	return kept, removed
}
