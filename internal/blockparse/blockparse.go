// Package blockparse turns one raw block into a candidate record.
//
// A block is title line, metadata line, then free-form content. Anything
// that does not fit produces a warning instead of a record; malformed data
// never aborts a run.
package blockparse

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mrlokans/clippings/entities"
	"github.com/mrlokans/clippings/internal/lang"
)

const snippetLen = 80

// numberAfter matches an integer or integer range directly after a keyword,
// e.g. " 64-64" or " 307". Text between the keyword and the first digit
// (other than spaces) means the keyword had no number.
var numberAfter = regexp.MustCompile(`^\s*(\d+)(?:\s*-\s*(\d+))?`)

// Parse decomposes a block's lines into a record. The returned warning is
// non-nil exactly when the record is nil.
func Parse(lines []string, index int, l *lang.Language) (*entities.Record, *entities.Warning) {
	if len(lines) < 2 {
		return nil, warn(index, "block has fewer than two lines", lines)
	}

	titleLine := strings.TrimSpace(lines[0])
	if titleLine == "" {
		return nil, warn(index, "empty title line", lines)
	}

	metaLine := strings.TrimSpace(lines[1])
	if !strings.HasPrefix(metaLine, "-") {
		return nil, warn(index, "metadata line does not start with '-'", lines)
	}

	title, author, authorRaw, sideloaded := parseTitle(titleLine)

	contentRaw := strings.Join(lines[2:], "\n")
	content, wasCleaned := sanitize(contentRaw)

	rec := &entities.Record{
		Kind:         detectKind(metaLine, l),
		Title:        title,
		TitleRaw:     titleLine,
		Author:       author,
		AuthorRaw:    authorRaw,
		Content:      content,
		ContentRaw:   contentRaw,
		Page:         parsePage(metaLine, l),
		Location:     parseLocation(metaLine, l),
		DateRaw:      parseDateRaw(metaLine, l),
		WasCleaned:   wasCleaned,
		IsSideloaded: sideloaded,
		WordCount:    len(strings.Fields(content)),
		CharCount:    utf8.RuneCountInString(content),
		BlockIndex:   index,
	}

	if lang.LimitReached(content) {
		rec.IsLimitReached = true
	} else if content == "" && rec.Kind != entities.KindBookmark {
		// Bookmarks legitimately have no content.
		rec.IsEmpty = true
	}

	return rec, nil
}

// detectKind picks the entry type from the first matching keyword, checking
// highlight, note, bookmark, then clip. Devices occasionally drop the type
// phrase entirely, so an unmatched line defaults to a highlight.
func detectKind(metaLine string, l *lang.Language) entities.Kind {
	lower := strings.ToLower(metaLine)
	for _, kw := range l.Keywords.Highlight {
		if strings.Contains(lower, kw) {
			return entities.KindHighlight
		}
	}
	for _, kw := range l.Keywords.Note {
		if strings.Contains(lower, kw) {
			return entities.KindNote
		}
	}
	for _, kw := range l.Keywords.Bookmark {
		if strings.Contains(lower, kw) {
			return entities.KindBookmark
		}
	}
	for _, kw := range l.Keywords.Clip {
		if strings.Contains(lower, kw) {
			return entities.KindClip
		}
	}
	return entities.KindHighlight
}

func parsePage(metaLine string, l *lang.Language) int {
	rest, ok := afterKeyword(metaLine, l.Keywords.Page)
	if !ok {
		return 0
	}
	m := numberAfter.FindStringSubmatch(rest)
	if m == nil {
		return 0
	}
	page, _ := strconv.Atoi(m[1])
	return page
}

func parseLocation(metaLine string, l *lang.Language) entities.Location {
	rest, ok := afterKeyword(metaLine, l.Keywords.Location)
	if !ok {
		return entities.Location{}
	}
	m := numberAfter.FindStringSubmatch(rest)
	if m == nil {
		return entities.Location{}
	}

	start, _ := strconv.Atoi(m[1])
	if m[2] == "" {
		return entities.Location{Raw: m[1], Start: start}
	}

	end, _ := strconv.Atoi(m[2])
	if end < start {
		end = expandTruncatedEnd(start, m[2])
	}
	if end < start {
		start, end = end, start
	}
	return entities.Location{
		Raw:   strconv.Itoa(start) + "-" + strconv.Itoa(end),
		Start: start,
		End:   end,
	}
}

// expandTruncatedEnd recovers ranges that old firmware shortened, writing
// "1714-15" for 1714-1715. The end inherits the start's leading digits.
func expandTruncatedEnd(start int, endDigits string) int {
	end, _ := strconv.Atoi(endDigits)
	mod := 1
	for range endDigits {
		mod *= 10
	}
	expanded := start - start%mod + end
	if expanded < start {
		expanded += mod
	}
	return expanded
}

func parseDateRaw(metaLine string, l *lang.Language) string {
	rest, ok := afterKeyword(metaLine, l.Keywords.Added)
	if !ok {
		return ""
	}
	// Fields come in free order; keep only this field's segment.
	if cut := strings.IndexByte(rest, '|'); cut >= 0 {
		rest = rest[:cut]
	}
	return strings.TrimSpace(rest)
}

// afterKeyword returns the text following the first keyword present in the
// line. Matching is case-insensitive, keywords are tried in table order.
func afterKeyword(line string, keywords []string) (string, bool) {
	lower := strings.ToLower(line)
	// Lowercasing almost never changes byte offsets for the languages we
	// carry; if it does, slice the lowered copy instead of guessing.
	src := line
	if len(lower) != len(line) {
		src = lower
	}
	for _, kw := range keywords {
		if idx := strings.Index(lower, kw); idx >= 0 {
			return src[idx+len(kw):], true
		}
	}
	return "", false
}

func warn(index int, message string, lines []string) *entities.Warning {
	return &entities.Warning{
		Kind:       entities.WarningUnknownFormat,
		BlockIndex: index,
		Message:    message,
		Snippet:    truncate(strings.Join(lines, "\n"), snippetLen),
	}
}

func truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
