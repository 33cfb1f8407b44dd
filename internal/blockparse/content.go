package blockparse

import (
	"regexp"
	"strings"
)

var (
	// "immedi-\nately" or "immedi- ately": lowercase letter, hyphen,
	// whitespace, lowercase letter is a word broken across lines
	hyphenBreak = regexp.MustCompile(`(\p{Ll})-\s+(\p{Ll})`)
	// space runs, newlines excluded
	horizontalRuns = regexp.MustCompile(`[ \t]{2,}`)
	// " ," / " ." artifacts from PDF extraction
	spacedPunct = regexp.MustCompile(`[ \t]+([.,;:!?…])`)
)

// sanitize cleans export artifacts out of content while keeping the line
// structure. The second return reports whether cleanup changed anything
// beyond outer whitespace; the caller keeps the raw form regardless.
func sanitize(raw string) (string, bool) {
	s := hyphenBreak.ReplaceAllString(raw, "$1$2")
	s = strings.ReplaceAll(s, "\t", " ")
	s = horizontalRuns.ReplaceAllString(s, " ")
	s = spacedPunct.ReplaceAllString(s, "$1")

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	cleaned := strings.TrimSpace(strings.Join(lines, "\n"))

	return cleaned, cleaned != strings.TrimSpace(raw)
}
