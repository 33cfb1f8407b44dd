package blockparse

import (
	"regexp"
	"strings"

	"github.com/mrlokans/clippings/entities"
)

// bookExtensions are file suffixes that betray a sideloaded book: the device
// had no embedded metadata and used the filename as the title.
var bookExtensions = []string{
	".fb2.zip",
	".tar.gz",
	".fb2",
	".epub",
	".pdf",
	".txt",
	".docx",
	".doc",
	".mobi",
	".azw3",
	".azw",
	".djvu",
}

var (
	// "(z-lib.org)" style remnants download sites append to filenames
	libraryRemnant = regexp.MustCompile(`(?i)\s*\((?:z-?lib(?:rary)?(?:\.org)?|b-ok(?:\.org)?)\)`)
	// "2nd Edition" / "(3rd ed.)" markers
	editionMarker = regexp.MustCompile(`(?i)\s*[(\[]?\d+(?:st|nd|rd|th)\s+(?:edition|ed\.)[)\]]?`)
	// a whole author group that is only an edition marker
	editionAuthor = regexp.MustCompile(`(?i)^\d+(?:st|nd|rd|th)\s+(?:edition|ed\.)$`)
	// bracket shells left over after other cleanup
	emptyBrackets = regexp.MustCompile(`\s*(?:\(\s*\)|\[\s*\])`)
	// "01 - ", "12. " style list prefixes
	numericPrefix = regexp.MustCompile(`^\d+\s*[-_.]+\s+`)

	doubleSpaces = regexp.MustCompile(`\s{2,}`)
)

// parseTitle splits "Title (Author)". The author group is found by scanning
// from the end for a balanced parenthesis pair, so authors containing
// parentheses survive. Lines without an author are usually filenames, so
// that path additionally scrubs filename noise. Underscores are kept; they
// are part of how the book was named.
func parseTitle(titleLine string) (title, author, authorRaw string, sideloaded bool) {
	sideloaded = hasBookExtension(titleLine)
	working := strings.TrimSpace(stripBookExtension(titleLine))
	// Strip library remnants before the author scan or "(z-lib.org)" would
	// pass for an author group.
	working = strings.TrimSpace(libraryRemnant.ReplaceAllString(working, ""))

	if t, a, ok := splitAuthor(working); ok && !editionAuthor.MatchString(a) {
		return t, a, a, sideloaded
	}

	cleaned := cleanFilenameNoise(working)
	if cleaned == "" {
		cleaned = working
	}
	return cleaned, entities.UnknownAuthor, "", sideloaded
}

func splitAuthor(line string) (title, author string, ok bool) {
	if !strings.HasSuffix(line, ")") {
		return "", "", false
	}
	depth := 0
	for i := len(line) - 1; i >= 0; i-- {
		switch line[i] {
		case ')':
			depth++
		case '(':
			depth--
			if depth == 0 {
				title = strings.TrimSpace(line[:i])
				author = strings.TrimSpace(line[i+1 : len(line)-1])
				if title == "" || author == "" {
					return "", "", false
				}
				return title, author, true
			}
		}
	}
	return "", "", false
}

func hasBookExtension(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, ext := range bookExtensions {
		if hasSuffixFold(trimmed, ext) {
			return true
		}
	}
	return false
}

func stripBookExtension(line string) string {
	trimmed := strings.TrimSpace(line)
	for _, ext := range bookExtensions {
		if hasSuffixFold(trimmed, ext) {
			return trimmed[:len(trimmed)-len(ext)]
		}
	}
	return trimmed
}

func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}

func cleanFilenameNoise(s string) string {
	s = libraryRemnant.ReplaceAllString(s, "")
	s = editionMarker.ReplaceAllString(s, "")
	s = emptyBrackets.ReplaceAllString(s, "")
	s = numericPrefix.ReplaceAllString(s, "")
	s = doubleSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
