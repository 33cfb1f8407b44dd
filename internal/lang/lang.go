// Package lang holds the per-language keyword tables used to read Kindle
// metadata lines, and picks a working language for a whole file.
//
// Tables are embedded from data/languages.yaml. Adding a language is a data
// change, not a code change.
package lang

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed data/languages.yaml
var rawTables []byte

// DetectSampleSize is how many leading blocks Detect considers. Files are
// single-language in practice, so a bounded sample keeps detection cheap on
// multi-megabyte exports.
const DetectSampleSize = 50

// KeywordSet groups the metadata-line phrases of one language.
type KeywordSet struct {
	Highlight []string `yaml:"highlight"`
	Note      []string `yaml:"note"`
	Bookmark  []string `yaml:"bookmark"`
	Clip      []string `yaml:"clip"`
	Page      []string `yaml:"page"`
	Location  []string `yaml:"location"`
	Added     []string `yaml:"added"`
}

type Language struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`

	Keywords KeywordSet `yaml:"keywords"`

	// LimitPlaceholders are the lowercase DRM clipping-limit notices the
	// device writes instead of content.
	LimitPlaceholders []string `yaml:"limit_placeholders"`

	// DateLayouts are Go reference-time layouts tried in order.
	DateLayouts []string `yaml:"date_layouts"`

	// Months and Weekdays map lowercase localized names to English ones.
	// Empty for English.
	Months   map[string]string `yaml:"months"`
	Weekdays map[string]string `yaml:"weekdays"`

	detectKeywords []string
	dateNames      *strings.Replacer
}

var (
	loadOnce sync.Once
	ordered  []*Language
	byCode   map[string]*Language
)

func load() {
	loadOnce.Do(func() {
		var doc struct {
			Languages []*Language `yaml:"languages"`
		}
		if err := yaml.Unmarshal(rawTables, &doc); err != nil {
			panic(fmt.Sprintf("lang: embedded languages.yaml: %v", err))
		}
		if len(doc.Languages) == 0 || doc.Languages[0].Code != "en" {
			panic("lang: embedded languages.yaml must list English first")
		}
		ordered = doc.Languages
		byCode = make(map[string]*Language, len(ordered))
		for _, l := range ordered {
			l.compile()
			byCode[l.Code] = l
		}
	})
}

// Supported returns every built-in language in detection priority order.
// Callers must not mutate the returned values.
func Supported() []*Language {
	load()
	return ordered
}

// Lookup resolves an ISO 639-1 code, case-insensitively.
func Lookup(code string) (*Language, bool) {
	load()
	l, ok := byCode[strings.ToLower(strings.TrimSpace(code))]
	return l, ok
}

// Default is the fallback language, English.
func Default() *Language {
	load()
	return ordered[0]
}

// Detect scores each language by counting case-insensitive keyword
// occurrences across the given metadata lines and returns the best match.
// Ties go to the language listed first; Default() when nothing scores.
func Detect(metadataLines []string) *Language {
	load()

	lowered := make([]string, len(metadataLines))
	for i, line := range metadataLines {
		lowered[i] = strings.ToLower(line)
	}

	var best *Language
	bestScore := 0
	for _, l := range ordered {
		score := 0
		for _, line := range lowered {
			for _, kw := range l.detectKeywords {
				score += strings.Count(line, kw)
			}
		}
		if score > bestScore {
			best, bestScore = l, score
		}
	}
	if best == nil {
		return Default()
	}
	return best
}

// TranslateDateNames rewrites localized month and weekday names to English
// so the raw date can be parsed with Go reference layouts.
func (l *Language) TranslateDateNames(raw string) string {
	if l.dateNames == nil {
		return raw
	}
	return l.dateNames.Replace(raw)
}

// LimitReached reports whether content is a DRM clipping-limit placeholder.
// All languages are checked: the notice follows the book's language, which
// can differ from the device language driving the metadata lines.
func LimitReached(content string) bool {
	load()
	c := strings.ToLower(content)
	for _, l := range ordered {
		for _, p := range l.LimitPlaceholders {
			if strings.Contains(c, p) {
				return true
			}
		}
	}
	return false
}

func (l *Language) compile() {
	for _, set := range [][]string{
		l.Keywords.Highlight, l.Keywords.Note, l.Keywords.Bookmark,
		l.Keywords.Clip, l.Keywords.Page, l.Keywords.Location, l.Keywords.Added,
	} {
		for _, kw := range set {
			l.detectKeywords = append(l.detectKeywords, strings.ToLower(kw))
		}
	}

	if len(l.Months)+len(l.Weekdays) == 0 {
		return
	}

	type pair struct{ from, to string }
	var pairs []pair
	add := func(from, to string) {
		pairs = append(pairs, pair{from, to})
		if c := capitalize(from); c != from {
			pairs = append(pairs, pair{c, to})
		}
	}
	for from, to := range l.Months {
		add(from, to)
	}
	for from, to := range l.Weekdays {
		add(from, to)
	}

	// Longer names first so a short name never shadows one it prefixes.
	sort.Slice(pairs, func(i, j int) bool {
		if len(pairs[i].from) != len(pairs[j].from) {
			return len(pairs[i].from) > len(pairs[j].from)
		}
		return pairs[i].from < pairs[j].from
	})

	flat := make([]string, 0, len(pairs)*2)
	for _, p := range pairs {
		flat = append(flat, p.from, p.to)
	}
	l.dateNames = strings.NewReplacer(flat...)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
