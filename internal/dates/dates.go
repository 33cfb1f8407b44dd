// Package dates resolves the localized "Added on ..." timestamps found on
// clipping metadata lines.
package dates

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/mrlokans/clippings/internal/lang"
)

// Parse turns a raw date string into a time. The active language's layouts
// are tried first, then every other language's (exports can mix languages
// when the device locale changed mid-file), then a generic parser for
// numeric forms. ok=false means no recognizable date; the caller keeps the
// raw string regardless, so nothing is lost.
func Parse(raw string, l *lang.Language) (time.Time, bool) {
	cleaned := normalize(raw)
	if cleaned == "" {
		return time.Time{}, false
	}

	if t, ok := tryLanguage(cleaned, l); ok {
		return t, true
	}
	for _, other := range lang.Supported() {
		if other.Code == l.Code {
			continue
		}
		if t, ok := tryLanguage(cleaned, other); ok {
			return t, true
		}
	}

	if t, err := dateparse.ParseAny(cleaned); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func tryLanguage(cleaned string, l *lang.Language) (time.Time, bool) {
	candidate := normalize(l.TranslateDateNames(cleaned))
	for _, layout := range l.DateLayouts {
		if t, err := time.Parse(layout, candidate); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// normalize collapses whitespace runs so layout matching does not depend on
// how the device padded the line.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
