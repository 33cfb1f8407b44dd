package merge

import "strings"

// punctCutset is trimmed from word edges before comparison. Interior
// apostrophes and hyphens are part of the word.
const punctCutset = ".,;:!?\"'()[]{}<>«»„“”‘’…—–-"

// Jaccard computes word-set similarity in [0, 1]: the size of the
// intersection over the size of the union. Case and surrounding punctuation
// do not count.
func Jaccard(a, b string) float64 {
	wa, wb := wordSet(a), wordSet(b)
	if len(wa) == 0 && len(wb) == 0 {
		return 1
	}
	if len(wa) == 0 || len(wb) == 0 {
		return 0
	}

	intersection := 0
	for w := range wa {
		if wb[w] {
			intersection++
		}
	}
	union := len(wa) + len(wb) - intersection
	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, f := range strings.Fields(strings.ToLower(s)) {
		if w := strings.Trim(f, punctCutset); w != "" {
			set[w] = true
		}
	}
	return set
}
