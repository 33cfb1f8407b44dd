// Package identity derives stable, content-addressed record ids.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// contentPrefixLen bounds how much content participates in the hash. Edits
// beyond the prefix do not change a record's identity, which keeps ids stable
// when the device re-truncates long highlights.
const contentPrefixLen = 50

// displayLen is the number of hex characters exposed to callers.
const displayLen = 16

// MakeID hashes what a record is rather than where it was seen: kind, book
// title (case- and normalization-insensitive), position, and the leading
// content. Re-importing the same clipping always yields the same id.
func MakeID(kind, title, locationRaw, content string) string {
	key := kind + ":" + strings.ToLower(norm.NFC.String(title)) + ":" + locationRaw + ":" + prefix(content, contentPrefixLen)
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])[:displayLen]
}

// prefix returns the first n runes of s.
func prefix(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
