// Package textnorm canonicalizes raw clippings text before tokenization.
package textnorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const bom = "\uFEFF"

// Normalize strips a UTF-8 byte order mark, unifies CRLF and bare CR line
// endings to "\n" and applies Unicode NFC so visually identical text compares
// equal across devices.
func Normalize(s string) string {
	s = strings.TrimPrefix(s, bom)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return norm.NFC.String(s)
}
