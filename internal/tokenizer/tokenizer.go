// Package tokenizer splits normalized clippings text into raw blocks.
//
// A block is everything between two separator lines. Blocks keep their
// original lines untouched; nothing here interprets them.
package tokenizer

import (
	"bufio"
	"strings"
)

// Separator is the literal line Kindle writes between clippings.
const Separator = "=========="

// Block is one raw segment of the source file. Index is the 0-based rank of
// the segment among all raw segments, including blank ones that were dropped,
// so diagnostics always reference stable positions.
type Block struct {
	Index int
	Lines []string
	Raw   string
}

// Scanner yields blocks lazily, one Scan call at a time. It cannot be
// restarted; re-tokenize from the original string if you need another pass.
type Scanner struct {
	sc    *bufio.Scanner
	index int
	block Block
	done  bool
}

func NewScanner(text string) *Scanner {
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Scanner{sc: sc}
}

// Scan advances to the next non-blank block. It returns false when the input
// is exhausted.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}

	var lines []string
	for s.sc.Scan() {
		line := s.sc.Text()

		if line == Separator {
			index := s.index
			s.index++
			if !blank(lines) {
				s.block = Block{Index: index, Lines: lines, Raw: strings.Join(lines, "\n")}
				return true
			}
			lines = nil
			continue
		}

		lines = append(lines, line)
	}

	// Trailing segment when the file does not end with a separator.
	s.done = true
	if !blank(lines) {
		s.block = Block{Index: s.index, Lines: lines, Raw: strings.Join(lines, "\n")}
		return true
	}
	return false
}

// Block returns the block produced by the last successful Scan.
func (s *Scanner) Block() Block {
	return s.block
}

// Err reports a read failure, e.g. a single line exceeding the scanner
// buffer. Callers treat it as end of input rather than aborting the batch.
func (s *Scanner) Err() error {
	return s.sc.Err()
}

// All collects every block eagerly. Convenience for small inputs and tests.
func All(text string) []Block {
	var blocks []Block
	sc := NewScanner(text)
	for sc.Scan() {
		blocks = append(blocks, sc.Block())
	}
	return blocks
}

func blank(lines []string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}
	return true
}
