// Command clipgen writes a synthetic "My Clippings.txt" with sample highlights
// from public domain books, for trying out clipparse and the library.
// Usage: go run cmd/clipgen/main.go [-o path] [-messy]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/mrlokans/clippings"
)

const dateLayout = "Monday, January 2, 2006 3:04:05 PM"

type sampleBook struct {
	title  string
	author string
	quotes []string
}

func main() {
	out := flag.String("o", "My Clippings.txt", "output path")
	messy := flag.Bool("messy", false, "include duplicates, overlaps and malformed blocks for the pipeline to reconcile")
	flag.Parse()

	books := sampleBooks()
	text := render(books, *messy)

	if err := os.WriteFile(*out, []byte(text), 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	for _, b := range books {
		log.Printf("Added: %s by %s (%d highlights)", b.title, b.author, len(b.quotes))
	}

	// Parse what was written so a broken generator never ships a broken sample.
	res, err := clippings.Parse(text, clippings.DefaultOptions())
	if err != nil {
		log.Fatalf("Generated file does not parse: %v", err)
	}
	log.Printf("Wrote %s: %d blocks, %d records, %d duplicates removed, %d merged, %d notes linked",
		*out, res.Metrics.TotalBlocks, len(res.Records),
		res.Metrics.DuplicatesRemoved, res.Metrics.MergedHighlights, res.Metrics.LinkedNotes)
}

func render(books []sampleBook, messy bool) string {
	var b strings.Builder
	added := time.Date(2025, time.March, 7, 9, 0, 0, 0, time.UTC)

	writeBlock := func(lines ...string) {
		for _, line := range lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("==========\n")
	}
	highlight := func(book sampleBook, start, end int, text string) {
		writeBlock(
			fmt.Sprintf("%s (%s)", book.title, book.author),
			fmt.Sprintf("- Your Highlight on Location %d-%d | Added on %s", start, end, added.Format(dateLayout)),
			"",
			text,
		)
		added = added.Add(7 * time.Minute)
	}

	for _, book := range books {
		cursor := 100
		for _, q := range book.quotes {
			span := len(strings.Fields(q))
			highlight(book, cursor, cursor+span, q)
			cursor += span + 25
		}
	}

	// A note inside the first highlight of the first book, so note linking
	// has something to do.
	first := books[0]
	writeBlock(
		fmt.Sprintf("%s (%s)", first.title, first.author),
		fmt.Sprintf("- Your Note on Location 103 | Added on %s", added.Format(dateLayout)),
		"",
		"Stoicism, Classics",
	)
	added = added.Add(7 * time.Minute)

	if messy {
		q := first.quotes[0]
		span := len(strings.Fields(q))

		// Exact re-import of the first highlight.
		highlight(first, 100, 100+span, q)
		// The same passage re-highlighted a little further.
		highlight(first, 100, 100+span+6, q+" So act on it without complaint.")
		// An accidental empty highlight.
		highlight(first, 400, 401, "")
		// A block no device would write.
		writeBlock("just one stray line")
	}

	return b.String()
}

func sampleBooks() []sampleBook {
	return []sampleBook{
		{
			title:  "Meditations",
			author: "Marcus Aurelius",
			quotes: []string{
				"You have power over your mind - not outside events. Realize this, and you will find strength.",
				"The happiness of your life depends upon the quality of your thoughts.",
				"Waste no more time arguing about what a good man should be. Be one.",
				"The soul becomes dyed with the color of its thoughts.",
			},
		},
		{
			title:  "Letters from a Stoic",
			author: "Seneca",
			quotes: []string{
				"We suffer more often in imagination than in reality.",
				"It is not that we have a short time to live, but that we waste a lot of it.",
				"Difficulties strengthen the mind, as labor does the body.",
			},
		},
		{
			title:  "On the Origin of Species",
			author: "Charles Darwin",
			quotes: []string{
				"It is not the strongest of the species that survives, nor the most intelligent that survives. It is the one that is most adaptable to change.",
				"The love for all living creatures is the most noble attribute of man.",
				"There is grandeur in this view of life, with its several powers, having been originally breathed into a few forms or into one.",
			},
		},
		{
			title:  "Pride and Prejudice",
			author: "Jane Austen",
			quotes: []string{
				"It is a truth universally acknowledged, that a single man in possession of a good fortune, must be in want of a wife.",
				"I declare after all there is no enjoyment like reading! How much sooner one tires of any thing than of a book!",
				"Vanity and pride are different things, though the words are often used synonymously. A person may be proud without being vain.",
			},
		},
	}
}
