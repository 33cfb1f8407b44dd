// clipparse is a reference frontend for the clippings library: it reads one
// "My Clippings.txt" file, runs the reconciliation pipeline, and prints a
// summary or the full record set as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/mrlokans/clippings"
	"github.com/mrlokans/clippings/entities"
)

func run(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("no input file; usage: clipparse [options] \"My Clippings.txt\"")
	}

	logger, err := newLogger(cmd.Bool("debug"))
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	opts := clippings.DefaultOptions()
	opts.Language = cmd.String("language")
	opts.RemoveDuplicates = !cmd.Bool("keep-duplicates")
	opts.MergeOverlapping = !cmd.Bool("no-merge")
	opts.ExtractTags = cmd.Bool("extract-tags")
	opts.TagCase = clippings.TagCase(cmd.String("tag-case"))
	opts.HighlightsOnly = cmd.Bool("highlights-only")
	opts.MinContentLength = int(cmd.Int("min-length"))
	opts.OnlyBooks = cmd.StringSlice("only-book")
	opts.ExcludeBooks = cmd.StringSlice("exclude-book")
	for _, name := range cmd.StringSlice("exclude-type") {
		opts.ExcludeTypes = append(opts.ExcludeTypes, entities.Kind(name))
	}
	opts.Logger = logger

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	res, err := clippings.Parse(string(data), opts)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	printSummary(res)
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func printSummary(res *clippings.Result) {
	m := res.Metrics

	books := 0
	seen := make(map[string]bool)
	for _, r := range res.Records {
		if !seen[r.Title] {
			seen[r.Title] = true
			books++
		}
	}

	fmt.Printf("Parsed %d of %d blocks (%s, %s)\n",
		m.ParsedBlocks, m.TotalBlocks, m.DetectedLanguage, m.ParseTime.Round(time.Millisecond))
	fmt.Printf("  records:            %d across %d books\n", len(res.Records), books)
	fmt.Printf("  empty removed:      %d\n", m.EmptyRemoved)
	fmt.Printf("  duplicates removed: %d\n", m.DuplicatesRemoved)
	fmt.Printf("  merged highlights:  %d\n", m.MergedHighlights)
	fmt.Printf("  linked notes:       %d\n", m.LinkedNotes)
	if m.NotesConsumed > 0 {
		fmt.Printf("  notes consumed:     %d\n", m.NotesConsumed)
	}
	for _, w := range res.Warnings {
		fmt.Printf("  warning: block %d: %s\n", w.BlockIndex, w.Message)
	}
}

func main() {
	cmd := &cli.Command{
		Name:      "clipparse",
		Usage:     "Parse a Kindle \"My Clippings.txt\" export into clean annotation records",
		ArgsUsage: "<clippings file>",
		Action:    run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "language",
				Aliases: []string{"l"},
				Usage:   "Input language code, or \"auto\" to detect",
				Value:   clippings.LanguageAuto,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the full result as JSON instead of a summary",
			},
			&cli.BoolFlag{
				Name:  "keep-duplicates",
				Usage: "Flag exact duplicates instead of removing them",
			},
			&cli.BoolFlag{
				Name:  "no-merge",
				Usage: "Flag overlapping highlights instead of merging them",
			},
			&cli.BoolFlag{
				Name:  "extract-tags",
				Usage: "Turn tag-list notes into tags on the linked highlight",
			},
			&cli.StringFlag{
				Name:  "tag-case",
				Usage: "Casing for extracted tags: original, lower or upper",
				Value: string(clippings.TagCaseOriginal),
			},
			&cli.BoolFlag{
				Name:  "highlights-only",
				Usage: "Keep only highlight records in the output",
			},
			&cli.IntFlag{
				Name:  "min-length",
				Usage: "Drop highlights and clips shorter than this many characters",
			},
			&cli.StringSliceFlag{
				Name:  "exclude-type",
				Usage: "Record kind to drop (highlight, note, bookmark, clip); repeatable",
			},
			&cli.StringSliceFlag{
				Name:  "only-book",
				Usage: "Keep only records from this book title; repeatable",
			},
			&cli.StringSliceFlag{
				Name:  "exclude-book",
				Usage: "Drop records from this book title; repeatable",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Verbose, human-readable logging",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "clipparse:", err)
		os.Exit(1)
	}
}
