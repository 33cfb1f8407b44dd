// Package clippings parses Kindle "My Clippings.txt" exports into clean,
// deduplicated, cross-referenced annotation records.
//
// The device appends every highlight, note, bookmark and article clip to one
// growing text file, in whatever language the device UI happens to use, with
// re-highlighted passages and re-imported duplicates left in place. Parse
// takes that file as a single UTF-8 string and runs it through a fixed
// reconciliation pipeline: tokenizing, language detection, per-block parsing,
// date resolution, identity assignment, deduplication, overlap merging, note
// linking, tag extraction and quality flagging.
//
//	res, err := clippings.Parse(text, clippings.DefaultOptions())
//
// The result carries the surviving records in file order together with
// per-block warnings and run metrics. Reading files, rendering output and
// storing records are the caller's business; the pipeline itself keeps no
// state between runs and is safe for concurrent use.
package clippings
