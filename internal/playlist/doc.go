// Package playlist reads and writes flat playlist files and produces their
// entries from directory listings.
//
// A playlist file is plain text with one entry per line, lines joined by a
// single "\n", no header and no trailing metadata. An entry is an opaque path
// string. Paths taken from a directory listing are escaped with [EscapePath]
// before they are written, so an entry never contains a literal newline.
//
// The package provides:
//   - [EscapePath]: percent-encodes control characters and square brackets
//   - [ListDirectory]: immediate entries of a directory, byte-wise sorted
//   - [NameForDirectory]: the "<basename>.m3u8" file name for a directory
//   - [Write] and [Read]: serialize and parse playlist files
//
// Failures are reported with the sentinel errors in errors.go wrapped in
// context, or with the underlying *fs.PathError for I/O failures.
package playlist
