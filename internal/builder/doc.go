// Package builder runs the two playlistr operations on top of the playlist
// and interleave packages.
//
// Create turns each input directory into "<basename>.m3u8" in the output
// directory. Its entries are the directory's sorted listing with every path
// percent-encoded. Directories are processed in order and the first failure
// stops the batch; playlists already written stay on disk.
//
// Combine reads two or more playlists and writes their proportional
// interleaving to a single output file.
//
// Both operations record run metrics and log one INFO line per playlist
// written.
package builder
