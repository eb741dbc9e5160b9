// Package mediatypes classifies playlist entries by file extension.
//
// Classification is informational only. Entries are never filtered on their
// kind; the counts feed the per-kind entry metric.
//
// # Kinds
//
//   - audio: .mp3, .flac, .ogg, .opus, .m4a and similar
//   - video: .mp4, .mkv, .webm, .mov and similar
//   - playlist: .m3u, .m3u8, .pls, .wpl
//   - other: anything else, including entries without an extension
package mediatypes
