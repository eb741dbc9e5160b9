// Command playlistr builds m3u8 playlists from directories and merges
// playlists into one.
//
// Usage:
//
//	playlistr <command> [arguments]
//
// Commands:
//
//	create <DIRECTORY>...
//	        For each directory, write <basename>.m3u8 listing its immediate
//	        entries in sorted order, one path per line. Control characters
//	        and square brackets in paths are percent-encoded. The first
//	        directory that fails stops the batch.
//
//	combine <PLAYLIST> <PLAYLIST>...
//	        Read two or more playlists and write combined.m3u8, in which
//	        every input is spread evenly in proportion to its length while
//	        keeping its own order.
//
//	version Print version information.
//
//	help    Show usage.
//
// Environment:
//
//	PLAYLIST_OUTPUT_DIR    - Directory for generated playlists (default: .)
//	PLAYLIST_COMBINED_NAME - File name written by combine (default: combined.m3u8)
//	METRICS_TEXTFILE       - Prometheus textfile written after every run
//	METRICS_ENABLED        - Set to false to skip the textfile (default: true)
//	LOG_LEVEL, DEBUG       - Log verbosity
//
// For every playlist written, one line "<playlist>\t<entries>\t<sources>" is
// printed to stdout; sources are comma-separated. Logs go to stderr.
//
// Exit status is 0 on success, 1 when a run fails, and 2 on usage errors.
package main
