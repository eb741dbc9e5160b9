package mediatypes

import (
	"path/filepath"
	"strings"
)

// Kind is the coarse category of a playlist entry, derived from its extension.
type Kind string

const (
	// KindAudio represents an audio file.
	KindAudio Kind = "audio"
	// KindVideo represents a video file.
	KindVideo Kind = "video"
	// KindPlaylist represents a playlist file.
	KindPlaylist Kind = "playlist"
	// KindOther represents an unknown extension or an entry without one.
	KindOther Kind = "other"
)

// Kinds lists every Kind, in a stable order.
var Kinds = []Kind{KindAudio, KindVideo, KindPlaylist, KindOther}

// AudioExtensions maps file extensions to whether they are known audio formats.
var AudioExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".ogg":  true,
	".oga":  true,
	".opus": true,
	".m4a":  true,
	".aac":  true,
	".wav":  true,
	".wma":  true,
	".aiff": true,
	".alac": true,
	".ape":  true,
}

// VideoExtensions maps file extensions to whether they are known video formats.
var VideoExtensions = map[string]bool{
	".mp4":  true,
	".mkv":  true,
	".avi":  true,
	".mov":  true,
	".wmv":  true,
	".flv":  true,
	".webm": true,
	".m4v":  true,
	".mpeg": true,
	".mpg":  true,
	".3gp":  true,
	".ts":   true,
}

// PlaylistExtensions maps file extensions to whether they are playlist formats.
var PlaylistExtensions = map[string]bool{
	".m3u":  true,
	".m3u8": true,
	".pls":  true,
	".wpl":  true,
}

// GetKind returns the Kind for a given file extension.
// The extension should be lowercase and include the leading dot (e.g., ".mp3").
// Returns KindOther if the extension is not recognized.
func GetKind(ext string) Kind {
	if AudioExtensions[ext] {
		return KindAudio
	}
	if VideoExtensions[ext] {
		return KindVideo
	}
	if PlaylistExtensions[ext] {
		return KindPlaylist
	}
	return KindOther
}

// Classify returns the Kind of path based on its extension, ignoring case.
func Classify(path string) Kind {
	return GetKind(strings.ToLower(filepath.Ext(path)))
}

// Count tallies the Kind of every path.
func Count(paths []string) map[Kind]int {
	counts := make(map[Kind]int, len(Kinds))
	for _, p := range paths {
		counts[Classify(p)]++
	}
	return counts
}
