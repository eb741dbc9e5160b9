package playlist

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"playlistr/internal/filesystem"
)

// Extension is the file extension of generated playlists.
const Extension = ".m3u8"

// ListDirectory returns the paths of the immediate entries of dir, each
// appended to dir exactly as given, sorted in ascending byte-wise order. Subdirectories are
// listed as entries but not descended into. The first entry whose path is not
// valid UTF-8 aborts the listing with ErrInvalidText.
func ListDirectory(dir string) ([]string, error) {
	info, err := filesystem.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("list directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("list directory %s: %w", dir, ErrNotDirectory)
	}

	entries, err := filesystem.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list directory: %w", err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		p := entryPath(dir, entry.Name())
		if !utf8.ValidString(p) {
			return nil, fmt.Errorf("list directory %s: entry %q: %w", dir, entry.Name(), ErrInvalidText)
		}
		paths = append(paths, p)
	}

	sort.Strings(paths)
	return paths, nil
}

// entryPath appends name to dir without cleaning, so "./music" yields
// "./music/a.mp3" and symlinked ".." components keep their meaning.
func entryPath(dir, name string) string {
	if strings.HasSuffix(dir, string(filepath.Separator)) || strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}

// NameForDirectory returns the playlist file name for dir: its final path
// component plus Extension. Paths without a usable final component, such as
// "/", "." or "..", fail with ErrAbnormalPath.
func NameForDirectory(dir string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("playlist name for empty path: %w", ErrAbnormalPath)
	}

	cleaned := filepath.Clean(dir)
	base := filepath.Base(cleaned)
	if base == "." || base == ".." || strings.ContainsRune(base, filepath.Separator) || base == filepath.VolumeName(cleaned) {
		return "", fmt.Errorf("playlist name for %q: %w", dir, ErrAbnormalPath)
	}
	if !utf8.ValidString(base) {
		return "", fmt.Errorf("playlist name for %q: %w", dir, ErrInvalidText)
	}

	return base + Extension, nil
}
