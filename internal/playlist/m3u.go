package playlist

import (
	"bufio"
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"playlistr/internal/filesystem"
)

// maxLineSize bounds a single playlist line when reading.
const maxLineSize = 1024 * 1024

// Playlist is an ordered sequence of entries bound to a file on disk.
type Playlist struct {
	Name    string
	Path    string
	Entries []string
}

// Count returns the number of entries.
func (p *Playlist) Count() int {
	return len(p.Entries)
}

// Write joins entries with "\n" and writes them to path, replacing any
// existing file. No escaping is applied here.
func Write(path string, entries []string) error {
	content := strings.Join(entries, "\n")
	if err := filesystem.WriteFile(path, []byte(content)); err != nil {
		return fmt.Errorf("write playlist: %w", err)
	}
	return nil
}

// Read returns the lines of the playlist at path, in file order. Only the line
// terminator ("\n" or "\r\n") is removed, and a final newline does not produce
// an extra empty entry.
//
// Write followed by Read returns the original entries unless the last entry
// is empty or ends in "\r": a trailing empty entry is dropped (so [""] reads
// back as []) and a trailing "\r" on the final line is stripped. Escaped
// entries never hit either case.
//
// A single line may be at most maxLineSize (1 MiB); longer lines fail with
// bufio.ErrTooLong.
func Read(path string) ([]string, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read playlist: %w", err)
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)

	entries := []string{}
	for sc.Scan() {
		entries = append(entries, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read playlist %s: %w", path, err)
	}
	return entries, nil
}

// Load reads the playlist at path into a Playlist named after the file.
func Load(path string) (*Playlist, error) {
	entries, err := Read(path)
	if err != nil {
		return nil, err
	}
	return &Playlist{
		Name:    strings.TrimSuffix(filepath.Base(path), Extension),
		Path:    path,
		Entries: entries,
	}, nil
}

// Save writes p.Entries to p.Path.
func (p *Playlist) Save() error {
	return Write(p.Path, p.Entries)
}
