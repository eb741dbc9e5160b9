package filesystem

import (
	"os"
	"time"

	"playlistr/internal/logging"
)

// DefaultFileMode is the permission used for newly created playlist files.
const DefaultFileMode os.FileMode = 0o644

// ReadDir returns the immediate entries of dir in the order the OS reports them.
func ReadDir(dir string) ([]os.DirEntry, error) {
	start := time.Now()
	entries, err := os.ReadDir(dir)
	observe(OpReadDir, time.Since(start).Seconds(), err)
	if err == nil {
		logging.Debug("readdir %s: %d entries in %v", dir, len(entries), time.Since(start))
	}
	return entries, err
}

// ReadFile returns the full contents of path.
func ReadFile(path string) ([]byte, error) {
	start := time.Now()
	data, err := os.ReadFile(path)
	observe(OpRead, time.Since(start).Seconds(), err)
	if err == nil {
		logging.Debug("read %s: %d bytes in %v", path, len(data), time.Since(start))
	}
	return data, err
}

// WriteFile writes data to path, creating it or truncating an existing file.
func WriteFile(path string, data []byte) error {
	start := time.Now()
	err := os.WriteFile(path, data, DefaultFileMode)
	observe(OpWrite, time.Since(start).Seconds(), err)
	if err == nil {
		logging.Debug("write %s: %d bytes in %v", path, len(data), time.Since(start))
	}
	return err
}

// Stat returns file info for path, following symlinks.
func Stat(path string) (os.FileInfo, error) {
	start := time.Now()
	info, err := os.Stat(path)
	observe(OpStat, time.Since(start).Seconds(), err)
	return info, err
}
