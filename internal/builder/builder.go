package builder

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"playlistr/internal/interleave"
	"playlistr/internal/logging"
	"playlistr/internal/mediatypes"
	"playlistr/internal/metrics"
	"playlistr/internal/playlist"
)

// DefaultCombinedName is the file name combine writes to.
const DefaultCombinedName = "combined.m3u8"

// Options configures a Builder.
type Options struct {
	// OutputDir receives every generated playlist. Empty means the working
	// directory.
	OutputDir string

	// CombinedName is the file name used by Combine. Empty means
	// DefaultCombinedName.
	CombinedName string
}

// Builder creates and combines playlists.
type Builder struct {
	outputDir    string
	combinedName string
}

// Result describes one playlist written by the Builder.
type Result struct {
	// Sources are the directories or playlists the entries came from.
	Sources  []string
	Playlist *playlist.Playlist
}

// New creates a Builder from opts, applying defaults for empty fields.
func New(opts Options) *Builder {
	b := &Builder{
		outputDir:    opts.OutputDir,
		combinedName: opts.CombinedName,
	}
	if b.outputDir == "" {
		b.outputDir = "."
	}
	if b.combinedName == "" {
		b.combinedName = DefaultCombinedName
	}
	return b
}

// OutputPath returns where a playlist with the given file name is written.
func (b *Builder) OutputPath(name string) string {
	return filepath.Join(b.outputDir, name)
}

// Create writes one playlist per directory, in the order given. It stops at
// the first directory that fails and returns the playlists written before it
// together with the error.
func (b *Builder) Create(dirs []string) ([]Result, error) {
	start := time.Now()
	results := make([]Result, 0, len(dirs))

	for _, dir := range dirs {
		res, err := b.createOne(dir)
		if err != nil {
			metrics.RecordRun(metrics.ModeCreate, time.Since(start), false, failureReason(err))
			return results, err
		}
		results = append(results, res)
	}

	metrics.RecordRun(metrics.ModeCreate, time.Since(start), true, "")
	logging.Info("Created %d playlist(s) in %v", len(results), time.Since(start).Round(time.Millisecond))
	return results, nil
}

func (b *Builder) createOne(dir string) (Result, error) {
	name, err := playlist.NameForDirectory(dir)
	if err != nil {
		return Result{}, err
	}

	paths, err := playlist.ListDirectory(dir)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", dir, err)
	}
	kinds := mediatypes.Count(paths)

	entries := make([]string, len(paths))
	for i, p := range paths {
		entries[i], err = playlist.EscapePath(p)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", dir, err)
		}
	}

	pl := &playlist.Playlist{
		Name:    name[:len(name)-len(playlist.Extension)],
		Path:    b.OutputPath(name),
		Entries: entries,
	}
	if err := pl.Save(); err != nil {
		return Result{}, err
	}

	metrics.RecordPlaylist(metrics.ModeCreate, pl.Count())
	metrics.RecordEntryKinds(kinds)
	logging.Info("Wrote %s (%d entries) from %s", pl.Path, pl.Count(), dir)
	logging.Debug("  %s: %d audio, %d video, %d playlist, %d other", name,
		kinds[mediatypes.KindAudio], kinds[mediatypes.KindVideo],
		kinds[mediatypes.KindPlaylist], kinds[mediatypes.KindOther])
	return Result{Sources: []string{dir}, Playlist: pl}, nil
}

// Combine reads the given playlists and writes their interleaving to the
// combined output file. Sources are interleaved in the order given.
func (b *Builder) Combine(playlists []string) (Result, error) {
	start := time.Now()

	res, err := b.combine(playlists)
	if err != nil {
		metrics.RecordRun(metrics.ModeCombine, time.Since(start), false, failureReason(err))
		return Result{}, err
	}

	metrics.RecordRun(metrics.ModeCombine, time.Since(start), true, "")
	logging.Info("Combined %d playlist(s) into %s in %v",
		len(playlists), res.Playlist.Path, time.Since(start).Round(time.Millisecond))
	return res, nil
}

func (b *Builder) combine(playlists []string) (Result, error) {
	sources := make([][]string, 0, len(playlists))
	for _, path := range playlists {
		src, err := playlist.Load(path)
		if err != nil {
			return Result{}, err
		}
		logging.Debug("Read %s (%d entries)", src.Name, src.Count())
		sources = append(sources, src.Entries)
	}

	combined := interleave.Interleave(sources...)
	metrics.RecordInterleave(len(sources), len(combined))

	pl := &playlist.Playlist{
		Name:    trimExtension(b.combinedName),
		Path:    b.OutputPath(b.combinedName),
		Entries: combined,
	}
	if err := pl.Save(); err != nil {
		return Result{}, err
	}

	metrics.RecordPlaylist(metrics.ModeCombine, pl.Count())
	logging.Info("Wrote %s (%d entries)", pl.Path, pl.Count())
	return Result{Sources: playlists, Playlist: pl}, nil
}

func trimExtension(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}

// failureReason maps an error to the "reason" label of the run failure
// metric.
func failureReason(err error) string {
	switch {
	case errors.Is(err, playlist.ErrInvalidText):
		return metrics.ReasonInvalidText
	case errors.Is(err, playlist.ErrAbnormalPath):
		return metrics.ReasonAbnormalPath
	case errors.Is(err, playlist.ErrNotDirectory):
		return metrics.ReasonNotDirectory
	case errors.Is(err, fs.ErrNotExist):
		return metrics.ReasonNotFound
	default:
		return metrics.ReasonOther
	}
}
