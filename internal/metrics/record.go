package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"playlistr/internal/mediatypes"
)

// RecordPlaylist counts one written playlist with the given number of entries.
func RecordPlaylist(mode string, entries int) {
	PlaylistsWrittenTotal.WithLabelValues(mode).Inc()
	EntriesWrittenTotal.WithLabelValues(mode).Add(float64(entries))
	PlaylistEntries.WithLabelValues(mode).Observe(float64(entries))
}

// RecordEntryKinds adds per-kind entry counts from one directory listing.
func RecordEntryKinds(counts map[mediatypes.Kind]int) {
	for kind, n := range counts {
		EntriesByKindTotal.WithLabelValues(string(kind)).Add(float64(n))
	}
}

// RecordInterleave records the shape of the last combine.
func RecordInterleave(sources, entries int) {
	InterleaveSources.Set(float64(sources))
	InterleaveEntries.Set(float64(entries))
}

// RecordRun records the outcome of a whole create or combine run.
// reason is ignored when the run succeeded.
func RecordRun(mode string, duration time.Duration, succeeded bool, reason string) {
	status := "success"
	if !succeeded {
		status = "error"
		RunFailuresTotal.WithLabelValues(mode, reason).Inc()
	}
	RunsTotal.WithLabelValues(mode, status).Inc()
	RunLastDuration.WithLabelValues(mode).Set(duration.Seconds())
	RunLastTimestamp.WithLabelValues(mode).Set(float64(time.Now().Unix()))
}

// WriteTextfile writes every registered metric to path in the Prometheus text
// exposition format, for pickup by the node_exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
