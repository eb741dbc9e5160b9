package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds every playlistr metric. A private registry keeps the Go
// runtime and process collectors out of the exported textfile.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// Run modes used as the "mode" label.
const (
	ModeCreate  = "create"
	ModeCombine = "combine"
)

// Playlist metrics
var (
	PlaylistsWrittenTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playlistr_playlists_written_total",
			Help: "Total number of playlist files written",
		},
		[]string{"mode"},
	)

	EntriesWrittenTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playlistr_entries_written_total",
			Help: "Total number of playlist entries written",
		},
		[]string{"mode"},
	)

	EntriesByKindTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playlistr_entries_by_kind_total",
			Help: "Total number of directory entries listed, by extension kind",
		},
		[]string{"kind"},
	)

	PlaylistEntries = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "playlistr_playlist_entries",
			Help:    "Number of entries per written playlist",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
		},
		[]string{"mode"},
	)
)

// Interleave metrics
var (
	InterleaveSources = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "playlistr_interleave_sources",
			Help: "Number of source playlists in the last combine run",
		},
	)

	InterleaveEntries = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "playlistr_interleave_entries",
			Help: "Number of entries produced by the last combine run",
		},
	)
)

// Filesystem metrics
var (
	FilesystemOperationDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "playlistr_filesystem_operation_duration_seconds",
			Help:    "Duration of filesystem operations in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"operation"},
	)

	FilesystemOperationErrors = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playlistr_filesystem_operation_errors_total",
			Help: "Total number of failed filesystem operations",
		},
		[]string{"operation"},
	)
)

// Run metrics
var (
	RunsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playlistr_runs_total",
			Help: "Total number of runs by mode and status",
		},
		[]string{"mode", "status"},
	)

	RunFailuresTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playlistr_run_failures_total",
			Help: "Total number of failed runs by mode and failure reason",
		},
		[]string{"mode", "reason"},
	)

	RunLastDuration = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "playlistr_run_last_duration_seconds",
			Help: "Duration of the last run in seconds",
		},
		[]string{"mode"},
	)

	RunLastTimestamp = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "playlistr_run_last_timestamp",
			Help: "Unix timestamp of the last run completion",
		},
		[]string{"mode"},
	)
)

// Application info metric
var (
	AppInfo = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "playlistr_app_info",
			Help: "Application information",
		},
		[]string{"version", "commit", "go_version"},
	)
)

// SetAppInfo sets the application info metric
func SetAppInfo(version, commit, goVersion string) {
	AppInfo.WithLabelValues(version, commit, goVersion).Set(1)
}
