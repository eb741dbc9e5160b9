// Package metrics provides Prometheus instrumentation for playlistr.
//
// playlistr is a short-lived command, so nothing is served over HTTP. All
// metrics live in the package [Registry]. When METRICS_TEXTFILE is set, the
// command calls [WriteTextfile] after each run, and the node_exporter textfile
// collector picks the file up from there. All metric names are prefixed with
// "playlistr_".
//
// # Metric Categories
//
// ## Playlist Metrics
//
//   - PlaylistsWrittenTotal: Counter of playlist files written, by mode
//   - EntriesWrittenTotal: Counter of entries written, by mode
//   - EntriesByKindTotal: Counter of listed directory entries, by extension kind
//   - PlaylistEntries: Histogram of entries per playlist, by mode
//
// ## Interleave Metrics
//
//   - InterleaveSources: Gauge of sources in the last combine
//   - InterleaveEntries: Gauge of entries produced by the last combine
//
// ## Filesystem Metrics
//
// Recorded through the [filesystem.Observer] returned by [NewFilesystemObserver]:
//   - FilesystemOperationDuration: Histogram by operation (readdir/read/write/stat)
//   - FilesystemOperationErrors: Counter of failed operations by operation
//
// ## Run Metrics
//
//   - RunsTotal: Counter by mode and status (success/error)
//   - RunFailuresTotal: Counter by mode and reason
//   - RunLastDuration: Gauge of the last run duration, by mode
//   - RunLastTimestamp: Gauge of the last run completion time, by mode
//
// ## Application Info
//
//   - AppInfo: Gauge with version, commit, and Go version labels
//
// # Example
//
//	metrics.InitializeMetrics()
//	filesystem.SetObserver(metrics.NewFilesystemObserver())
//	// ... run ...
//	if err := metrics.WriteTextfile("/var/lib/node_exporter/playlistr.prom"); err != nil {
//	    logging.Warn("failed to write metrics: %v", err)
//	}
package metrics
