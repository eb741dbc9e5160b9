// Package startup handles configuration loading, build information, and
// lifecycle logging for playlistr.
//
// # Configuration
//
// All configuration is loaded from environment variables via [LoadConfig]:
//
//   - PLAYLIST_OUTPUT_DIR: Directory that receives generated playlists (default: .)
//   - PLAYLIST_COMBINED_NAME: File name written by combine (default: combined.m3u8)
//   - METRICS_TEXTFILE: Path of a Prometheus textfile written after every run (default: unset)
//   - METRICS_ENABLED: Enable or disable the metrics textfile (default: true)
//   - LOG_LEVEL: Logging level - debug, info, warn, error (default: info)
//   - DEBUG: Shorthand for LOG_LEVEL=debug
//
// The output directory must already exist. An invalid combined name falls
// back to the default with a warning.
//
// # Build Information
//
// Build-time variables are injected via ldflags and exposed via [GetBuildInfo]:
//
//	go build -ldflags "-X playlistr/internal/startup.Version=1.0.0 \
//	    -X playlistr/internal/startup.Commit=$(git rev-parse --short HEAD)"
package startup
