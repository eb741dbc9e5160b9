// Package logging provides a small leveled logger for playlistr.
//
// Levels, from most to least verbose:
//   - DEBUG: per-file and per-step detail
//   - INFO: one line per playlist written, plus the run summary
//   - WARN: configuration fallbacks
//   - ERROR: failures that abort the run
//
// The level comes from the DEBUG or LOG_LEVEL environment variable. All output
// goes to stderr so that stdout stays free for command output such as
// "playlistr version".
package logging
