/*
Package filesystem wraps the handful of filesystem calls playlistr makes so
that every call is timed and reported to an [Observer].

# Operations

  - [ReadDir]: list the immediate entries of a directory
  - [ReadFile]: read a whole playlist file
  - [WriteFile]: create or truncate a playlist file and write it in one call
  - [Stat]: inspect an input path before it is used

Each call opens and releases its own handle; nothing is cached between calls.
Failures are returned unchanged (the *fs.PathError chain is preserved) and are
never retried.

# Observation

The metrics package provides the Observer implementation. Until [SetObserver]
is called, observations are dropped, which keeps tests free of Prometheus
state:

	filesystem.SetObserver(metrics.NewFilesystemObserver())
*/
package filesystem
