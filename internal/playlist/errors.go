package playlist

import "errors"

// Sentinel errors returned by playlist operations. Callers match them with
// errors.Is; the returned errors carry the offending path as context.
var (
	// ErrInvalidText is returned when a path is not valid UTF-8 text.
	ErrInvalidText = errors.New("invalid text")

	// ErrAbnormalPath is returned when a directory path has no final
	// component to name a playlist after, such as "/" or "..".
	ErrAbnormalPath = errors.New("abnormal path")

	// ErrNotDirectory is returned when a path given for listing is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)
