package metrics

import (
	"playlistr/internal/filesystem"
	"playlistr/internal/mediatypes"
)

// Failure reasons used as the "reason" label of RunFailuresTotal.
const (
	ReasonInvalidText  = "invalid_text"
	ReasonAbnormalPath = "abnormal_path"
	ReasonNotFound     = "not_found"
	ReasonNotDirectory = "not_directory"
	ReasonOther        = "other"
)

// InitializeMetrics pre-populates all expected label combinations so that
// every series appears in the textfile even when it is still zero.
// Call this once at startup.
func InitializeMetrics() {
	modes := []string{ModeCreate, ModeCombine}
	reasons := []string{ReasonInvalidText, ReasonAbnormalPath, ReasonNotFound, ReasonNotDirectory, ReasonOther}

	for _, mode := range modes {
		PlaylistsWrittenTotal.WithLabelValues(mode)
		EntriesWrittenTotal.WithLabelValues(mode)
		PlaylistEntries.WithLabelValues(mode)
		RunsTotal.WithLabelValues(mode, "success")
		RunsTotal.WithLabelValues(mode, "error")
		for _, reason := range reasons {
			RunFailuresTotal.WithLabelValues(mode, reason)
		}
	}

	for _, kind := range mediatypes.Kinds {
		EntriesByKindTotal.WithLabelValues(string(kind))
	}

	for _, op := range []string{filesystem.OpReadDir, filesystem.OpRead, filesystem.OpWrite, filesystem.OpStat} {
		FilesystemOperationDuration.WithLabelValues(op)
		FilesystemOperationErrors.WithLabelValues(op)
	}
}
