package startup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"playlistr/internal/logging"
)

// Build-time variables (injected via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// DefaultCombinedName is the combine output file name used when
// PLAYLIST_COMBINED_NAME is unset or invalid.
const DefaultCombinedName = "combined.m3u8"

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// GetBuildInfo returns the current build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// String formats the build information for "playlistr version".
func (b BuildInfo) String() string {
	return fmt.Sprintf("playlistr %s (commit %s, built %s, %s %s/%s)",
		b.Version, b.Commit, b.BuildTime, b.GoVersion, b.OS, b.Arch)
}

// Config holds all application configuration
type Config struct {
	OutputDir       string
	CombinedName    string
	MetricsTextfile string
	MetricsEnabled  bool
}

// MetricsExportEnabled reports whether metrics should be written after a run.
func (c *Config) MetricsExportEnabled() bool {
	return c.MetricsEnabled && c.MetricsTextfile != ""
}

// LoadConfig loads and validates configuration from environment variables
func LoadConfig() (*Config, error) {
	logSystemInfo()

	outputDir := getEnv("PLAYLIST_OUTPUT_DIR", ".")
	combinedName := getEnv("PLAYLIST_COMBINED_NAME", DefaultCombinedName)
	metricsTextfile := getEnv("METRICS_TEXTFILE", "")
	metricsEnabled := getEnvBool("METRICS_ENABLED", true)

	logging.Debug("Configuration:")
	logging.Debug("  PLAYLIST_OUTPUT_DIR:     %s", outputDir)
	logging.Debug("  PLAYLIST_COMBINED_NAME:  %s", combinedName)
	logging.Debug("  METRICS_TEXTFILE:        %s", metricsTextfile)
	logging.Debug("  METRICS_ENABLED:         %v", metricsEnabled)
	logging.Debug("  LOG_LEVEL:               %s", logging.GetLevel())

	if err := validFileName(combinedName); err != nil {
		logging.Warn("Invalid PLAYLIST_COMBINED_NAME %q (%v), using default: %s", combinedName, err, DefaultCombinedName)
		combinedName = DefaultCombinedName
	}

	if err := ensureDirectory(outputDir); err != nil {
		return nil, fmt.Errorf("output directory %s: %w", outputDir, err)
	}

	return &Config{
		OutputDir:       outputDir,
		CombinedName:    combinedName,
		MetricsTextfile: metricsTextfile,
		MetricsEnabled:  metricsEnabled,
	}, nil
}

// LogRunStarted logs the start of a create or combine run
func LogRunStarted(mode string, args []string) {
	logging.Debug("Starting %s with %d argument(s): %s", mode, len(args), strings.Join(args, ", "))
}

// LogRunComplete logs the end of a successful run
func LogRunComplete(mode string, duration time.Duration) {
	logging.Debug("[OK] %s finished in %v", mode, duration)
}

// LogMetricsExported logs a successful metrics textfile export
func LogMetricsExported(path string) {
	logging.Debug("[OK] Metrics written to %s", path)
}

// Helper functions

func logSystemInfo() {
	if !logging.IsDebugEnabled() {
		return
	}

	logging.Debug("playlistr %s (commit %s, built %s)", Version, Commit, BuildTime)
	logging.Debug("  Go version:      %s", runtime.Version())
	logging.Debug("  OS/Arch:         %s/%s", runtime.GOOS, runtime.GOARCH)

	if wd, err := os.Getwd(); err == nil {
		logging.Debug("  Working dir:     %s", wd)
	}
}

// validFileName rejects names that are empty or would resolve outside the
// output directory.
func validFileName(name string) error {
	switch {
	case name == "":
		return errors.New("empty name")
	case name == "." || name == "..":
		return errors.New("not a file name")
	case strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator):
		return errors.New("contains a path separator")
	}
	return nil
}

func ensureDirectory(path string) error {
	logging.Debug("  Checking output directory: %s", path)

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path exists but is not a directory")
	}

	logging.Debug("    [OK] Directory exists")
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		logging.Warn("Invalid boolean value for %s: %q, using default: %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
