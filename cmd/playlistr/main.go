package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"playlistr/internal/builder"
	"playlistr/internal/filesystem"
	"playlistr/internal/logging"
	"playlistr/internal/metrics"
	"playlistr/internal/startup"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return exitUsage
	}

	command, rest := args[0], args[1:]

	switch command {
	case "help", "-h", "--help":
		printUsage(stdout)
		return exitOK
	case "version", "--version":
		fmt.Fprintln(stdout, startup.GetBuildInfo())
		return exitOK
	case metrics.ModeCreate:
		if len(rest) < 1 {
			fmt.Fprintln(stderr, "Error: create requires at least one directory")
			printUsage(stderr)
			return exitUsage
		}
	case metrics.ModeCombine:
		if len(rest) < 2 {
			fmt.Fprintln(stderr, "Error: combine requires at least two playlists")
			printUsage(stderr)
			return exitUsage
		}
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", sanitizeCommand(command))
		printUsage(stderr)
		return exitUsage
	}

	if err := execute(command, rest, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}

// execute loads configuration and runs create or combine, printing one line
// per playlist written to stdout. Metrics are exported whether or not the run
// succeeded.
func execute(command string, args []string, stdout io.Writer) error {
	start := time.Now()

	cfg, err := startup.LoadConfig()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	metrics.InitializeMetrics()
	info := startup.GetBuildInfo()
	metrics.SetAppInfo(info.Version, info.Commit, info.GoVersion)
	filesystem.SetObserver(metrics.NewFilesystemObserver())
	defer filesystem.SetObserver(nil)

	b := builder.New(builder.Options{
		OutputDir:    cfg.OutputDir,
		CombinedName: cfg.CombinedName,
	})

	startup.LogRunStarted(command, args)
	var results []builder.Result
	switch command {
	case metrics.ModeCreate:
		results, err = b.Create(args)
	case metrics.ModeCombine:
		var res builder.Result
		res, err = b.Combine(args)
		if err == nil {
			results = []builder.Result{res}
		}
	}
	// Create returns the playlists written before a failure; report those too.
	for _, res := range results {
		printResult(stdout, res)
	}
	if err == nil {
		startup.LogRunComplete(command, time.Since(start))
	}

	if cfg.MetricsExportEnabled() {
		if exportErr := metrics.WriteTextfile(cfg.MetricsTextfile); exportErr != nil {
			logging.Warn("Failed to write metrics to %s: %v", cfg.MetricsTextfile, exportErr)
		} else {
			startup.LogMetricsExported(cfg.MetricsTextfile)
		}
	}

	return err
}

// printResult writes "<playlist>\t<entries>\t<sources>" for one written
// playlist.
func printResult(w io.Writer, res builder.Result) {
	fmt.Fprintf(w, "%s\t%d\t%s\n", res.Playlist.Path, res.Playlist.Count(), strings.Join(res.Sources, ","))
}

// sanitizeCommand returns a safe representation of a command string for display.
// It uses an allowlist approach, replacing any character that is not alphanumeric,
// a hyphen, or an underscore with '_'.
func sanitizeCommand(cmd string) string {
	var b strings.Builder
	b.Grow(len(cmd))
	for _, r := range cmd {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "playlistr - build and combine m3u8 playlists")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage: playlistr <command> [arguments]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  create <DIRECTORY>...             - Write <basename>.m3u8 listing each directory")
	fmt.Fprintln(w, "  combine <PLAYLIST> <PLAYLIST>...  - Interleave playlists into one")
	fmt.Fprintln(w, "  version                           - Print version information")
	fmt.Fprintln(w, "  help                              - Show this help")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  PLAYLIST_OUTPUT_DIR     - Directory for generated playlists (default: .)")
	fmt.Fprintf(w, "  PLAYLIST_COMBINED_NAME  - Output file of combine (default: %s)\n", startup.DefaultCombinedName)
	fmt.Fprintln(w, "  METRICS_TEXTFILE        - Write Prometheus metrics to this file after each run")
	fmt.Fprintln(w, "  LOG_LEVEL               - debug, info, warn, error (default: info)")
}
