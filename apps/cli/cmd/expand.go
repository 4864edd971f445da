package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/clonecap/clonecap/packages/core/config"
	"github.com/clonecap/clonecap/packages/core/rewrite"
	"github.com/clonecap/clonecap/packages/output"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var expandCmd = &cobra.Command{
	Use:   "expand <file|directory>...",
	Short: "Expand clone directives in Go files",
	Long: `Expand //clonecap:clone directives into explicit duplicate bindings.

By default the expanded source of each file is printed to stdout,
gofmt-style. Use -w to rewrite files in place; re-running is safe,
expansion is idempotent.

Examples:
  clonecap expand main.go
  clonecap expand -w .
  clonecap expand -d server.go
  clonecap expand -l ./internal/
  clonecap expand --check ./cmd/ ./internal/
  clonecap expand -w --watch .
  clonecap expand -w --method Copy main.go`,
	Args: cobra.MinimumNArgs(1),
	RunE: expandCommand,
}

var (
	writeFlag        bool
	listChangedFlag  bool
	diffFlag         bool
	checkFlag        bool
	watchFlag        bool
	methodFlag       string
	configFlag       string
	includeTestsFlag bool
	verboseFlag      int // counted (-v); any level enables verbose reporting
	noColorFlag      bool
)

func init() {
	// Mode flags
	expandCmd.Flags().BoolVarP(&writeFlag, "write", "w", false, "Rewrite files in place instead of printing to stdout")
	expandCmd.Flags().BoolVarP(&listChangedFlag, "list", "l", false, "List files whose expansion differs from their current contents")
	expandCmd.Flags().BoolVarP(&diffFlag, "diff", "d", false, "Print unified diffs instead of rewriting")
	expandCmd.Flags().BoolVar(&checkFlag, "check", false, "Report files that would change and exit nonzero if any would")
	expandCmd.Flags().BoolVar(&watchFlag, "watch", false, "Watch the given paths and re-expand on change")

	// Processing flags
	expandCmd.Flags().StringVar(&methodFlag, "method", getEnvString("CLONECAP_METHOD", ""), "Duplication method generated bindings call (env: CLONECAP_METHOD)")
	expandCmd.Flags().StringVar(&configFlag, "config", getEnvString("CLONECAP_CONFIG", ""), "Path to config file (env: CLONECAP_CONFIG)")
	expandCmd.Flags().BoolVar(&includeTestsFlag, "include-tests", getEnvBool("CLONECAP_INCLUDE_TESTS", false), "Process *_test.go files during directory walks (env: CLONECAP_INCLUDE_TESTS)")

	// Output flags
	expandCmd.Flags().CountVarP(&verboseFlag, "verbose", "v", "Verbose output")
	expandCmd.Flags().BoolVar(&noColorFlag, "no-color", getEnvBool("CLONECAP_NO_COLOR", false), "Disable colored output (env: CLONECAP_NO_COLOR)")
}

// Environment variable helpers
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// Formatter interface for all output formatters
type Formatter interface {
	FormatResult(result *output.FileResult)
	FormatError(err error)
	FormatHeader(version string)
}

// Flushable interface for formatters that need to flush output
type Flushable interface {
	Flush(totalDuration time.Duration) error
}

// loadEffectiveConfig layers CLI flags over the discovered config file.
func loadEffectiveConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configFlag)
	if err != nil {
		return nil, err
	}

	if methodFlag != "" {
		cfg = cfg.Merge(&config.Config{Method: methodFlag})
	}
	if includeTestsFlag {
		cfg = cfg.Merge(&config.Config{IncludeTests: config.BoolPtr(true)})
	}
	if verboseFlag > 0 {
		cfg = cfg.Merge(&config.Config{Verbose: config.BoolPtr(true)})
	}
	if noColorFlag {
		cfg = cfg.Merge(&config.Config{NoColor: config.BoolPtr(true)})
	}

	return cfg, nil
}

func expandCommand(cmd *cobra.Command, args []string) error {
	if checkFlag && writeFlag {
		return fmt.Errorf("--check cannot be combined with -w")
	}

	cfg, err := loadEffectiveConfig()
	if err != nil {
		return err
	}

	opts := rewrite.Options{Method: cfg.GetMethod()}

	// In report mode the formatter owns stdout; in print/diff/list mode
	// stdout carries source, diffs, or file names, so reporting goes to
	// stderr.
	reportMode := writeFlag || checkFlag

	makeFormatter := func() Formatter {
		consoleOpts := []output.ConsoleOption{
			output.WithVerbose(cfg.GetVerbose()),
			output.WithNoColor(cfg.GetNoColor()),
		}
		if !reportMode {
			consoleOpts = append(consoleOpts, output.WithWriter(cmd.ErrOrStderr()))
		}
		return output.NewConsoleFormatter(consoleOpts...)
	}

	formatter := makeFormatter()
	if reportMode && cfg.GetVerbose() {
		formatter.FormatHeader(version)
	}

	processAll := func() (changed, diagnostics, errors int, duration time.Duration) {
		start := time.Now()

		files, err := collectGoFiles(args, cfg)
		if err != nil {
			formatter.FormatError(err)
			return 0, 0, 1, time.Since(start)
		}
		if len(files) == 0 {
			formatter.FormatError(fmt.Errorf("no Go files found"))
			return 0, 0, 1, time.Since(start)
		}

		for _, file := range files {
			fileStart := time.Now()

			src, err := os.ReadFile(file)
			if err != nil {
				errors++
				formatter.FormatResult(output.ErrorResult(file, err, time.Since(fileStart)))
				continue
			}

			res, err := rewrite.Process(file, src, opts)
			if err != nil {
				errors++
				formatter.FormatResult(output.ErrorResult(file, err, time.Since(fileStart)))
				continue
			}

			written := false
			if writeFlag && res.Changed {
				if err := os.WriteFile(file, res.Output, 0644); err != nil {
					errors++
					formatter.FormatResult(output.ErrorResult(file, err, time.Since(fileStart)))
					continue
				}
				written = true
			}

			if res.Changed {
				changed++
			}
			diagnostics += len(res.Diagnostics)

			result := output.NewFileResult(res, written, time.Since(fileStart))
			switch {
			case listChangedFlag:
				if res.Changed {
					fmt.Fprintln(cmd.OutOrStdout(), file)
				}
				if len(res.Diagnostics) > 0 {
					formatter.FormatResult(result)
				}
			case reportMode:
				formatter.FormatResult(result)
			case diffFlag:
				if res.Changed {
					if err := output.WriteDiff(cmd.OutOrStdout(), file, src, res.Output); err != nil {
						errors++
						formatter.FormatError(err)
					}
				}
				if len(res.Diagnostics) > 0 {
					formatter.FormatResult(result)
				}
			default:
				if _, err := cmd.OutOrStdout().Write(res.Output); err != nil {
					errors++
					formatter.FormatError(err)
				}
				if len(res.Diagnostics) > 0 {
					formatter.FormatResult(result)
				}
			}
		}

		return changed, diagnostics, errors, time.Since(start)
	}

	changed, diagnostics, errors, duration := processAll()

	// Flush output for formatters that accumulate results
	if flushable, ok := formatter.(Flushable); ok && reportMode {
		if err := flushable.Flush(duration); err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}
	}

	if !watchFlag {
		switch {
		case errors > 0:
			os.Exit(ExitIOError)
		case diagnostics > 0:
			os.Exit(ExitDiagnostics)
		case changed > 0 && (checkFlag || listChangedFlag):
			os.Exit(ExitChanged)
		}
		return nil
	}

	// Watch mode: set up file watcher
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	debounce := time.Duration(getEnvInt("CLONECAP_DEBOUNCE_MS", cfg.GetDebounceMs())) * time.Millisecond

	// Watch the directories holding the targets, recursing into directory
	// arguments with the same skip rules as the walk.
	watchedDirs := make(map[string]bool)
	addWatch := func(dir string) {
		if watchedDirs[dir] {
			return
		}
		if err := watcher.Add(dir); err != nil {
			formatter.FormatError(fmt.Errorf("failed to watch %s: %w", dir, err))
			return
		}
		watchedDirs[dir] = true
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			addWatch(filepath.Dir(arg))
			continue
		}
		_ = filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
			if err != nil || !info.IsDir() {
				return err
			}
			if path != arg && shouldSkipDir(info.Name()) {
				return filepath.SkipDir
			}
			addWatch(path)
			return nil
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n\n")

	// Debounce timer for rapid file changes. Reruns fire from the select
	// loop itself, so the formatter is only ever touched on this goroutine.
	debounceTimer := time.NewTimer(debounce)
	debounceTimer.Stop()
	var changedFile string

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if rerunEvent(event, cfg) {
				changedFile = event.Name
				debounceTimer.Reset(debounce)
			}

		case <-debounceTimer.C:
			fmt.Fprintf(cmd.OutOrStdout(), "\nFile changed: %s\n\n", changedFile)

			// Fresh formatter so counters restart per run
			formatter = makeFormatter()
			_, _, _, duration := processAll()
			if flushable, ok := formatter.(Flushable); ok && reportMode {
				_ = flushable.Flush(duration)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n")

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			formatter.FormatError(fmt.Errorf("watcher error: %w", err))
		}
	}
}

func collectGoFiles(args []string, cfg *config.Config) ([]string, error) {
	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}

		if info.IsDir() {
			err := filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if info.IsDir() {
					if path != arg && shouldSkipDir(info.Name()) {
						return filepath.SkipDir
					}
					return nil
				}
				if isGoFile(path, cfg) && !isExcluded(path, cfg) {
					files = append(files, path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		} else {
			// Files named explicitly are always processed, tests included
			files = append(files, arg)
		}
	}

	return files, nil
}

// shouldSkipDir reports whether a directory is skipped during walks:
// vendor, testdata, and hidden or underscore-prefixed directories.
func shouldSkipDir(name string) bool {
	if name == "vendor" || name == "testdata" {
		return true
	}
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

func isGoFile(path string, cfg *config.Config) bool {
	if filepath.Ext(path) != ".go" {
		return false
	}
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || strings.HasPrefix(base, "_") {
		return false
	}
	if strings.HasSuffix(base, "_test.go") && !cfg.GetIncludeTests() {
		return false
	}
	return true
}

// rerunEvent reports whether a watch event schedules a re-expansion: a
// write to a Go file the walk rules would process. A rewrite fired by -w
// retriggers the watcher once; the second pass is a no-op.
func rerunEvent(event fsnotify.Event, cfg *config.Config) bool {
	return event.Has(fsnotify.Write) && isGoFile(event.Name, cfg)
}

// isExcluded matches config exclude patterns against the path and its
// basename.
func isExcluded(path string, cfg *config.Config) bool {
	for _, pattern := range cfg.Exclude {
		if ok, _ := filepath.Match(pattern, path); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, filepath.Base(path)); ok {
			return true
		}
	}
	return false
}
