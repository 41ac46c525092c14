package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/codescout/pyimports/pkg/pyimports"
)

var (
	ErrNoScripts         = errors.New("no scripts specified")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

const (
	formatJSON    = "json"
	formatCompact = "compact"
	formatYAML    = "yaml"
)

// jsonIndent is the indentation unit for the default output format.
const jsonIndent = "    "

const yamlIndent = 4

// scanOptions carries every flag of the root command.
type scanOptions struct {
	excludeStdlib bool
	total         bool
	onlyPackages  bool
	all           bool
	progress      bool
	verbose       bool
	format        string
	output        string
	ignore        []string
}

func newRootCmd() *cobra.Command {
	var opts scanOptions

	cmd := &cobra.Command{
		Use:   "pyimports [flags] <script>...",
		Short: "Extract module names imported by Python scripts",
		Long: `pyimports statically scans Python source files for import statements
and reports the referenced module names as structured output.

Recognition is line-oriented: single-line "import a.b" and
"from a.b import c" statements are extracted (the "from" target is
reported); comma lists, parenthesized lists, and indented or continued
statements are skipped. Directories and missing paths among the
arguments are ignored, so shell-expanded file lists just work.

Examples:
  pyimports app.py                      # Per-file mapping of import names
  pyimports *.py                        # Scan a shell-expanded file list
  pyimports -p -e *.py                  # Top-level packages, stdlib removed
  pyimports -t src/*.py                 # One sorted, deduplicated list
  pyimports --all                       # Collect .py files under . recursively
  pyimports --all --ignore 'vendor/**'  # ... minus ignored paths
  pyimports -f yaml app.py              # YAML instead of JSON`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(args, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&opts.excludeStdlib, "exclude-stdlib", "e", false, "drop known standard-library modules")
	cmd.Flags().BoolVarP(&opts.total, "total", "t", false, "one deduplicated sorted list across all files")
	cmd.Flags().BoolVarP(&opts.onlyPackages, "only-packages", "p", false, "truncate names to their top-level package")
	cmd.Flags().BoolVar(&opts.all, "all", false, "collect Python sources recursively under the given directories (default: .)")
	cmd.Flags().BoolVar(&opts.progress, "progress", false, "show per-file progress on stderr")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatJSON, "output format (json, compact, yaml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringArrayVar(&opts.ignore, "ignore", nil, "glob pattern excluding collected paths (repeatable, with --all)")

	return cmd
}

func runScan(args []string, opts scanOptions, writer io.Writer) error {
	setupLogging(opts.verbose)

	paths, err := resolveInputs(args, opts.all, opts.ignore)
	if err != nil {
		return err
	}

	scanOpts := pyimports.Options{
		OnlyPackages:  opts.onlyPackages,
		ExcludeStdlib: opts.excludeStdlib,
		Total:         opts.total,
	}

	if opts.progress {
		scanOpts.Progress = func(done, total int, path string) {
			fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", done, total, path)
		}
	}

	report, err := pyimports.Scan(paths, scanOpts)
	if err != nil {
		return err
	}

	return writeReport(report, opts.format, opts.output, writer)
}

// resolveInputs turns the positional arguments into candidate paths.
// Without --all the arguments are used as-is (the scanner filters them
// to regular files); with --all they are treated as roots to collect
// Python sources under, defaulting to the current directory.
func resolveInputs(args []string, all bool, ignore []string) ([]string, error) {
	if !all {
		if len(args) == 0 {
			return nil, ErrNoScripts
		}

		return args, nil
	}

	roots := args
	if len(roots) == 0 {
		roots = []string{"."}
	}

	paths, err := pyimports.Collect(roots, ignore)
	if err != nil {
		return nil, fmt.Errorf("collect sources: %w", err)
	}

	return paths, nil
}

func writeReport(report *pyimports.Report, format, output string, writer io.Writer) error {
	if output != "" {
		outputFile, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer outputFile.Close()

		writer = outputFile
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(writer)
		enc.SetIndent("", jsonIndent)

		encodeErr := enc.Encode(report)
		if encodeErr != nil {
			return fmt.Errorf("failed to encode JSON: %w", encodeErr)
		}

		return nil
	case formatCompact:
		enc := json.NewEncoder(writer)

		encodeErr := enc.Encode(report)
		if encodeErr != nil {
			return fmt.Errorf("failed to encode compact JSON: %w", encodeErr)
		}

		return nil
	case formatYAML:
		enc := yaml.NewEncoder(writer)
		enc.SetIndent(yamlIndent)

		encodeErr := enc.Encode(report)
		if encodeErr != nil {
			return fmt.Errorf("failed to encode YAML: %w", encodeErr)
		}

		closeErr := enc.Close()
		if closeErr != nil {
			return fmt.Errorf("failed to finish YAML output: %w", closeErr)
		}

		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// setupLogging installs the process logger. Default level is warn so
// the silently-skipped-path policy stays silent unless asked for.
func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
