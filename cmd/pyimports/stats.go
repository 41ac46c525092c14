package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/codescout/pyimports/pkg/pyimports"
	"github.com/codescout/pyimports/pkg/textutil"
)

func statsCmd() *cobra.Command {
	var all, noColor bool
	var ignore []string

	cmd := &cobra.Command{
		Use:   "stats [flags] <script>...",
		Short: "Per-file import statistics as a table",
		Long: `Report per-file size, line count, import count, and the number of
distinct top-level packages referenced, as a human-oriented table.

Examples:
  pyimports stats *.py
  pyimports stats --all src/`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args, all, noColor, ignore, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "collect Python sources recursively under the given directories (default: .)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.Flags().StringArrayVar(&ignore, "ignore", nil, "glob pattern excluding collected paths (repeatable, with --all)")

	return cmd
}

// fileStats accumulates the table row data for one scanned file.
type fileStats struct {
	path     string
	size     uint64
	lines    int
	imports  int
	packages int
}

func runStats(args []string, all, noColor bool, ignore []string, writer io.Writer) error {
	if noColor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	paths, err := resolveInputs(args, all, ignore)
	if err != nil {
		return err
	}

	stats, err := collectStats(paths)
	if err != nil {
		return err
	}

	renderStats(stats, writer)

	return nil
}

func collectStats(paths []string) ([]fileStats, error) {
	var stats []fileStats

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		src, err := pyimports.ReadSource(path)
		if err != nil {
			return nil, fmt.Errorf("stats %s: %w", path, err)
		}

		names := pyimports.Extract(src)

		packages := make(map[string]struct{}, len(names))
		for _, name := range names {
			packages[pyimports.TopLevel(name)] = struct{}{}
		}

		stats = append(stats, fileStats{
			path:     path,
			size:     uint64(info.Size()),
			lines:    textutil.CountLines([]byte(src)),
			imports:  len(names),
			packages: len(packages),
		})
	}

	return stats, nil
}

func renderStats(stats []fileStats, writer io.Writer) {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"File", "Size", "Lines", "Imports", "Packages"})

	var totalImports int

	for _, s := range stats {
		tbl.AppendRow(table.Row{s.path, humanize.Bytes(s.size), s.lines, s.imports, s.packages})
		totalImports += s.imports
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("%d files", len(stats)), "", "", totalImports, ""})

	fmt.Fprintln(writer, tbl.Render())

	if len(stats) == 0 {
		color.New(color.FgYellow).Fprintln(writer, "No Python sources found")

		return
	}

	color.New(color.FgGreen).Fprintf(writer, "Scanned %d files, %d import statements\n", len(stats), totalImports)
}
