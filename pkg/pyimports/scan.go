package pyimports

import (
	"fmt"
	"log/slog"
	"os"
)

// Options control the post-processing applied to extracted import
// names. The zero value reports full names grouped per file.
type Options struct {
	// OnlyPackages truncates every name to its top-level package.
	OnlyPackages bool

	// ExcludeStdlib drops names that exactly match the known
	// standard-library set. When combined with OnlyPackages the
	// truncation runs first, so dotted stdlib references like
	// "os.path" are excluded too; alone, it only removes verbatim
	// matches.
	ExcludeStdlib bool

	// Total collapses all per-file results into one deduplicated,
	// sorted list.
	Total bool

	// Progress, when non-nil, is called once per file before it is
	// read, with 1-based position and the surviving file count.
	Progress func(done, total int, path string)
}

// apply runs the enabled post-filters over one file's names, in the
// fixed order: truncate, then exclude.
func (o Options) apply(names []string) []string {
	if o.OnlyPackages {
		names = TruncateTopLevel(names)
	}

	if o.ExcludeStdlib {
		names = DropStdlib(names)
	}

	return names
}

// Scan extracts import names from each path that identifies an existing
// regular file, in input order, and applies the configured
// post-filters. Non-regular and non-existent paths are dropped
// silently: shell-expanded argument lists routinely contain
// directories, and skipping them is policy, not an error. A read or
// decode failure on a surviving file aborts the scan with no partial
// result.
func Scan(paths []string, opts Options) (*Report, error) {
	files := filterRegular(paths)
	report := &Report{}

	for i, path := range files {
		if opts.Progress != nil {
			opts.Progress(i+1, len(files), path)
		}

		src, err := ReadSource(path)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", path, err)
		}

		report.Add(path, opts.apply(Extract(src)))
	}

	if opts.Total {
		report.Collapse()
	}

	return report, nil
}

// filterRegular keeps the paths that identify existing regular files,
// preserving order. Repeated paths keep their first occurrence only, so
// the result mapping has one entry per input file. Dropped paths are
// only visible at debug level.
func filterRegular(paths []string) []string {
	kept := make([]string, 0, len(paths))
	seen := make(map[string]struct{}, len(paths))

	for _, path := range paths {
		if _, dup := seen[path]; dup {
			slog.Debug("skipping repeated path", "path", path)

			continue
		}

		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			slog.Debug("skipping non-regular path", "path", path)

			continue
		}

		seen[path] = struct{}{}
		kept = append(kept, path)
	}

	return kept
}
