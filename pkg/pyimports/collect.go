package pyimports

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/src-d/enry/v2"
)

const langPython = "Python"

// sniffLimit bounds how much of an extensionless file is read for
// language detection. A shebang fits comfortably.
const sniffLimit = 512

// Collect walks each root and returns the Python source files beneath
// it, in walk order. Hidden directories are skipped. Files are selected
// by extension (.py, .pyw); extensionless files fall back to content
// detection, which catches shebang scripts. Roots that are plain files
// are subject to the same selection; roots that do not exist are
// dropped silently, matching the scan-path policy.
//
// ignore holds glob patterns (slash-separated match against the
// relative walk path) excluding files from the result.
func Collect(roots, ignore []string) ([]string, error) {
	globs, err := compileIgnore(ignore)
	if err != nil {
		return nil, err
	}

	var files []string

	for _, root := range roots {
		info, statErr := os.Stat(root)
		if statErr != nil {
			continue
		}

		if info.Mode().IsRegular() {
			if isPythonSource(root) && !matchesAny(globs, filepath.ToSlash(root)) {
				files = append(files, root)
			}

			continue
		}

		if !info.IsDir() {
			continue
		}

		walkErr := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if isHiddenDir(filepath.Base(path)) {
					return filepath.SkipDir
				}

				return nil
			}

			if !info.Mode().IsRegular() || !isPythonSource(path) {
				return nil
			}

			if matchesAny(globs, filepath.ToSlash(path)) {
				return nil
			}

			files = append(files, path)

			return nil
		})
		if walkErr != nil {
			return nil, fmt.Errorf("walk %s: %w", root, walkErr)
		}
	}

	return files, nil
}

func compileIgnore(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("compile ignore pattern %q: %w", pattern, err)
		}

		globs = append(globs, g)
	}

	return globs, nil
}

func matchesAny(globs []glob.Glob, path string) bool {
	for _, g := range globs {
		if g.Match(path) {
			return true
		}
	}

	return false
}

// isPythonSource selects files by extension, with content-based
// language detection as the fallback for extensionless scripts.
func isPythonSource(path string) bool {
	switch filepath.Ext(path) {
	case ".py", ".pyw":
		return true
	case "":
		return enry.GetLanguage(filepath.Base(path), sniffHead(path)) == langPython
	default:
		return false
	}
}

// sniffHead reads at most sniffLimit bytes of path for detection.
func sniffHead(path string) []byte {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	buf := make([]byte, sniffLimit)

	n, err := f.Read(buf)
	if n <= 0 && err != nil {
		return nil
	}

	return buf[:n]
}

// isHiddenDir returns true for directories that start with a dot
// (e.g. .git), except for "." and ".." which are filesystem navigation
// entries.
func isHiddenDir(name string) bool {
	return len(name) > 1 && name[0] == '.'
}
