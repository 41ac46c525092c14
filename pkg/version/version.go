// Package version exposes build-time version metadata for the
// pyimports binary.
package version

// Populated at build time via -ldflags; the defaults identify a
// from-source build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
