// Package buildinfo carries version metadata stamped at build time.
package buildinfo

// Set via -ldflags "-X ..." by the release build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
