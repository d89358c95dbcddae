// Package version provides build-time version information.
package version

import "fmt"

// These variables are set at build time via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Long returns the full version line shown by "termlink --version".
func Long() string {
	return fmt.Sprintf("termlink version %s (commit: %s, built: %s)", Version, Commit, Date)
}
