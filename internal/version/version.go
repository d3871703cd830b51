// Package version provides build-time version information.
package version

import "fmt"

// These variables are set at build time via ldflags, e.g.
// -X github.com/open-cli-collective/cn-mapblock/internal/version.Version=v1.0.0
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String describes the build for --version output.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
