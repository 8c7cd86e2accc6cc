// Package version provides build-time version information for the CLI.
// Version is read from the VERSION file or set via ldflags during build.
package version

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// version can be overridden via ldflags:
// -X github.com/quillforge/quill/internal/version.version=x.y.z
var version string

// Build metadata, set via ldflags during release builds.
var (
	// GitCommit is the commit hash the binary was built from.
	GitCommit = "unknown"
	// BuildDate is the UTC timestamp of the build.
	BuildDate = "unknown"
)

// Version returns the application version.
// Priority: ldflags > embedded VERSION file
func Version() string {
	if version != "" {
		return version
	}
	return strings.TrimSpace(embeddedVersion)
}
