// Package version holds the build information stamped in by the release
// build.
package version

import "runtime/debug"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/schanno/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/schanno/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/schanno/internal/version.Date={{.Date}}
)

// Resolved returns the build information, filling a dev build's version
// and commit from the module build info when go install recorded them
func Resolved() (version, commit, date string) {
	version, commit, date = Version, Commit, Date
	if version != "dev" {
		return
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		version = v
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && commit == "unknown" {
			commit = s.Value
		}
	}
	return
}
