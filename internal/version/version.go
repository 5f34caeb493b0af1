// Package version exposes the adapter version and build metadata.
package version

import "runtime/debug"

var (
	// Version is the release version, overridable via ldflags.
	Version = "dev"
	// Commit is the git revision at build time, overridable via ldflags.
	Commit = ""
)

// String returns the version, with a short commit suffix when known.
// When not set via ldflags the commit is read from the embedded build info.
func String() string {
	commit := Commit
	if commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range info.Settings {
				if setting.Key == "vcs.revision" {
					commit = setting.Value
					break
				}
			}
		}
	}
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if commit == "" {
		return Version
	}
	return Version + "+" + commit
}
