// Package misc carries build identification. "go build" embeds the vcs
// details, release builds overwrite version with ldflags.
package misc

import "runtime/debug"

var (
	appName = "stc"
	version = "dev"
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

// GetGitHash reports the vcs revision recorded in the build info, with a
// "-dirty" suffix when the working tree was modified.
func GetGitHash() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	var rev, dirty string
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			if s.Value == "true" {
				dirty = "-dirty"
			}
		}
	}
	if rev == "" {
		return "unknown"
	}
	return rev + dirty
}
