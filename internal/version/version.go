// Package version reports build information for the server binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version is set via ldflags at build time
var Version = "dev"

// Get returns a human-readable version string, including the VCS revision
// when the binary was built from a checkout
func Get() string {
	s := Version

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		var revision string
		var modified bool
		for _, setting := range buildInfo.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.modified":
				modified = setting.Value == "true"
			}
		}

		if revision != "" {
			if len(revision) > 8 {
				revision = revision[:8]
			}
			if modified {
				revision += " (modified)"
			}
			s = fmt.Sprintf("%s (%s, %s)", s, revision, buildInfo.GoVersion)
		} else {
			s = fmt.Sprintf("%s (%s)", s, buildInfo.GoVersion)
		}
	}

	return s
}
