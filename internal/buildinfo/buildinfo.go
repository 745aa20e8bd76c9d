// Package buildinfo reads version control metadata embedded by the Go
// toolchain at build time.
package buildinfo

import (
	"runtime/debug"
)

const length = 7

// Revision returns the short vcs revision of the current build, or the
// empty string for builds outside a repository.
func Revision() (rev string) {
	rev = get("vcs.revision")
	if len(rev) > length {
		rev = rev[:length]
	}
	return
}

// Dirty reports whether the build contained uncommitted changes.
func Dirty() bool {
	return get("vcs.modified") == "true"
}

func get(key string) string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == key {
				return setting.Value
			}
		}
	}
	return ""
}
