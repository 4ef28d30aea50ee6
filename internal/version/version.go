// Package version reports the build identity of the tocgen binaries.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set via -ldflags at release time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Resolved returns Version, falling back to the module version recorded by
// `go install` when no release version was stamped.
func Resolved() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Resolved(), Commit, BuildDate)
}
