// Package buildinfo provides build-time version information.
//
// Release builds set the variables via ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/treemap/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/treemap/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/treemap/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Without ldflags (go install, go build in a checkout) the values are filled
// from the module version and VCS stamps embedded by the toolchain.
//
// The version also scopes render cache keys and is recorded in JSON exports.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

const name = "treemap"

const (
	unsetVersion = "dev"
	unsetCommit  = "none"
	unsetDate    = "unknown"
)

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = unsetVersion

	// Commit is the git commit SHA.
	Commit = unsetCommit

	// Date is the build timestamp.
	Date = unsetDate
)

func init() {
	if bi, ok := debug.ReadBuildInfo(); ok {
		fill(bi)
	}
}

// fill replaces unset variables with what the toolchain recorded.
func fill(bi *debug.BuildInfo) {
	if Version == unsetVersion && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && Commit == unsetCommit:
			Commit = s.Value
		case s.Key == "vcs.time" && Date == unsetDate:
			Date = s.Value
		}
	}
}

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Short returns "treemap <version>".
func Short() string {
	return name + " " + Version
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
