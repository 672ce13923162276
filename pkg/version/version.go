// Package version carries build metadata injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/zxc72608/bigquery/pkg/version.Version=v1.2.0"
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version (set by build flags)
	Version = "dev"

	// GitCommit is the git commit hash (set by build flags)
	GitCommit = "unknown"

	// BuildDate is the build timestamp (set by build flags)
	BuildDate = "unknown"

	// GoVersion is the Go version used to build
	GoVersion = runtime.Version()
)

// Short returns "<version> (<commit>)".
func Short() string {
	return fmt.Sprintf("%s (%s)", Version, GitCommit)
}
