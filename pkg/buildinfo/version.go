// Package buildinfo provides build-time version information, set via
// ldflags:
//
//	go build -ldflags "-X github.com/esonju/forcegraph/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/esonju/forcegraph/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/esonju/forcegraph/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	// Version is the semantic version.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
