// Package buildinfo exposes the version identity stamped into the binary
// at link time.
//
// Release builds inject the three variables through -ldflags -X; a plain
// `go build` keeps the defaults, which read unambiguously as an unstamped
// development binary.
package buildinfo

import "fmt"

// Stamped by the linker. Paths for -X are
// github.com/klintqinami/sese-regions/pkg/buildinfo.{Version,Commit,Date}.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Short returns a compact "version (commit)" form for log lines and API
// banners.
func Short() string {
	return fmt.Sprintf("%s (%s)", Version, Commit)
}

// Template returns the cobra --version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s\n  commit %s\n  built  %s\n", Version, Commit, Date)
}
