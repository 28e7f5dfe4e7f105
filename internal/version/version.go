// Package version provides version information for the scaffold CLI tool.
//
// Overview:
//   - Responsibility: CLI version metadata (version, commit, build time)
//   - Key Types: Version variables and formatting functions
//   - Concurrency Model: Read-only after link time, safe for concurrent use
//   - Error Semantics: No errors
//   - Performance Notes: Build info is read once by versioninfo at init
//
// Release builds set the variables with -ldflags; otherwise they are
// derived from the Go module build info.
//
//	go build -ldflags "-X go.eggybyte.com/scaffold/internal/version.Version=v1.2.0" ./cmd/scaffold
package version

import (
	"fmt"
	"runtime"
	"time"

	"github.com/carlmjohnson/versioninfo"
)

// Version is the CLI version.
var Version = ""

// Commit is the git commit hash.
var Commit = ""

// BuildTime is the build timestamp in RFC3339 format.
var BuildTime = ""

// Info is the resolved version metadata.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	Dirty     bool   `json:"dirty,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get resolves version metadata, preferring link-time values.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		Dirty:     versioninfo.DirtyBuild,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if info.Version == "" {
		info.Version = versioninfo.Version
	}
	if info.Commit == "" {
		info.Commit = shortRevision(versioninfo.Revision)
	}
	if info.BuildTime == "" && !versioninfo.LastCommit.IsZero() {
		info.BuildTime = versioninfo.LastCommit.UTC().Format(time.RFC3339)
	}
	if info.BuildTime == "" {
		info.BuildTime = "unknown"
	}
	return info
}

func shortRevision(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	if rev == "" {
		return "unknown"
	}
	return rev
}

// Short returns a compact version such as "v1.2.0" or "devel-abc1234".
func Short() string {
	if Version != "" {
		return Version
	}
	return versioninfo.Short()
}

// GetVersionString returns the full version string in the format:
// scaffold version v1.2.0 (commit 4a9b2c1, built 2026-10-01T12:10:00Z)
func GetVersionString() string {
	info := Get()
	return fmt.Sprintf("scaffold version %s (commit %s, built %s)", info.Version, info.Commit, info.BuildTime)
}

// GetFullVersionInfo returns detailed version information.
func GetFullVersionInfo() string {
	info := Get()
	return fmt.Sprintf(`scaffold version %s (commit %s, built %s)
go version %s (%s)`,
		info.Version, info.Commit, info.BuildTime,
		info.GoVersion, info.Platform)
}
