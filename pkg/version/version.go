// Package version exposes build metadata injected at link time.
package version

import (
	"fmt"
	"runtime"
)

var (
	// These values are set at build time via -ldflags
	Version   = "dev"     // Version is the semantic version (e.g., v1.2.0)
	GitCommit = "unknown" // GitCommit is the git commit hash
	BuildDate = "unknown" // BuildDate is when the binary was built
)

// BuildInfo represents the complete build information
type BuildInfo struct {
	Version      string `json:"version"`
	GitCommit    string `json:"git_commit"`
	BuildDate    string `json:"build_date"`
	GoVersion    string `json:"go_version"`
	Platform     string `json:"platform"`
	Architecture string `json:"architecture"`
}

// GetBuildInfo returns complete build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:      Version,
		GitCommit:    GitCommit,
		BuildDate:    BuildDate,
		GoVersion:    runtime.Version(),
		Platform:     runtime.GOOS,
		Architecture: runtime.GOARCH,
	}
}

// GetShortVersion returns a concise version string for display
func GetShortVersion() string {
	if GitCommit != "unknown" && len(GitCommit) >= 7 {
		return fmt.Sprintf("%s (%s)", Version, GitCommit[:7])
	}
	return Version
}

// GetLongVersion returns detailed version information for --version output
func GetLongVersion() string {
	info := GetBuildInfo()

	output := fmt.Sprintf("protostage version %s\n", GetShortVersion())
	if info.BuildDate != "unknown" {
		output += fmt.Sprintf("Built: %s\n", info.BuildDate)
	}
	output += fmt.Sprintf("Go: %s\n", info.GoVersion)
	output += fmt.Sprintf("Platform: %s/%s", info.Platform, info.Architecture)
	return output
}
