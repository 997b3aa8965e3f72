// ============================================================================
// textkit - Unicode Text Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for the toolkit and its packages
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for textkit and its foundation packages
const (
	// Toolkit version
	Toolkit = "0.1.0"

	// Package versions
	Textx  = "0.1.0"
	Slicex = "0.2.0"
	Config = "0.2.0"
	Log    = "0.2.0"
	Errors = "0.2.0"
)

// Build metadata, set via -ldflags "-X github.com/msto63/textkit/pkg/core/version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Components lists the package names known to ComponentVersion
var Components = []string{"textx", "slicex", "config", "log", "errors"}

// ComponentVersion returns the version for a given package name
func ComponentVersion(name string) string {
	switch name {
	case "textx":
		return Textx
	case "slicex":
		return Slicex
	case "config":
		return Config
	case "log":
		return Log
	case "errors":
		return Errors
	default:
		return Toolkit
	}
}

// Info describes the running binary
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Toolkit,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a one line summary
func (i Info) String() string {
	return fmt.Sprintf("textkit v%s (%s, built %s)", i.Version, i.GitCommit, i.BuildDate)
}
