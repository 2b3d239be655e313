// Package version holds build identification, overridden via -ldflags.
package version

var (
	// Version is the current recognizer release
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)
