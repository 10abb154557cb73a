// Package constant defines immutable application-level identifiers and upstream endpoints.
package constant

const (
	// Anistream is the application identifier used for filesystem paths, env prefixes and CLI branding.
	Anistream = "anistream"

	// Version is the current application semantic version string.
	Version = "0.2.0"

	// Repository is the GitHub owner/name pair releases are published under.
	Repository = "anisan-cli/anistream"
)

// Build metadata, overridden with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
