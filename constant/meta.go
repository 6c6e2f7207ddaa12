// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

import _ "embed"

const (
	// Lyrebird is the canonical application identifier used for filesystem paths and CLI branding.
	Lyrebird = "lyrebird"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// UserAgent identifies the player to remote lyrics services.
	UserAgent = Lyrebird + "/" + Version + " (+https://github.com/lyrebird-cli/lyrebird)"
)

// Build metadata, overridden through -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// AsciiArtLogo is the banner printed above the root command help.
//
//go:embed ascii.txt
var AsciiArtLogo string
