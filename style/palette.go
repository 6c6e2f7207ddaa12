package style

import "github.com/charmbracelet/lipgloss"

var (
	mauve  = lipgloss.Color("#cba6f7")
	red    = lipgloss.Color("#f38ba8")
	yellow = lipgloss.Color("#f9e2af")
	green  = lipgloss.Color("#a6e3a1")
)

// Palette defines the application's color scheme.
var (
	Text = lipgloss.Color("#cdd6f4")

	AccentColor = mauve
	ErrorColor  = red
	HiRed       = red

	// Playback status colors.
	PlayingColor = green
	PausedColor  = yellow
	StoppedColor = red
)
