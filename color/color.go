// Package color names the terminal colors used by command output.
// They are indexes into the user's own terminal palette, unlike the fixed
// hex palette of the player screen in package style.
package color

import "github.com/charmbracelet/lipgloss"

// New wraps a color index or hex value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")

	HiRed    = New("9")
	HiPurple = New("13")
)
