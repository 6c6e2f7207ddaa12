// Package track defines the immutable record shared by the library scanner, the radio loader and the player.
package track

import (
	"fmt"
	"strings"
	"time"
)

// Track is a playable entry. Its identity is Path, an absolute file path or a stream URL.
type Track struct {
	Path     string        `json:"path" jsonschema:"description=Absolute file path or stream URL"`
	Name     string        `json:"name" jsonschema:"description=File name used when no title tag is present"`
	Title    string        `json:"title,omitempty"`
	Artist   string        `json:"artist,omitempty"`
	Album    string        `json:"album,omitempty"`
	Duration time.Duration `json:"duration,omitempty" jsonschema:"description=Length in nanoseconds; zero when unknown"`
}

// Display is the label shown in lists and matched by search.
func (t Track) Display() string {
	if t.Title != "" {
		return t.Title
	}
	return t.Name
}

// Label is the "now playing" text: artist and title when both are known.
func (t Track) Label() string {
	if t.Artist != "" && t.Title != "" {
		return t.Artist + " - " + t.Title
	}
	return t.Display()
}

// FormatTime renders d as mm:ss. Minutes are not wrapped at an hour.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Progress returns elapsed/total in [0, 1]. A non-positive total yields 0.
func Progress(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	p := float64(elapsed) / float64(total)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// ProgressBar renders "mm:ss [====      ] mm:ss" with a bar of width cells.
func ProgressBar(elapsed, total time.Duration, width int) string {
	if width < 0 {
		width = 0
	}
	filled := int(Progress(elapsed, total) * float64(width))

	var b strings.Builder
	b.WriteString(FormatTime(elapsed))
	b.WriteString(" [")
	b.WriteString(strings.Repeat("=", filled))
	b.WriteString(strings.Repeat(" ", width-filled))
	b.WriteString("] ")
	b.WriteString(FormatTime(total))
	return b.String()
}
