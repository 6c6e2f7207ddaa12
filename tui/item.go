package tui

import (
	"github.com/lyrebird-cli/lyrebird/icon"
	"github.com/lyrebird-cli/lyrebird/session"
	"github.com/lyrebird-cli/lyrebird/style"
	"github.com/lyrebird-cli/lyrebird/track"
	"github.com/lyrebird-cli/lyrebird/util"
	"github.com/mattn/go-runewidth"
)

const (
	markWidth     = 3
	durationWidth = 6
	maxSideColumn = 24
)

// columns splits the list width between title, artist, album and duration.
type columns struct {
	title, artist, album int
}

func newColumns(width int, showArtist, showAlbum bool) columns {
	rest := util.Max(width-markWidth-durationWidth, 10)

	var c columns
	side := 0
	if showArtist {
		side++
	}
	if showAlbum {
		side++
	}

	sideWidth := 0
	if side > 0 {
		sideWidth = util.Min(rest/(side+2), maxSideColumn)
	}
	if showArtist {
		c.artist = sideWidth
	}
	if showAlbum {
		c.album = sideWidth
	}
	c.title = rest - side*sideWidth
	return c
}

func cell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width-1, "..."), width)
}

func (c columns) render(row session.Row, highlighted bool) string {
	mark := "  "
	if row.Loaded {
		mark = icon.Get(icon.Playing)
	}
	mark = cell(mark, markWidth)

	t := row.Track
	line := cell(t.Display(), c.title) + cell(t.Artist, c.artist) + cell(t.Album, c.album)
	if t.Duration > 0 {
		line += track.FormatTime(t.Duration)
	}

	switch {
	case highlighted:
		return mark + style.New().Bold(true).Foreground(style.AccentColor).Render(line)
	case row.Loaded:
		return mark + style.Fg(style.PlayingColor)(line)
	default:
		return mark + line
	}
}
