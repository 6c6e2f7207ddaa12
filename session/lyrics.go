package session

import (
	"context"
	"errors"

	"github.com/lyrebird-cli/lyrebird/log"
	"github.com/lyrebird-cli/lyrebird/lyrics"
)

// LyricsState tracks the lyrics of the loaded track.
type LyricsState int

const (
	LyricsNone LyricsState = iota
	LyricsLoading
	LyricsReady
	LyricsMissing
)

// resetLyrics is called on every load. A new track drops the old lyrics and a
// reloaded one rewinds the cursor.
func (c *Controller) resetLyrics(changed bool) {
	if !changed {
		if c.sync != nil {
			c.sync.Reset()
		}
		return
	}

	if c.lyricsCancel != nil {
		c.lyricsCancel()
		c.lyricsCancel = nil
	}
	c.sync = nil
	c.frame = lyrics.Frame{}
	c.lyricsPath = ""
	c.lyricsState = LyricsNone

	if c.Mode == LocalLyrics {
		c.requestLyrics()
	}
}

// requestLyrics starts loading lyrics of the loaded local track unless they
// are already loaded or under way. A miss is fetched again.
func (c *Controller) requestLyrics() {
	if c.loader == nil || c.LoadedFrom != Local || c.LoadedTrack.Path == "" {
		return
	}
	if c.lyricsPath == c.LoadedTrack.Path && (c.lyricsState == LyricsLoading || c.lyricsState == LyricsReady) {
		return
	}

	if c.lyricsCancel != nil {
		c.lyricsCancel()
	}

	ctx, cancel := context.WithCancel(c.ctx)
	c.lyricsCancel = cancel
	c.lyricsPath = c.LoadedTrack.Path
	c.lyricsState = LyricsLoading
	c.loader.LoadAsync(ctx, c.LoadedTrack, c.lyricsCh)
}

// drainLyrics accepts a finished load if it belongs to the loaded track.
func (c *Controller) drainLyrics() {
	select {
	case res := <-c.lyricsCh:
		if res.Path != c.lyricsPath {
			return
		}

		if c.lyricsCancel != nil {
			c.lyricsCancel()
			c.lyricsCancel = nil
		}

		if res.Err != nil || len(res.Lines) == 0 {
			if res.Err != nil && !errors.Is(res.Err, lyrics.ErrNotFound) {
				log.Warnf("lyrics for %s: %v", res.Path, res.Err)
			}
			c.lyricsState = LyricsMissing
			return
		}

		c.sync = lyrics.NewSync(res.Lines)
		c.lyricsState = LyricsReady
	default:
	}
}

func (c *Controller) advanceLyrics() {
	if c.sync == nil || c.active.kind != Local {
		return
	}

	b := c.active.backend
	c.frame = c.sync.Render(b.Position(), b.Duration(), c.window, 1)
}
