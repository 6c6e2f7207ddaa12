package session

import (
	"github.com/lyrebird-cli/lyrebird/log"
	"github.com/lyrebird-cli/lyrebird/player"
)

// Tick runs the periodic work: background results are applied, a finished
// track is followed by the next one and the lyrics cursor catches up.
func (c *Controller) Tick() {
	if c.closed {
		return
	}

	c.drainLyrics()
	c.drainMetadata()
	c.autoAdvance()
	c.advanceLyrics()
}

// autoAdvance starts the next track once the loaded one has ended by itself.
// A stream never ends by itself, so for radio the metadata is refreshed instead.
func (c *Controller) autoAdvance() {
	if c.active.backend == nil || c.Loaded < 0 || c.explicitStop {
		return
	}

	if c.active.status() != player.Stopped {
		c.attempted = false
		return
	}
	if c.attempted {
		return
	}
	c.attempted = true

	if c.active.kind == Radio {
		c.refreshMetadata()
		return
	}

	// a search may have moved the loaded track or dropped it from the list
	base := c.indexOfLoaded(Local)
	if base < 0 {
		base = c.Loaded
	}

	if c.Repeat {
		if err := c.start(Local, base, c.LoadedTrack, c.LoadedTrack.Path); err != nil {
			c.message = err.Error()
		}
		return
	}

	size := len(c.tracks)
	if size == 0 {
		return
	}

	next := c.nav.Next(base, size, c.Shuffle)
	if next >= size {
		next = 0
	}

	if err := c.load(Local, next); err != nil {
		c.message = err.Error()
		return
	}
	log.Debugf("advanced to %d", next)
}

func (c *Controller) refreshMetadata() {
	src, ok := c.active.backend.(player.MetadataSource)
	if !ok || c.metadataCh != nil {
		return
	}
	c.metadataCh = src.RefreshMetadata()
}

func (c *Controller) drainMetadata() {
	if c.metadataCh == nil {
		return
	}

	select {
	case md, ok := <-c.metadataCh:
		c.metadataCh = nil
		if !ok {
			return
		}
		if md.StreamTitle != "" {
			c.streamTitle = md.StreamTitle
		} else {
			c.streamTitle = md.Title
		}
	default:
	}
}
