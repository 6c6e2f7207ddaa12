package session

import (
	"fmt"
	"time"

	"github.com/lyrebird-cli/lyrebird/keybind"
	"github.com/lyrebird-cli/lyrebird/log"
	"github.com/lyrebird-cli/lyrebird/player"
	"github.com/lyrebird-cli/lyrebird/playlist"
	"github.com/lyrebird-cli/lyrebird/radio"
	"github.com/lyrebird-cli/lyrebird/track"
)

// Effect tells the input loop what to do after an action.
type Effect int

const (
	Continue Effect = iota
	PromptSearch
	Exit
)

// Dispatch applies a single action and then gives auto-advance a chance to run.
// Search only asks the caller to collect a term, which is then passed to Search.
func (c *Controller) Dispatch(a keybind.Action) Effect {
	if c.closed {
		return Exit
	}

	switch a {
	case keybind.MoveUp:
		c.Highlighted = c.nav.Previous(c.Highlighted, c.size())
	case keybind.MoveDown:
		c.Highlighted = c.nav.Next(c.Highlighted, c.size(), false)
	case keybind.Activate:
		c.activate()
	case keybind.TogglePause:
		c.togglePause()
	case keybind.Stop:
		c.stop()
	case keybind.SeekLeft:
		c.seek(-c.seekStep)
	case keybind.SeekRight:
		c.seek(c.seekStep)
	case keybind.VolumeUp:
		c.setVolume(c.Volume + c.volStep)
	case keybind.VolumeDown:
		c.setVolume(c.Volume - c.volStep)
	case keybind.ToggleShuffle:
		c.Shuffle = !c.Shuffle
	case keybind.ToggleRepeat:
		c.Repeat = !c.Repeat
	case keybind.ToggleShowAlbum:
		c.ShowAlbum = !c.ShowAlbum
	case keybind.ToggleShowArtist:
		c.ShowArtist = !c.ShowArtist
	case keybind.ToggleLyrics:
		c.toggleLyrics()
	case keybind.ToggleRadioMode:
		c.toggleRadioMode()
	case keybind.Search:
		return PromptSearch
	case keybind.Quit:
		if err := c.Close(); err != nil {
			log.Warnf("close session: %v", err)
		}
		return Exit
	}

	c.autoAdvance()
	return Continue
}

func (c *Controller) activate() {
	if c.size() == 0 {
		c.message = "nothing to play"
		return
	}

	kind := Local
	if c.Mode.radio() {
		kind = Radio
	}

	if err := c.load(kind, c.Highlighted); err != nil {
		c.message = err.Error()
	}
}

// load binds the backend for kind and starts entry idx of its list.
// On failure the loaded track and flags are left as they were.
func (c *Controller) load(kind ActiveBackend, idx int) error {
	t, target, ok := c.entry(kind, idx)
	if !ok {
		return fmt.Errorf("no entry at %d", idx)
	}
	return c.start(kind, idx, t, target)
}

// start plays target on the backend of kind and records t as loaded at idx.
// It does not consult the visible list, so a track hidden by a search can be replayed.
func (c *Controller) start(kind ActiveBackend, idx int, t track.Track, target string) error {
	b, err := c.bind(kind)
	if err != nil {
		return fmt.Errorf("audio backend: %w", err)
	}

	if err := b.Load(target); err != nil {
		log.Warnf("load %s: %v", target, err)
		return fmt.Errorf("cannot play %s: %w", t.Display(), err)
	}
	if err := b.Play(); err != nil {
		log.Warnf("play %s: %v", target, err)
		return fmt.Errorf("cannot play %s: %w", t.Display(), err)
	}

	changed := c.LoadedTrack.Path != t.Path || c.LoadedFrom != kind
	c.Loaded = idx
	c.LoadedTrack = t
	c.LoadedFrom = kind
	c.explicitStop = false
	c.attempted = false
	c.radioPaused = false
	c.message = ""

	if kind == Radio {
		c.streamTitle = ""
		c.metadataCh = nil
		c.refreshMetadata()
	}
	c.resetLyrics(changed)

	log.Infof("playing %s", target)
	return nil
}

func (c *Controller) togglePause() {
	if c.active.kind == None && c.radioPaused {
		c.resumeRadio()
		return
	}

	switch c.active.status() {
	case player.Playing:
		if c.active.kind == Radio {
			// streams have no pause: drop the connection and reconnect on resume
			if err := c.active.release(); err != nil {
				c.message = err.Error()
			}
			c.radioPaused = true
			return
		}
		if err := c.active.backend.Pause(); err != nil {
			c.message = err.Error()
		}
	case player.Paused:
		if err := c.active.backend.Play(); err != nil {
			c.message = err.Error()
		}
	}
}

func (c *Controller) resumeRadio() {
	idx := c.indexOfLoaded(Radio)
	if idx < 0 {
		c.radioPaused = false
		c.message = "stream is no longer listed"
		return
	}
	if err := c.load(Radio, idx); err != nil {
		c.message = err.Error()
	}
}

// indexOfLoaded finds the loaded track in the current list of kind, or -1.
func (c *Controller) indexOfLoaded(kind ActiveBackend) int {
	if kind == Radio {
		for i, e := range c.radio {
			if e.URL == c.LoadedTrack.Path {
				return i
			}
		}
		return -1
	}

	for i, t := range c.tracks {
		if t.Path == c.LoadedTrack.Path {
			return i
		}
	}
	return -1
}

func (c *Controller) stop() {
	c.radioPaused = false
	if c.active.backend == nil {
		return
	}

	c.explicitStop = true
	if err := c.active.backend.Stop(); err != nil {
		c.message = err.Error()
	}
}

func (c *Controller) seek(delta time.Duration) {
	if c.active.status() == player.Stopped {
		return
	}

	b := c.active.backend
	duration := b.Duration()
	if duration <= 0 {
		return
	}

	target := b.Position() + delta
	switch {
	case target < 0:
		target = 0
	case target > duration:
		target = duration
	}

	if err := b.SeekTo(target); err != nil {
		c.message = err.Error()
		return
	}
	if c.sync != nil && delta < 0 {
		// the cursor only moves forward
		c.sync.Reset()
	}
}

func (c *Controller) setVolume(v int) {
	c.Volume = clampVolume(v)
	if c.active.backend == nil {
		return
	}
	if err := c.active.backend.SetVolume(c.Volume); err != nil {
		c.message = err.Error()
	}
}

func (c *Controller) toggleLyrics() {
	switch c.Mode {
	case LocalBrowse:
		c.Mode = LocalLyrics
		c.requestLyrics()
	case LocalLyrics:
		c.Mode = LocalBrowse
	default:
		c.message = "lyrics are only available for local tracks"
	}
}

// toggleRadioMode switches lists. The cursor lands on the last entry of the
// newly shown list.
func (c *Controller) toggleRadioMode() {
	if c.Mode.radio() {
		c.Mode = LocalBrowse
		c.Highlighted = c.nav.Last(len(c.tracks))
		return
	}

	if len(c.radio) == 0 {
		c.message = "no radio playlists loaded"
		return
	}

	if c.active.kind == Local && c.active.status() == player.Playing {
		if err := c.active.backend.Pause(); err != nil {
			c.message = err.Error()
		}
	}

	c.Mode = RadioBrowse
	c.Highlighted = c.nav.Last(len(c.radio))
}

// Search rereads the list of the current mode and keeps the entries whose
// display name matches term. The cursor returns to the top. Playback is not
// touched, so the loaded track may no longer be listed.
func (c *Controller) Search(term string) {
	c.Term = term

	if c.Mode.radio() {
		if c.rescanRadio != nil {
			fresh, err := c.rescanRadio()
			if err != nil {
				c.message = fmt.Sprintf("rescan radio: %v", err)
			} else {
				c.allRadio = fresh
			}
		}
		c.radio = playlist.Filter(c.allRadio, term, func(e radio.Entry) string { return e.Track.Display() }, c.matcher)
	} else {
		if c.rescan != nil {
			fresh, err := c.rescan()
			if err != nil {
				c.message = fmt.Sprintf("rescan: %v", err)
			} else {
				c.allTracks = fresh
			}
		}
		c.tracks = playlist.Filter(c.allTracks, term, track.Track.Display, c.matcher)
	}

	c.Highlighted = 0
	if c.size() == 0 {
		c.message = fmt.Sprintf("nothing matches %q", term)
	}
}
