package session

import (
	"time"

	"github.com/lyrebird-cli/lyrebird/lyrics"
	"github.com/lyrebird-cli/lyrebird/player"
	"github.com/lyrebird-cli/lyrebird/track"
)

// Row is one line of the visible list.
type Row struct {
	Track track.Track
	// Loaded marks the track that is playing, found by identity rather than index.
	Loaded bool
}

// View is a read-only snapshot for renderers.
type View struct {
	Status      player.Status
	Mode        Mode
	Active      ActiveBackend
	Label       string
	StreamTitle string
	Rows        []Row
	Highlighted int
	ShowAlbum   bool
	ShowArtist  bool
	Shuffle     bool
	Repeat      bool
	Volume      int
	Term        string
	Position    time.Duration
	Duration    time.Duration
	Message     string
	Lyrics      LyricsState
	Frame       lyrics.Frame
}

// Status reports the transport state, counting a released stream as paused.
func (c *Controller) Status() player.Status {
	if c.radioPaused && c.active.backend == nil {
		return player.Paused
	}
	return c.active.status()
}

// Snapshot copies everything a renderer needs.
func (c *Controller) Snapshot() View {
	v := View{
		Status:      c.Status(),
		Mode:        c.Mode,
		Active:      c.active.kind,
		StreamTitle: c.streamTitle,
		Highlighted: c.Highlighted,
		ShowAlbum:   c.ShowAlbum,
		ShowArtist:  c.ShowArtist,
		Shuffle:     c.Shuffle,
		Repeat:      c.Repeat,
		Volume:      c.Volume,
		Term:        c.Term,
		Message:     c.message,
		Lyrics:      c.lyricsState,
		Frame:       c.frame,
	}

	if c.Loaded >= 0 {
		v.Label = c.LoadedTrack.Label()
	}

	if b := c.active.backend; b != nil {
		v.Position = b.Position()
		v.Duration = b.Duration()
	}

	loaded := func(path string, from ActiveBackend) bool {
		return c.Loaded >= 0 && c.LoadedFrom == from && c.LoadedTrack.Path == path
	}

	if c.Mode.radio() {
		v.Rows = make([]Row, len(c.radio))
		for i, e := range c.radio {
			v.Rows[i] = Row{Track: e.Track, Loaded: loaded(e.URL, Radio)}
		}
	} else {
		v.Rows = make([]Row, len(c.tracks))
		for i, t := range c.tracks {
			v.Rows[i] = Row{Track: t, Loaded: loaded(t.Path, Local)}
		}
	}

	return v
}
