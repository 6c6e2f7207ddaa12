// Package session holds the player state machine.
//
// A Controller owns both playlists, the active backend and the lyrics cursor.
// It is driven from a single loop: Dispatch applies one key action, Tick runs the
// periodic work (draining background results, auto-advance, lyrics), and Snapshot
// hands renderers an immutable View. None of its methods are safe for concurrent use.
package session

import (
	"context"
	"time"

	"github.com/lyrebird-cli/lyrebird/lyrics"
	"github.com/lyrebird-cli/lyrebird/player"
	"github.com/lyrebird-cli/lyrebird/playlist"
	"github.com/lyrebird-cli/lyrebird/radio"
	"github.com/lyrebird-cli/lyrebird/track"
)

// Mode selects which list is shown and how.
type Mode int

const (
	LocalBrowse Mode = iota
	LocalLyrics
	RadioBrowse
)

func (m Mode) String() string {
	switch m {
	case LocalLyrics:
		return "lyrics"
	case RadioBrowse:
		return "radio"
	default:
		return "local"
	}
}

func (m Mode) radio() bool { return m == RadioBrowse }

// LyricsLoader fetches lyrics off the calling goroutine.
type LyricsLoader interface {
	LoadAsync(ctx context.Context, t track.Track, out chan<- lyrics.Result)
}

// Options configure a Controller. Zero values fall back to sensible defaults.
type Options struct {
	Tracks []track.Track
	Radio  []radio.Entry

	// Rescan and RescanRadio reread the sources before a search is applied.
	// When nil the lists given above are searched.
	Rescan      func() ([]track.Track, error)
	RescanRadio func() ([]radio.Entry, error)

	Factory   player.Factory
	Navigator *playlist.Navigator
	Matcher   playlist.Matcher
	Lyrics    LyricsLoader

	Volume       int
	VolumeStep   int
	SeekStep     time.Duration
	LyricsWindow int
	ShowAlbum    bool
	ShowArtist   bool
}

// State is the mutable part of a session.
type State struct {
	Mode        Mode
	Highlighted int
	// Loaded indexes the list the loaded track came from, as it was at load time.
	// A later search can leave it pointing elsewhere; LoadedTrack stays authoritative.
	Loaded      int
	LoadedTrack track.Track
	LoadedFrom  ActiveBackend
	Shuffle     bool
	Repeat      bool
	Volume      int
	Term        string
	ShowAlbum   bool
	ShowArtist  bool
}

// Controller is the session state machine.
type Controller struct {
	State

	tracks      []track.Track
	radio       []radio.Entry
	allTracks   []track.Track
	allRadio    []radio.Entry
	rescan      func() ([]track.Track, error)
	rescanRadio func() ([]radio.Entry, error)

	factory  player.Factory
	nav      *playlist.Navigator
	matcher  playlist.Matcher
	loader   LyricsLoader
	active   activePlayback
	volStep  int
	seekStep time.Duration
	window   int

	// explicitStop blocks auto-advance until the next load
	explicitStop bool
	// attempted marks a failed auto-advance so it is not retried every tick
	attempted bool
	// radioPaused is the logical pause of a released stream
	radioPaused bool

	message string

	lyricsPath   string
	lyricsState  LyricsState
	lyricsCancel context.CancelFunc
	lyricsCh     chan lyrics.Result
	sync         *lyrics.Sync
	frame        lyrics.Frame

	metadataCh  <-chan player.Metadata
	streamTitle string

	ctx    context.Context
	cancel context.CancelFunc
	closed bool
}

// New creates a controller over the given lists. Nothing is loaded yet.
func New(opts Options) *Controller {
	ctx, cancel := context.WithCancel(context.Background())

	c := &Controller{
		tracks:      opts.Tracks,
		radio:       opts.Radio,
		allTracks:   opts.Tracks,
		allRadio:    opts.Radio,
		rescan:      opts.Rescan,
		rescanRadio: opts.RescanRadio,
		factory:     opts.Factory,
		nav:         opts.Navigator,
		matcher:     opts.Matcher,
		loader:      opts.Lyrics,
		volStep:     opts.VolumeStep,
		seekStep:    opts.SeekStep,
		window:      opts.LyricsWindow,
		lyricsCh:    make(chan lyrics.Result, 1),
		ctx:         ctx,
		cancel:      cancel,
	}

	if c.nav == nil {
		c.nav = playlist.NewNavigator()
	}
	if c.matcher == nil {
		c.matcher = playlist.Substring
	}
	if c.volStep <= 0 {
		c.volStep = 5
	}
	if c.seekStep <= 0 {
		c.seekStep = 5 * time.Second
	}
	if c.window <= 0 {
		c.window = 3
	}

	c.State = State{
		Mode:       LocalBrowse,
		Loaded:     -1,
		Volume:     clampVolume(opts.Volume),
		ShowAlbum:  opts.ShowAlbum,
		ShowArtist: opts.ShowArtist,
	}

	return c
}

// Tracks returns the local list as currently filtered.
func (c *Controller) Tracks() []track.Track { return c.tracks }

// Radio returns the radio list as currently filtered.
func (c *Controller) Radio() []radio.Entry { return c.radio }

// Message is the inline status text of the last action, if any.
func (c *Controller) Message() string { return c.message }

func (c *Controller) size() int {
	if c.Mode.radio() {
		return len(c.radio)
	}
	return len(c.tracks)
}

func (c *Controller) entry(kind ActiveBackend, idx int) (track.Track, string, bool) {
	if kind == Radio {
		if idx < 0 || idx >= len(c.radio) {
			return track.Track{}, "", false
		}
		e := c.radio[idx]
		return e.Track, e.URL, true
	}

	if idx < 0 || idx >= len(c.tracks) {
		return track.Track{}, "", false
	}
	t := c.tracks[idx]
	return t, t.Path, true
}

// Close releases the active backend and abandons background work. It is idempotent.
func (c *Controller) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.cancel()
	return c.active.release()
}

// Closed reports whether Close has run.
func (c *Controller) Closed() bool { return c.closed }

func clampVolume(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
