package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lyrebird-cli/lyrebird/lyrics"
	"github.com/lyrebird-cli/lyrebird/player"
	"github.com/lyrebird-cli/lyrebird/radio"
	"github.com/lyrebird-cli/lyrebird/track"
)

var errBroken = errors.New("broken file")

// fakeBackend records calls into a journal shared by every backend of a test.
type fakeBackend struct {
	name     string
	journal  *[]string
	status   player.Status
	pos      time.Duration
	dur      time.Duration
	target   string
	volume   int
	released bool
	broken   map[string]bool
	title    string
}

func (f *fakeBackend) note(format string, args ...any) {
	*f.journal = append(*f.journal, f.name+":"+fmt.Sprintf(format, args...))
}

func (f *fakeBackend) Status() player.Status   { return f.status }
func (f *fakeBackend) Position() time.Duration { return f.pos }
func (f *fakeBackend) Duration() time.Duration { return f.dur }

func (f *fakeBackend) Load(target string) error {
	f.note("load %s", target)
	if f.broken[target] {
		return errBroken
	}
	f.target = target
	f.status = player.Stopped
	f.pos = 0
	f.released = false
	return nil
}

func (f *fakeBackend) Play() error {
	if f.target == "" {
		return player.ErrNotLoaded
	}
	f.status = player.Playing
	return nil
}

func (f *fakeBackend) Pause() error {
	f.note("pause")
	f.status = player.Paused
	return nil
}

func (f *fakeBackend) Stop() error {
	f.status = player.Stopped
	return nil
}

func (f *fakeBackend) SetVolume(percent int) error {
	f.volume = percent
	return nil
}

func (f *fakeBackend) SeekTo(d time.Duration) error {
	f.pos = d
	return nil
}

func (f *fakeBackend) Release() error {
	f.note("release")
	f.released = true
	f.status = player.Stopped
	f.target = ""
	return nil
}

func (f *fakeBackend) RefreshMetadata() <-chan player.Metadata {
	out := make(chan player.Metadata, 1)
	out <- player.Metadata{Title: f.title, StreamTitle: "Now: " + f.title}
	close(out)
	return out
}

type rig struct {
	journal []string
	local   *fakeBackend
	radio   *fakeBackend
	broken  map[string]bool
}

func newRig() *rig {
	r := &rig{broken: map[string]bool{}}
	r.local = &fakeBackend{name: "local", journal: &r.journal, broken: r.broken}
	r.radio = &fakeBackend{name: "radio", journal: &r.journal, broken: r.broken, title: "Groove Salad"}
	return r
}

func (r *rig) factory() player.Factory {
	return player.Factory{
		Local: func() player.Backend { return r.local },
		Radio: func() player.Backend { return r.radio },
	}
}

func tracks(n int) []track.Track {
	ts := make([]track.Track, n)
	for i := range ts {
		ts[i] = track.Track{
			Path:     fmt.Sprintf("/music/%02d.mp3", i),
			Name:     fmt.Sprintf("%02d.mp3", i),
			Duration: time.Minute,
		}
	}
	return ts
}

func stations() []radio.Entry {
	return []radio.Entry{
		{URL: "http://radio/a", Track: track.Track{Path: "http://radio/a", Name: "http://radio/a", Title: "Alpha"}},
		{URL: "http://radio/b", Track: track.Track{Path: "http://radio/b", Name: "http://radio/b", Title: "Bravo"}},
		{URL: "http://radio/c", Track: track.Track{Path: "http://radio/c", Name: "http://radio/c", Title: "Charlie"}},
	}
}

// instantLyrics delivers results synchronously; the controller's channel is buffered.
type instantLyrics struct {
	lines    []lyrics.Line
	err      error
	requests int
}

func (l *instantLyrics) LoadAsync(_ context.Context, t track.Track, out chan<- lyrics.Result) {
	l.requests++
	out <- lyrics.Result{Path: t.Path, Lines: l.lines, Err: l.err}
}
