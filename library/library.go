// Package library turns a music directory into a list of tracks.
package library

import (
	"errors"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/dhowden/tag"
	"github.com/lyrebird-cli/lyrebird/filesystem"
	"github.com/lyrebird-cli/lyrebird/log"
	"github.com/lyrebird-cli/lyrebird/player"
	"github.com/lyrebird-cli/lyrebird/track"
	"github.com/lyrebird-cli/lyrebird/util"
	pkgerrors "github.com/pkg/errors"
)

// ErrNoTracks is returned when a directory holds no playable files.
var ErrNoTracks = errors.New("no audio files found")

var maxJobs = runtime.GOMAXPROCS(-1)

// Scan lists the audio files directly inside dir, sorted by path.
// Subdirectories are not descended into. Files whose tags cannot be read keep
// their file name as title; files that cannot be decoded have a zero duration.
func Scan(dir string, extensions []string) ([]track.Track, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to resolve music directory")
	}

	entries, err := filesystem.API().ReadDir(abs)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to read music directory")
	}

	tracks := make([]track.Track, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !util.HasExtension(entry.Name(), extensions) {
			continue
		}
		tracks = append(tracks, track.Track{
			Path: filepath.Join(abs, entry.Name()),
			Name: entry.Name(),
		})
	}

	if len(tracks) == 0 {
		return nil, ErrNoTracks
	}

	sort.Slice(tracks, func(i, j int) bool { return tracks[i].Path < tracks[j].Path })

	BatchProbe(tracks, func(i int, err error) {
		if err != nil {
			log.Warnf("%s: %v", tracks[i].Name, err)
		}
	})

	return tracks, nil
}

// Probe fills in tags and duration of t in place.
// A tag error is returned but the duration is still probed.
func Probe(t *track.Track) error {
	tagErr := readTags(t)

	duration, err := probeDuration(t.Path)
	if err != nil {
		log.Debugf("%s: duration unknown: %v", t.Name, err)
	}
	t.Duration = duration

	return tagErr
}

// BatchProbe probes every track on a bounded pool of workers.
// Each worker only touches its own slice element.
func BatchProbe(tracks []track.Track, probed func(int, error)) {
	queue := make(chan int, maxJobs)
	waitg := sync.WaitGroup{}
	waitg.Add(maxJobs)

	for i := 0; i < maxJobs; i++ {
		go func() {
			defer waitg.Done()

			for idx := range queue {
				probed(idx, Probe(&tracks[idx]))
			}
		}()
	}

	for i := range tracks {
		queue <- i
	}

	close(queue)
	waitg.Wait()
}

func readTags(t *track.Track) error {
	f, err := filesystem.API().Open(t.Path)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to open file")
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to read tag")
	}

	t.Title = m.Title()
	t.Artist = stringOr(m.Artist(), m.AlbumArtist())
	t.Album = m.Album()
	return nil
}

var probeDuration = func(path string) (time.Duration, error) {
	return player.Probe(path)
}

func stringOr(str, or string) string {
	if str != "" {
		return str
	}
	return or
}
