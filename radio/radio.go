// Package radio reads internet radio playlists.
package radio

import (
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/lyrebird-cli/lyrebird/constant"
	"github.com/lyrebird-cli/lyrebird/filesystem"
	"github.com/lyrebird-cli/lyrebird/log"
	"github.com/lyrebird-cli/lyrebird/track"
	"github.com/lyrebird-cli/lyrebird/util"
	"github.com/pkg/errors"
	"github.com/ushis/m3u"
)

// Entry pairs the record shown in the list with the stream it plays.
// Keeping both in one value means filtering can never misalign them.
type Entry struct {
	Track track.Track `json:"track"`
	URL   string      `json:"url"`
}

// Tracks projects entries onto their display records.
func Tracks(entries []Entry) []track.Track {
	tracks := make([]track.Track, len(entries))
	for i, e := range entries {
		tracks[i] = e.Track
	}
	return tracks
}

// Load parses every playlist file directly inside dir, in file name order.
// Unreadable playlists are logged and skipped.
func Load(dir string) ([]Entry, error) {
	files, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read radio directory")
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		if !f.IsDir() && util.HasExtension(f.Name(), []string{constant.PlaylistExtension}) {
			names = append(names, f.Name())
		}
	}
	sort.Strings(names)

	var entries []Entry
	for _, name := range names {
		parsed, err := ParseFile(filepath.Join(dir, name))
		if err != nil {
			log.Warnf("skipping playlist %s: %v", name, err)
			continue
		}
		entries = append(entries, parsed...)
	}

	return entries, nil
}

// ParseFile reads one playlist. The file name becomes the album of its entries.
func ParseFile(path string) ([]Entry, error) {
	f, err := filesystem.API().Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open playlist")
	}
	defer f.Close()

	p, err := m3u.Parse(f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse playlist")
	}

	album := util.FileStem(path)
	entries := make([]Entry, 0, len(p))
	for _, t := range p {
		url := strings.TrimSpace(t.Path)
		if url == "" {
			continue
		}

		entries = append(entries, Entry{
			URL: url,
			Track: track.Track{
				Path:     url,
				Name:     url,
				Title:    strings.TrimSpace(t.Title),
				Album:    album,
				Duration: durationOf(t.Time),
			},
		})
	}

	return entries, nil
}

// durationOf converts an EXTINF length; -1 marks a live stream.
func durationOf(secs int64) time.Duration {
	if secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
