package lyrics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lyrebird-cli/lyrebird/log"
	"github.com/lyrebird-cli/lyrebird/track"
	"github.com/lyrebird-cli/lyrebird/util"
)

// Result is the outcome of loading lyrics for one track.
// Err is ErrNotFound when the track has no usable lyrics.
type Result struct {
	Path  string
	Lines []Line
	Err   error
}

// Loader resolves lyrics from the .lrc cache first and the remote source second.
// A nil Remote restricts lookups to the cache.
type Loader struct {
	Cache   Cache
	Remote  Source
	Timeout time.Duration
}

// Load returns the parsed lyrics of t. It blocks on network I/O and is meant to run off the UI loop.
func (l *Loader) Load(ctx context.Context, t track.Track) Result {
	res := Result{Path: t.Path}

	text, ok, err := l.Cache.Read(t.Path)
	if err != nil {
		log.Warnf("%v", err)
	}

	if !ok {
		if l.Remote == nil {
			res.Err = ErrNotFound
			return res
		}

		if l.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, l.Timeout)
			defer cancel()
		}

		text, err = l.Remote.Fetch(ctx, QueryFor(t))
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				log.Warnf("fetch lyrics for %s: %v", t.Path, err)
			}
			res.Err = err
			return res
		}

		if err := l.Cache.Write(t.Path, text); err != nil {
			log.Warnf("%v", err)
		}
	}

	lines, skipped, err := ParseString(text)
	if err != nil {
		res.Err = fmt.Errorf("parse lyrics: %w", err)
		return res
	}
	for _, s := range skipped {
		log.Debugf("lyrics %s: skipped %v", t.Path, s)
	}

	if len(lines) == 0 {
		res.Err = ErrNotFound
		return res
	}

	res.Lines = lines
	return res
}

// LoadAsync runs Load on a goroutine and delivers the result on out.
// The send is abandoned when ctx is cancelled.
func (l *Loader) LoadAsync(ctx context.Context, t track.Track, out chan<- Result) {
	go func() {
		res := l.Load(ctx, t)
		select {
		case out <- res:
		case <-ctx.Done():
		}
	}()
}

// QueryFor derives the lookup fields of a track. Untagged files are looked up by file stem.
func QueryFor(t track.Track) Query {
	title := t.Title
	if title == "" {
		title = util.FileStem(t.Name)
	}

	artist := t.Artist
	if artist == "" {
		artist = title
	}

	album := strings.TrimSpace(t.Album)
	if album == "" {
		album = "Unknown Album"
	}

	return Query{
		Artist:   artist,
		Album:    album,
		Title:    title,
		Duration: int(t.Duration / time.Second),
	}
}
