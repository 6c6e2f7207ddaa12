package lyrics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lyrebird-cli/lyrebird/log"
)

// ErrNotFound reports that no synced lyrics exist for a track.
var ErrNotFound = errors.New("no lyrics available")

// Query identifies a track to the lyrics service.
type Query struct {
	Artist   string
	Album    string
	Title    string
	Duration int // seconds, 0 when unknown
}

// Source returns raw LRC text for a query, or ErrNotFound.
type Source interface {
	Fetch(ctx context.Context, q Query) (string, error)
}

// maxResponseSize bounds the body read from the lyrics service.
const maxResponseSize = 1 << 20

// Fetcher queries an lrclib compatible /api/get endpoint.
type Fetcher struct {
	Endpoint string
	Client   *http.Client
}

type lrclibResponse struct {
	ID           int    `json:"id"`
	TrackName    string `json:"trackName"`
	ArtistName   string `json:"artistName"`
	Instrumental bool   `json:"instrumental"`
	PlainLyrics  string `json:"plainLyrics"`
	SyncedLyrics string `json:"syncedLyrics"`
}

// URL builds the lookup address for q.
func (f *Fetcher) URL(q Query) (string, error) {
	u, err := url.Parse(f.Endpoint)
	if err != nil {
		return "", fmt.Errorf("parse lyrics endpoint: %w", err)
	}

	params := u.Query()
	params.Set("artist_name", q.Artist)
	params.Set("album_name", q.Album)
	params.Set("track_name", q.Title)
	if q.Duration > 0 {
		params.Set("duration", strconv.Itoa(q.Duration))
	}
	u.RawQuery = params.Encode()
	return u.String(), nil
}

// Fetch returns the synced lyrics text. A 404 or a record without synced lyrics is ErrNotFound.
func (f *Fetcher) Fetch(ctx context.Context, q Query) (string, error) {
	address, err := f.URL(q)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, address, nil)
	if err != nil {
		return "", fmt.Errorf("build lyrics request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("lyrics request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		log.Infof("lyrics not found for %q by %q", q.Title, q.Artist)
		return "", ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("lyrics service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("read lyrics response: %w", err)
	}

	var data lrclibResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return "", fmt.Errorf("parse lyrics response: %w", err)
	}

	if data.SyncedLyrics == "" {
		return "", ErrNotFound
	}
	return data.SyncedLyrics, nil
}
