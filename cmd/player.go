package cmd

import (
	"fmt"

	"github.com/lyrebird-cli/lyrebird/config"
	"github.com/lyrebird-cli/lyrebird/key"
	"github.com/lyrebird-cli/lyrebird/library"
	"github.com/lyrebird-cli/lyrebird/lyrics"
	"github.com/lyrebird-cli/lyrebird/network"
	"github.com/lyrebird-cli/lyrebird/player"
	"github.com/lyrebird-cli/lyrebird/playlist"
	"github.com/lyrebird-cli/lyrebird/radio"
	"github.com/lyrebird-cli/lyrebird/session"
	"github.com/lyrebird-cli/lyrebird/track"
	"github.com/spf13/viper"
)

func playlistMatchers() []string {
	return playlist.MatcherNames()
}

// newController scans the sources and assembles a session around them.
// radioDir may be empty.
func newController(musicDir, radioDir string) (*session.Controller, error) {
	extensions := viper.GetStringSlice(key.LibraryExtensions)

	scan := func() ([]track.Track, error) {
		return library.Scan(musicDir, extensions)
	}

	tracks, err := scan()
	if err != nil {
		return nil, err
	}

	var (
		stations    []radio.Entry
		rescanRadio func() ([]radio.Entry, error)
	)
	if radioDir != "" {
		rescanRadio = func() ([]radio.Entry, error) {
			return radio.Load(radioDir)
		}

		if stations, err = rescanRadio(); err != nil {
			return nil, fmt.Errorf("radio directory: %w", err)
		}
	}

	matcher, err := playlist.ParseMatcher(viper.GetString(key.SearchMatcher))
	if err != nil {
		return nil, err
	}

	return session.New(session.Options{
		Tracks:       tracks,
		Radio:        stations,
		Rescan:       scan,
		RescanRadio:  rescanRadio,
		Factory:      player.DefaultFactory(viper.GetString(key.PlayerRadioBackend)),
		Matcher:      matcher,
		Lyrics:       newLyricsLoader(),
		Volume:       config.Volume(),
		VolumeStep:   config.VolumeStep(),
		SeekStep:     config.SeekStep(),
		LyricsWindow: viper.GetInt(key.LyricsWindow),
		ShowAlbum:    viper.GetBool(key.TUIShowAlbum),
		ShowArtist:   viper.GetBool(key.TUIShowArtist),
	}), nil
}

func newLyricsLoader() *lyrics.Loader {
	loader := &lyrics.Loader{Timeout: config.LyricsTimeout()}

	if viper.GetBool(key.LyricsEnabled) {
		loader.Remote = &lyrics.Fetcher{
			Endpoint: viper.GetString(key.LyricsEndpoint),
			Client:   network.Client,
		}
	}

	return loader
}
