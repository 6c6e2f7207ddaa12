package session

import (
	"testing"
	"time"

	"github.com/lyrebird-cli/lyrebird/keybind"
	"github.com/lyrebird-cli/lyrebird/lyrics"
	"github.com/lyrebird-cli/lyrebird/player"
	"github.com/lyrebird-cli/lyrebird/playlist"
	"github.com/lyrebird-cli/lyrebird/track"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func newController(r *rig, n int, withRadio bool) *Controller {
	opts := Options{
		Tracks:     tracks(n),
		Factory:    r.factory(),
		Navigator:  playlist.NewSeededNavigator(1),
		Volume:     100,
		ShowAlbum:  true,
		ShowArtist: true,
	}
	if withRadio {
		opts.Radio = stations()
	}
	return New(opts)
}

func TestNavigation(t *testing.T) {
	Convey("Given three tracks", t, func() {
		c := newController(newRig(), 3, false)

		Convey("When moving up from the top", func() {
			c.Dispatch(keybind.MoveUp)

			Convey("Then the cursor wraps to the bottom", func() {
				So(c.Highlighted, ShouldEqual, 2)
			})
		})

		Convey("When moving down past the bottom", func() {
			for i := 0; i < 3; i++ {
				c.Dispatch(keybind.MoveDown)
			}

			Convey("Then the cursor wraps to the top", func() {
				So(c.Highlighted, ShouldEqual, 0)
			})
		})

		Convey("When moving the cursor", func() {
			c.Dispatch(keybind.MoveDown)

			Convey("Then nothing is loaded", func() {
				So(c.Loaded, ShouldEqual, -1)
				So(c.Status(), ShouldEqual, player.Stopped)
			})
		})
	})
}

func TestActivate(t *testing.T) {
	Convey("Given three tracks", t, func() {
		r := newRig()
		c := newController(r, 3, false)

		Convey("When the second is activated", func() {
			c.Dispatch(keybind.MoveDown)
			c.Dispatch(keybind.Activate)

			Convey("Then it plays and is marked loaded", func() {
				So(c.Status(), ShouldEqual, player.Playing)
				So(c.Loaded, ShouldEqual, 1)
				So(r.local.target, ShouldEqual, "/music/01.mp3")
				So(r.local.volume, ShouldEqual, 100)

				v := c.Snapshot()
				So(v.Label, ShouldEqual, "01.mp3")
				So(v.Rows[1].Loaded, ShouldBeTrue)
				So(v.Rows[0].Loaded, ShouldBeFalse)
			})

			Convey("Then moving the cursor keeps playback", func() {
				c.Dispatch(keybind.MoveDown)
				So(c.Highlighted, ShouldEqual, 2)
				So(c.Loaded, ShouldEqual, 1)
				So(r.local.target, ShouldEqual, "/music/01.mp3")
			})
		})

		Convey("When a file fails to load", func() {
			c.Dispatch(keybind.Activate)
			r.broken["/music/02.mp3"] = true
			c.Dispatch(keybind.MoveUp)
			c.Dispatch(keybind.Activate)

			Convey("Then the error is shown and the loaded track is kept", func() {
				So(c.Message(), ShouldContainSubstring, "02.mp3")
				So(c.Loaded, ShouldEqual, 0)
				So(c.LoadedTrack.Path, ShouldEqual, "/music/00.mp3")
			})
		})
	})
}

func TestPauseAndStop(t *testing.T) {
	Convey("Given a playing track", t, func() {
		r := newRig()
		c := newController(r, 3, false)
		c.Dispatch(keybind.Activate)

		Convey("When pause is toggled twice", func() {
			c.Dispatch(keybind.TogglePause)
			So(c.Status(), ShouldEqual, player.Paused)
			c.Dispatch(keybind.TogglePause)

			Convey("Then it plays again", func() {
				So(c.Status(), ShouldEqual, player.Playing)
			})
		})

		Convey("When it is stopped", func() {
			c.Dispatch(keybind.Stop)
			c.Tick()

			Convey("Then auto-advance does not fire", func() {
				So(c.Status(), ShouldEqual, player.Stopped)
				So(c.Loaded, ShouldEqual, 0)
				So(r.journal, ShouldResemble, []string{"local:load /music/00.mp3"})
			})

			Convey("Then pause is a no-op", func() {
				c.Dispatch(keybind.TogglePause)
				So(c.Status(), ShouldEqual, player.Stopped)
			})
		})
	})
}

func TestVolume(t *testing.T) {
	Convey("Given a playing track", t, func() {
		r := newRig()
		c := newController(r, 3, false)
		c.Dispatch(keybind.Activate)

		Convey("When volume goes up from 98", func() {
			c.setVolume(98)
			c.Dispatch(keybind.VolumeUp)

			Convey("Then it stops at 100", func() {
				So(c.Volume, ShouldEqual, 100)
				So(r.local.volume, ShouldEqual, 100)
			})
		})

		Convey("When volume goes down from 2", func() {
			c.setVolume(2)
			c.Dispatch(keybind.VolumeDown)

			Convey("Then it stops at 0", func() {
				So(c.Volume, ShouldEqual, 0)
				So(r.local.volume, ShouldEqual, 0)
			})
		})
	})
}

func TestSeek(t *testing.T) {
	Convey("Given a one minute track", t, func() {
		r := newRig()
		c := newController(r, 3, false)
		c.Dispatch(keybind.Activate)
		r.local.dur = time.Minute

		Convey("When seeking forward two seconds before the end", func() {
			r.local.pos = time.Minute - 2*time.Second
			c.Dispatch(keybind.SeekRight)

			Convey("Then the position lands on the end", func() {
				So(r.local.pos, ShouldEqual, time.Minute)
			})
		})

		Convey("When seeking back near the start", func() {
			r.local.pos = 3 * time.Second
			c.Dispatch(keybind.SeekLeft)

			Convey("Then the position lands on zero", func() {
				So(r.local.pos, ShouldEqual, 0)
			})
		})

		Convey("When stopped", func() {
			c.Dispatch(keybind.Stop)
			r.local.pos = 10 * time.Second
			c.Dispatch(keybind.SeekRight)

			Convey("Then seeking does nothing", func() {
				So(r.local.pos, ShouldEqual, 10*time.Second)
			})
		})
	})
}

func TestAutoAdvance(t *testing.T) {
	Convey("Given five tracks with the last one loaded", t, func() {
		r := newRig()
		c := newController(r, 5, false)
		c.Dispatch(keybind.MoveUp)
		c.Dispatch(keybind.Activate)
		So(c.Loaded, ShouldEqual, 4)

		Convey("When it ends", func() {
			r.local.status = player.Stopped
			c.Tick()

			Convey("Then playback wraps to the first track", func() {
				So(c.Loaded, ShouldEqual, 0)
				So(r.local.target, ShouldEqual, "/music/00.mp3")
				So(c.Status(), ShouldEqual, player.Playing)
				So(c.Highlighted, ShouldEqual, 4)
			})
		})

		Convey("When it ends with repeat on", func() {
			c.Dispatch(keybind.ToggleRepeat)
			r.local.status = player.Stopped
			c.Tick()

			Convey("Then the same track is reloaded", func() {
				So(c.Loaded, ShouldEqual, 4)
				So(lo.Count(r.journal, "local:load /music/04.mp3"), ShouldEqual, 2)
			})
		})

		Convey("When it ends with repeat on after a search hid it", func() {
			c.Dispatch(keybind.ToggleRepeat)
			c.Search("00")
			r.local.status = player.Stopped
			c.Tick()

			Convey("Then the hidden track is replayed", func() {
				So(r.local.target, ShouldEqual, "/music/04.mp3")
				So(c.LoadedTrack.Path, ShouldEqual, "/music/04.mp3")
				So(lo.Count(r.journal, "local:load /music/00.mp3"), ShouldEqual, 0)
				So(c.Status(), ShouldEqual, player.Playing)
			})
		})

		Convey("When the next track is broken", func() {
			r.broken["/music/00.mp3"] = true
			r.local.status = player.Stopped
			c.Tick()
			c.Tick()
			c.Tick()

			Convey("Then it is attempted once and the error is shown", func() {
				So(lo.Count(r.journal, "local:load /music/00.mp3"), ShouldEqual, 1)
				So(c.Message(), ShouldContainSubstring, "00.mp3")
			})
		})

		Convey("When shuffle is on", func() {
			c.Dispatch(keybind.ToggleShuffle)
			seen := map[int]bool{}
			for i := 0; i < 200; i++ {
				r.local.status = player.Stopped
				c.Tick()
				seen[c.Loaded] = true
			}

			Convey("Then every track is eventually played", func() {
				So(seen, ShouldHaveLength, 5)
			})
		})
	})
}

func TestRadio(t *testing.T) {
	Convey("Given local tracks and radio stations", t, func() {
		r := newRig()
		c := newController(r, 3, true)

		Convey("When switching to radio while a track plays", func() {
			c.Dispatch(keybind.Activate)
			c.Dispatch(keybind.ToggleRadioMode)

			Convey("Then the local track pauses and the cursor sits on the last station", func() {
				So(c.Mode, ShouldEqual, RadioBrowse)
				So(r.local.status, ShouldEqual, player.Paused)
				So(c.Highlighted, ShouldEqual, 2)
			})

			Convey("Then activating a station releases the local backend first", func() {
				c.Dispatch(keybind.Activate)

				So(r.journal, ShouldResemble, []string{
					"local:load /music/00.mp3",
					"local:pause",
					"local:release",
					"radio:load http://radio/c",
				})
				So(r.local.released, ShouldBeTrue)
				So(c.Status(), ShouldEqual, player.Playing)
				So(c.Snapshot().Active, ShouldEqual, Radio)
			})
		})

		Convey("When a station is playing", func() {
			c.Dispatch(keybind.ToggleRadioMode)
			c.Dispatch(keybind.Activate)

			Convey("Then its metadata arrives on the next tick", func() {
				c.Tick()
				So(c.Snapshot().StreamTitle, ShouldEqual, "Now: Groove Salad")
			})

			Convey("Then pausing releases the stream but reads as paused", func() {
				c.Dispatch(keybind.TogglePause)
				So(r.radio.released, ShouldBeTrue)
				So(c.Status(), ShouldEqual, player.Paused)

				c.Tick()
				So(c.Status(), ShouldEqual, player.Paused)

				Convey("And resuming reconnects", func() {
					c.Dispatch(keybind.TogglePause)
					So(c.Status(), ShouldEqual, player.Playing)
					So(lo.Count(r.journal, "radio:load http://radio/c"), ShouldEqual, 2)
				})
			})

			Convey("Then a dropped stream refreshes metadata instead of changing station", func() {
				r.radio.status = player.Stopped
				c.Tick()
				c.Tick()
				So(c.Loaded, ShouldEqual, 2)
				So(lo.Count(r.journal, "radio:load http://radio/c"), ShouldEqual, 1)
			})
		})

		Convey("When switching back to local", func() {
			c.Dispatch(keybind.ToggleRadioMode)
			c.Dispatch(keybind.ToggleRadioMode)

			Convey("Then the cursor sits on the last track", func() {
				So(c.Mode, ShouldEqual, LocalBrowse)
				So(c.Highlighted, ShouldEqual, 2)
			})
		})
	})

	Convey("Given no radio stations", t, func() {
		c := newController(newRig(), 3, false)
		c.Dispatch(keybind.ToggleRadioMode)

		Convey("Then radio mode cannot be entered", func() {
			So(c.Mode, ShouldEqual, LocalBrowse)
			So(c.Message(), ShouldNotBeEmpty)
		})
	})
}

func TestSearch(t *testing.T) {
	Convey("Given a playing track", t, func() {
		r := newRig()
		c := newController(r, 12, false)
		c.Dispatch(keybind.MoveDown)
		c.Dispatch(keybind.Activate)

		Convey("When searching for other tracks", func() {
			c.Search("1")

			Convey("Then the list is filtered and the cursor reset", func() {
				So(lo.Map(c.Tracks(), func(t track.Track, _ int) string { return t.Name }), ShouldResemble,
					[]string{"01.mp3", "10.mp3", "11.mp3"})
				So(c.Highlighted, ShouldEqual, 0)
				So(c.Snapshot().Term, ShouldEqual, "1")
			})

			Convey("Then playback continues and the loaded row is found by path", func() {
				So(c.Status(), ShouldEqual, player.Playing)
				So(c.Snapshot().Rows[0].Loaded, ShouldBeTrue)
			})

			Convey("Then clearing the search restores every track", func() {
				c.Search("")
				So(c.Tracks(), ShouldHaveLength, 12)
			})
		})

		Convey("When the search matches nothing", func() {
			c.Search("zzz")
			c.Dispatch(keybind.Activate)

			Convey("Then activation is refused and playback continues", func() {
				So(c.Tracks(), ShouldBeEmpty)
				So(c.Message(), ShouldEqual, "nothing to play")
				So(c.LoadedTrack.Name, ShouldEqual, "01.mp3")
			})
		})

		Convey("When the source is rescanned", func() {
			c.rescan = func() ([]track.Track, error) { return tracks(2), nil }
			c.Search("")

			Convey("Then the fresh list is used", func() {
				So(c.Tracks(), ShouldHaveLength, 2)
			})
		})

		Convey("When the search key is pressed", func() {
			Convey("Then the caller is asked for a term", func() {
				So(c.Dispatch(keybind.Search), ShouldEqual, PromptSearch)
			})
		})
	})
}

func TestLyrics(t *testing.T) {
	Convey("Given a track with lyrics", t, func() {
		r := newRig()
		loader := &instantLyrics{lines: []lyrics.Line{
			{Time: 0, Text: "one"},
			{Time: 2 * time.Second, Text: "two"},
			{Time: 4 * time.Second, Text: "three"},
		}}
		c := newController(r, 3, false)
		c.loader = loader
		c.Dispatch(keybind.Activate)
		r.local.dur = 6 * time.Second

		Convey("When the overlay is off", func() {
			Convey("Then nothing is fetched", func() {
				So(loader.requests, ShouldEqual, 0)
			})
		})

		Convey("When the overlay is turned on", func() {
			c.Dispatch(keybind.ToggleLyrics)
			r.local.pos = 3400 * time.Millisecond
			c.Tick()

			Convey("Then the active line follows playback", func() {
				v := c.Snapshot()
				So(v.Mode, ShouldEqual, LocalLyrics)
				So(v.Lyrics, ShouldEqual, LyricsReady)
				So(v.Frame.Current, ShouldEqual, 1)
			})

			Convey("Then a new track fetches its own lyrics", func() {
				c.Dispatch(keybind.MoveDown)
				c.Dispatch(keybind.Activate)
				So(loader.requests, ShouldEqual, 2)
				So(c.Snapshot().Lyrics, ShouldEqual, LyricsLoading)
			})
		})

		Convey("When no lyrics exist", func() {
			loader.lines = nil
			loader.err = lyrics.ErrNotFound
			c.Dispatch(keybind.ToggleLyrics)
			c.Tick()

			Convey("Then the overlay says so", func() {
				So(c.Snapshot().Lyrics, ShouldEqual, LyricsMissing)
			})

			Convey("Then toggling the overlay off and on fetches again", func() {
				loader.lines = []lyrics.Line{{Time: 0, Text: "late"}}
				loader.err = nil
				c.Dispatch(keybind.ToggleLyrics)
				c.Dispatch(keybind.ToggleLyrics)
				c.Tick()

				So(loader.requests, ShouldEqual, 2)
				So(c.Snapshot().Lyrics, ShouldEqual, LyricsReady)
			})
		})
	})
}

func TestQuit(t *testing.T) {
	Convey("Given three tracks", t, func() {
		r := newRig()
		c := newController(r, 3, false)

		Convey("When playing, lowering the volume twice and quitting", func() {
			effects := lo.Map([]keybind.Action{
				keybind.Activate, keybind.VolumeDown, keybind.VolumeDown, keybind.Quit,
			}, func(a keybind.Action, _ int) Effect { return c.Dispatch(a) })

			Convey("Then the volume is 90 and the backend is released", func() {
				So(effects[3], ShouldEqual, Exit)
				So(c.Volume, ShouldEqual, 90)
				So(r.local.volume, ShouldEqual, 90)
				So(r.local.released, ShouldBeTrue)
				So(c.Closed(), ShouldBeTrue)
			})

			Convey("Then closing again is harmless", func() {
				So(c.Close(), ShouldBeNil)
				So(lo.Count(r.journal, "local:release"), ShouldEqual, 1)
			})
		})
	})
}
