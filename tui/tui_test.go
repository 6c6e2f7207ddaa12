package tui

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lyrebird-cli/lyrebird/filesystem"
	"github.com/lyrebird-cli/lyrebird/keybind"
	"github.com/lyrebird-cli/lyrebird/player"
	"github.com/lyrebird-cli/lyrebird/session"
	"github.com/lyrebird-cli/lyrebird/track"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

type stubBackend struct {
	status   player.Status
	volume   int
	released bool
}

func (s *stubBackend) Status() player.Status { return s.status }
func (s *stubBackend) Position() time.Duration { return 0 }
func (s *stubBackend) Duration() time.Duration { return time.Minute }
func (s *stubBackend) Load(string) error { return nil }
func (s *stubBackend) Play() error { s.status = player.Playing; return nil }
func (s *stubBackend) Pause() error { s.status = player.Paused; return nil }
func (s *stubBackend) Stop() error { s.status = player.Stopped; return nil }
func (s *stubBackend) SetVolume(p int) error { s.volume = p; return nil }
func (s *stubBackend) SeekTo(time.Duration) error { return nil }
func (s *stubBackend) Release() error { s.released = true; return nil }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestBubble(backend *stubBackend) *statefulBubble {
	tracks := make([]track.Track, 3)
	for i := range tracks {
		tracks[i] = track.Track{Path: fmt.Sprintf("/music/%d.mp3", i), Name: fmt.Sprintf("song %d.mp3", i)}
	}

	ctrl := session.New(session.Options{
		Tracks:  tracks,
		Volume:  100,
		Factory: player.Factory{Local: func() player.Backend { return backend }},
	})

	return newBubble(&Options{Controller: ctrl, Keys: keybind.Defaults()})
}

func TestBubble(t *testing.T) {
	Convey("Given the player with three tracks", t, func() {
		backend := &stubBackend{}
		b := newTestBubble(backend)

		Convey("When playing, lowering the volume twice and quitting", func() {
			var cmd tea.Cmd
			for _, msg := range []tea.Msg{tea.KeyMsg{Type: tea.KeyEnter}, runes("-"), runes("-"), runes("q")} {
				_, cmd = b.Update(msg)
			}

			Convey("Then the program quits with the backend released at volume 90", func() {
				So(cmd, ShouldNotBeNil)
				So(cmd(), ShouldHaveSameTypeAs, tea.QuitMsg{})
				So(b.ctrl.Volume, ShouldEqual, 90)
				So(backend.volume, ShouldEqual, 90)
				So(backend.released, ShouldBeTrue)
			})
		})

		Convey("When ctrl+c is pressed", func() {
			b.Update(tea.KeyMsg{Type: tea.KeyEnter})
			_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

			Convey("Then playback is released and the program quits", func() {
				So(cmd(), ShouldHaveSameTypeAs, tea.QuitMsg{})
				So(backend.released, ShouldBeTrue)
			})
		})

		Convey("When a termination signal was received", func() {
			b.Update(tea.KeyMsg{Type: tea.KeyEnter})
			b.shutdown.Store(true)
			_, cmd := b.Update(tickMsg(time.Now()))

			Convey("Then the next tick shuts down", func() {
				So(cmd(), ShouldHaveSameTypeAs, tea.QuitMsg{})
				So(b.ctrl.Closed(), ShouldBeTrue)
			})
		})

		Convey("When searching", func() {
			b.Update(runes("f"))
			So(b.state, ShouldEqual, searchState)

			for _, r := range "song 2" {
				b.Update(runes(string(r)))
			}
			b.Update(tea.KeyMsg{Type: tea.KeyEnter})

			Convey("Then the list is filtered and browsing resumes", func() {
				So(b.state, ShouldEqual, browseState)
				So(b.ctrl.Tracks(), ShouldHaveLength, 1)
				So(b.ctrl.Term, ShouldEqual, "song 2")
			})
		})

		Convey("When a search is abandoned", func() {
			b.Update(runes("f"))
			b.Update(runes("x"))
			b.Update(tea.KeyMsg{Type: tea.KeyEsc})

			Convey("Then nothing is filtered", func() {
				So(b.state, ShouldEqual, browseState)
				So(b.ctrl.Tracks(), ShouldHaveLength, 3)
			})
		})

		Convey("When rendering", func() {
			b.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
			b.Update(tea.KeyMsg{Type: tea.KeyEnter})
			view := b.View()

			Convey("Then the status, progress and list are shown", func() {
				So(view, ShouldContainSubstring, "Playing")
				So(view, ShouldContainSubstring, "00:00 [")
				So(view, ShouldContainSubstring, "song 1.mp3")
			})
		})

		Convey("When an unbound key is pressed", func() {
			_, cmd := b.Update(runes("z"))

			Convey("Then nothing happens", func() {
				So(cmd, ShouldBeNil)
				So(b.ctrl.Loaded, ShouldEqual, -1)
			})
		})
	})
}
