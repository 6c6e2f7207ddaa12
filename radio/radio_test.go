package radio

import (
	"testing"

	"github.com/lyrebird-cli/lyrebird/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

const somafm = `#EXTM3U
#EXTINF:-1,Groove Salad
http://ice1.somafm.com/groovesalad-128-mp3

# a comment
#EXTINF:-1,Drone Zone
http://ice1.somafm.com/dronezone-128-mp3
`

const plain = `http://radio.example/one
http://radio.example/two
`

func TestLoad(t *testing.T) {
	Convey("Given a radio directory", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		So(fs.MkdirAll("/radio", 0o755), ShouldBeNil)
		So(fs.WriteFile("/radio/b-somafm.m3u", []byte(somafm), 0o644), ShouldBeNil)
		So(fs.WriteFile("/radio/a-plain.M3U", []byte(plain), 0o644), ShouldBeNil)
		So(fs.WriteFile("/radio/readme.txt", []byte("http://ignored"), 0o644), ShouldBeNil)

		Convey("When it is loaded", func() {
			entries, err := Load("/radio")
			So(err, ShouldBeNil)

			Convey("Then playlists are concatenated in file order", func() {
				So(lo.Map(entries, func(e Entry, _ int) string { return e.URL }), ShouldResemble, []string{
					"http://radio.example/one",
					"http://radio.example/two",
					"http://ice1.somafm.com/groovesalad-128-mp3",
					"http://ice1.somafm.com/dronezone-128-mp3",
				})
			})

			Convey("Then titles come from EXTINF and fall back to the URL", func() {
				So(entries[2].Track.Display(), ShouldEqual, "Groove Salad")
				So(entries[0].Track.Display(), ShouldEqual, "http://radio.example/one")
				So(entries[3].Track.Album, ShouldEqual, "b-somafm")
			})

			Convey("Then the display records stay aligned with the URLs", func() {
				tracks := Tracks(entries)
				So(tracks, ShouldHaveLength, len(entries))
				for i, e := range entries {
					So(tracks[i].Path, ShouldEqual, e.URL)
				}
			})

			Convey("Then live streams have no duration", func() {
				So(lo.EveryBy(entries, func(e Entry) bool { return e.Track.Duration == 0 }), ShouldBeTrue)
			})
		})
	})

	Convey("Given a missing radio directory", t, func() {
		filesystem.SetMemMapFs()

		Convey("Then loading fails", func() {
			_, err := Load("/nowhere")
			So(err, ShouldNotBeNil)
		})
	})
}
