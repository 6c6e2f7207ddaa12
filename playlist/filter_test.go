package playlist

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type song struct{ title string }

func title(s song) string { return s.title }

func TestFilter(t *testing.T) {
	Convey("Given a list of songs", t, func() {
		songs := []song{{"Blue Monday"}, {"Monday Morning"}, {"Sunday"}, {"Manic Monday"}}
		original := append([]song(nil), songs...)

		Convey("An empty term returns every song in order", func() {
			out := Filter(songs, "", title, Substring)
			So(out, ShouldResemble, songs)

			out[0] = song{"changed"}
			So(songs, ShouldResemble, original)
		})

		Convey("Substring matching is case-insensitive", func() {
			out := Filter(songs, "MONDAY", title, Substring)
			So(out, ShouldResemble, []song{{"Blue Monday"}, {"Monday Morning"}, {"Manic Monday"}})
		})

		Convey("Filtering twice is idempotent", func() {
			once := Filter(songs, "monday", title, Substring)
			So(Filter(once, "monday", title, Substring), ShouldResemble, once)
		})

		Convey("Prefix only matches at the start", func() {
			So(Filter(songs, "mon", title, Prefix), ShouldResemble, []song{{"Monday Morning"}})
		})

		Convey("Fuzzy allows gaps", func() {
			So(Filter(songs, "mcmdy", title, Fuzzy), ShouldResemble, []song{{"Manic Monday"}})
		})

		Convey("A nil matcher falls back to substring", func() {
			So(Filter(songs, "sun", title, nil), ShouldResemble, []song{{"Sunday"}})
		})

		Convey("The source is never mutated", func() {
			_ = Filter(songs, "blue", title, Substring)
			So(songs, ShouldResemble, original)
		})

		Convey("No match yields an empty, non-nil list", func() {
			out := Filter(songs, "zzz", title, Substring)
			So(out, ShouldNotBeNil)
			So(out, ShouldBeEmpty)
		})
	})
}

func TestParseMatcher(t *testing.T) {
	Convey("ParseMatcher", t, func() {
		for _, name := range MatcherNames() {
			m, err := ParseMatcher(name)
			So(err, ShouldBeNil)
			So(m, ShouldNotBeNil)
		}

		m, err := ParseMatcher("")
		So(err, ShouldBeNil)
		So(m("abc", "b"), ShouldBeTrue)

		_, err = ParseMatcher("regex")
		So(err, ShouldNotBeNil)
	})
}
