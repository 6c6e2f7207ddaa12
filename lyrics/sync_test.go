package lyrics

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func seconds(f float64) time.Duration {
	return time.Duration(f * float64(time.Second))
}

func TestSync(t *testing.T) {
	Convey("Given lines at 0, 2 and 5 seconds in a 6 second track", t, func() {
		lines := []Line{{0, "a"}, {2 * time.Second, "b"}, {5 * time.Second, "c"}}
		duration := 6 * time.Second
		s := NewSync(lines)

		Convey("At t=0 the first line is active with no progress", func() {
			So(s.Advance(0), ShouldEqual, 0)
			So(s.Fraction(0, duration), ShouldEqual, 0)
		})

		Convey("At t=3.4 the second line is active and 46.7% through", func() {
			So(s.Advance(seconds(3.4)), ShouldEqual, 1)
			So(s.Fraction(seconds(3.4), duration), ShouldAlmostEqual, 0.4667, 0.001)
		})

		Convey("At t=5 the last line is active and measured against the duration", func() {
			So(s.Advance(5*time.Second), ShouldEqual, 2)
			So(s.Fraction(5*time.Second, duration), ShouldEqual, 0)
			So(s.Fraction(seconds(5.5), duration), ShouldAlmostEqual, 0.5, 0.0001)
		})

		Convey("The cursor never moves backward", func() {
			s.Advance(5 * time.Second)
			So(s.Advance(time.Second), ShouldEqual, 2)

			Convey("until it is reset", func() {
				s.Reset()
				So(s.Current(), ShouldEqual, 0)
				So(s.Advance(time.Second), ShouldEqual, 0)
			})
		})

		Convey("An end equal to the start gives zero progress", func() {
			s := NewSync([]Line{{5 * time.Second, "x"}})
			So(s.Fraction(5*time.Second, 5*time.Second), ShouldEqual, 0)
			So(s.Fraction(7*time.Second, 0), ShouldEqual, 0)
		})

		Convey("Render lays out a window around the active line", func() {
			frame := s.Render(seconds(3.5), duration, 3, 2)
			So(frame.Current, ShouldEqual, 1)
			So(frame.Fraction, ShouldAlmostEqual, 0.5, 0.0001)
			So(frame.Lines, ShouldHaveLength, 3)

			So(frame.Lines[0].Index, ShouldEqual, 0)
			So(frame.Lines[0].Offset, ShouldAlmostEqual, -3, 0.0001)
			So(frame.Lines[0].Active, ShouldBeFalse)

			So(frame.Lines[1].Text, ShouldEqual, "b")
			So(frame.Lines[1].Offset, ShouldAlmostEqual, -1, 0.0001)
			So(frame.Lines[1].Active, ShouldBeTrue)

			So(frame.Lines[2].Offset, ShouldAlmostEqual, 1, 0.0001)
		})

		Convey("Render clips the window to the available lines", func() {
			frame := s.Render(0, duration, 1, 1)
			So(frame.Lines, ShouldHaveLength, 2)
			So(frame.Lines[0].Active, ShouldBeTrue)
		})
	})

	Convey("Given no lines", t, func() {
		s := NewSync(nil)
		So(s.Empty(), ShouldBeTrue)
		So(s.Advance(time.Minute), ShouldEqual, 0)
		So(s.Fraction(time.Minute, time.Hour), ShouldEqual, 0)
		So(s.Render(time.Minute, time.Hour, 3, 1).Lines, ShouldBeEmpty)
	})

	Convey("Given out of order timestamps", t, func() {
		s := NewSync([]Line{{0, "a"}, {4 * time.Second, "b"}, {2 * time.Second, "c"}})

		Convey("The cursor stops at the last line reached in scan order", func() {
			So(s.Advance(3*time.Second), ShouldEqual, 0)
			So(s.Advance(4*time.Second), ShouldEqual, 2)
		})
	})
}
