package player

import (
	"io"
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestVolumeToGain(t *testing.T) {
	Convey("Given a volume percentage", t, func() {
		Convey("When it is at either end of the range", func() {
			Convey("Then 100 is unity gain and 0 is the floor", func() {
				So(volumeToGain(100), ShouldEqual, 0)
				So(volumeToGain(0), ShouldEqual, minVolumeDB)
				So(volumeToGain(150), ShouldEqual, 0)
				So(volumeToGain(-5), ShouldEqual, minVolumeDB)
			})
		})

		Convey("When it increases", func() {
			Convey("Then the gain never decreases", func() {
				prev := volumeToGain(0)
				for p := 5; p <= 100; p += 5 {
					g := volumeToGain(p)
					So(g, ShouldBeGreaterThanOrEqualTo, prev)
					prev = g
				}
			})
		})
	})
}

func TestClampSeek(t *testing.T) {
	Convey("Given a three minute track", t, func() {
		duration := 3 * time.Minute

		Convey("Then targets are clamped into the track", func() {
			So(clampSeek(-time.Second, duration), ShouldEqual, 0)
			So(clampSeek(time.Minute, duration), ShouldEqual, time.Minute)
			So(clampSeek(4*time.Minute, duration), ShouldEqual, duration)
		})

		Convey("Then an unknown duration only clamps the lower bound", func() {
			So(clampSeek(time.Hour, 0), ShouldEqual, time.Hour)
		})
	})
}

func TestStatusString(t *testing.T) {
	Convey("Status names are human readable", t, func() {
		So(Playing.String(), ShouldEqual, "Playing")
		So(Paused.String(), ShouldEqual, "Paused")
		So(Stopped.String(), ShouldEqual, "Stopped")
	})
}

func TestDecode(t *testing.T) {
	Convey("Given a file with an unknown extension", t, func() {
		_, _, err := Decode("cover.jpg", io.NopCloser(strings.NewReader("")))

		Convey("Then decoding is refused", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, ".jpg")
		})
	})
}
