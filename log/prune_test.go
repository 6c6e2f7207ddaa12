package log

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/lyrebird-cli/lyrebird/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCollectGarbage(t *testing.T) {
	Convey("Given a log directory with old and fresh files", t, func() {
		fs := filesystem.API()
		dir := "/logs-gc"
		old := filepath.Join(dir, "2020-01-01.log")
		fresh := filepath.Join(dir, "today.log")
		other := filepath.Join(dir, "notes.txt")

		for _, p := range []string{old, fresh, other} {
			So(fs.WriteFile(p, []byte("x"), 0o644), ShouldBeNil)
		}

		stale := time.Now().Add(-2 * Retention)
		So(fs.Chtimes(old, stale, stale), ShouldBeNil)
		So(fs.Chtimes(other, stale, stale), ShouldBeNil)

		collectGarbage(dir, time.Now().Add(-Retention))

		Convey("Only stale log files are removed", func() {
			exists, _ := fs.Exists(old)
			So(exists, ShouldBeFalse)

			exists, _ = fs.Exists(fresh)
			So(exists, ShouldBeTrue)

			exists, _ = fs.Exists(other)
			So(exists, ShouldBeTrue)
		})
	})
}
