package keybind

import (
	"strings"
	"testing"

	"github.com/lyrebird-cli/lyrebird/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

const sample = `# my bindings
  PAUSE = x

QUIT=ESC
search=/
SHOW_HIDE_LYRICS=ENTER
VOLUMUP=]
garbage
`

func TestDefaults(t *testing.T) {
	Convey("Given the default bindings", t, func() {
		m := Defaults()

		Convey("Then every action is bound to a distinct code", func() {
			seen := map[string]bool{}
			for _, a := range Actions {
				code, ok := m[a]
				So(ok, ShouldBeTrue)
				So(seen[code], ShouldBeFalse)
				seen[code] = true
			}
		})

		Convey("Then codes resolve back to actions", func() {
			a, ok := m.Resolve("enter")
			So(ok, ShouldBeTrue)
			So(a, ShouldEqual, Activate)

			a, ok = m.Resolve("o")
			So(ok, ShouldBeTrue)
			So(a, ShouldEqual, ToggleRadioMode)

			_, ok = m.Resolve("z")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Given a key-binding file", t, func() {
		m, warnings := Parse(strings.NewReader(sample))

		Convey("Then valid entries override the defaults", func() {
			So(m[TogglePause], ShouldEqual, "x")
			So(m[Search], ShouldEqual, "/")
			So(m[ToggleLyrics], ShouldEqual, "enter")
		})

		Convey("Then invalid entries keep the default", func() {
			So(m[Quit], ShouldEqual, "q")
			So(m[VolumeUp], ShouldEqual, "+")
		})

		Convey("Then every problem is reported", func() {
			So(warnings, ShouldHaveLength, 4)
			So(warnings[0].Line, ShouldEqual, 4)
			So(warnings[0].Reason, ShouldContainSubstring, "single character")
			So(warnings[1].Reason, ShouldContainSubstring, "did you mean VOLUMEUP")
			So(warnings[2].Reason, ShouldContainSubstring, "ACTION=KEY")
			So(warnings[3].Text, ShouldEqual, "enter")
			So(warnings[3].Reason, ShouldContainSubstring, "PLAY wins")
		})

		Convey("Then the first action in order wins a shared key", func() {
			a, _ := m.Resolve("enter")
			So(a, ShouldEqual, Activate)
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()

		Convey("When the file is missing", func() {
			m, warnings, err := Load("/home/me/.lyrebird.conf")

			Convey("Then the defaults are used", func() {
				So(err, ShouldBeNil)
				So(warnings, ShouldBeEmpty)
				So(m, ShouldResemble, Defaults())
			})
		})

		Convey("When the file exists", func() {
			So(filesystem.API().WriteFile("/home/me/.lyrebird.conf", []byte("SHUFFLE=z\n"), 0o644), ShouldBeNil)
			m, _, err := Load("/home/me/.lyrebird.conf")

			Convey("Then it is applied", func() {
				So(err, ShouldBeNil)
				So(m[ToggleShuffle], ShouldEqual, "z")
			})
		})
	})
}

func TestTemplate(t *testing.T) {
	Convey("Given the default template", t, func() {
		tmpl := Defaults().Template()

		Convey("Then it parses back to the defaults without warnings", func() {
			m, warnings := Parse(strings.NewReader(tmpl))
			So(warnings, ShouldBeEmpty)
			So(m, ShouldResemble, Defaults())
		})

		Convey("Then arrow keys are commented out", func() {
			So(tmpl, ShouldContainSubstring, "# UP=up (not configurable)")
			So(tmpl, ShouldContainSubstring, "PLAY=ENTER")
		})
	})
}

func TestActionNames(t *testing.T) {
	Convey("Action names round trip", t, func() {
		for _, a := range Actions {
			parsed, ok := ParseAction(strings.ToLower(a.String()))
			So(ok, ShouldBeTrue)
			So(parsed, ShouldEqual, a)
		}
		_, ok := ParseAction("DANCE")
		So(ok, ShouldBeFalse)
	})
}
