package keybind

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lyrebird-cli/lyrebird/filesystem"
	"github.com/samber/lo"
)

// Map binds each action to one key code. It is read-only once loaded.
type Map map[Action]string

// Defaults returns the built-in bindings.
func Defaults() Map {
	return Map{
		MoveUp:           "up",
		MoveDown:         "down",
		Activate:         "enter",
		TogglePause:      "p",
		Stop:             "s",
		SeekLeft:         "left",
		SeekRight:        "right",
		VolumeUp:         "+",
		VolumeDown:       "-",
		ToggleShuffle:    "h",
		ToggleRepeat:     "r",
		Search:           "f",
		Quit:             "q",
		ToggleShowAlbum:  "a",
		ToggleShowArtist: "t",
		ToggleLyrics:     "l",
		ToggleRadioMode:  "o",
	}
}

// Warning describes a key-binding line that was ignored.
type Warning struct {
	Line   int
	Text   string
	Reason string
}

func (w Warning) String() string {
	if w.Line == 0 {
		return fmt.Sprintf("%q: %s", w.Text, w.Reason)
	}
	return fmt.Sprintf("line %d %q: %s", w.Line, w.Text, w.Reason)
}

// Parse reads ACTION=KEY lines over the defaults.
// Blank lines and lines starting with # are skipped. KEY is a single character
// or ENTER. Anything else is reported and leaves the default in place.
func Parse(r io.Reader) (Map, []Warning) {
	m := Defaults()
	var warnings []Warning

	scanner := bufio.NewScanner(r)
	number := 0
	for scanner.Scan() {
		number++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		warn := func(reason string) {
			warnings = append(warnings, Warning{Line: number, Text: line, Reason: reason})
		}

		name, value, ok := strings.Cut(line, "=")
		if !ok {
			warn("expected ACTION=KEY")
			continue
		}
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)

		action, ok := ParseAction(name)
		if !ok {
			warn(unknownAction(name))
			continue
		}

		code, ok := parseCode(value)
		if !ok {
			warn("key must be a single character or ENTER")
			continue
		}

		m[action] = code
	}

	if err := scanner.Err(); err != nil {
		warnings = append(warnings, Warning{Line: number + 1, Reason: err.Error()})
	}

	conflicts := m.conflicts()
	codes := lo.Keys(conflicts)
	sort.Strings(codes)
	for _, code := range codes {
		actions := conflicts[code]
		warnings = append(warnings, Warning{
			Text: code,
			Reason: fmt.Sprintf("bound to %s; %s wins",
				strings.Join(lo.Map(actions, func(a Action, _ int) string { return a.String() }), ", "),
				actions[0],
			),
		})
	}

	return m, warnings
}

// Load parses the file at path. A missing file yields the defaults with no warnings.
func Load(path string) (Map, []Warning, error) {
	f, err := filesystem.API().Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil, nil
		}
		return Defaults(), nil, err
	}
	defer f.Close()

	m, warnings := Parse(f)
	return m, warnings, nil
}

func parseCode(value string) (string, bool) {
	if strings.EqualFold(value, "ENTER") {
		return "enter", true
	}
	if utf8.RuneCountInString(value) == 1 {
		return value, true
	}
	return "", false
}

func unknownAction(name string) string {
	all := lo.Values(names)
	sort.Strings(all)
	upper := strings.ToUpper(name)

	closest := lo.MinBy(all, func(a, b string) bool {
		return levenshtein.Distance(upper, a) < levenshtein.Distance(upper, b)
	})

	if levenshtein.Distance(upper, closest) <= 3 {
		return fmt.Sprintf("unknown action, did you mean %s?", closest)
	}
	return "unknown action"
}

// Resolve returns the action bound to code. When several actions share a code
// the first in Actions order wins.
func (m Map) Resolve(code string) (Action, bool) {
	for _, a := range Actions {
		if c, ok := m[a]; ok && c == code {
			return a, true
		}
	}
	return 0, false
}

func (m Map) conflicts() map[string][]Action {
	byCode := make(map[string][]Action)
	for _, a := range Actions {
		byCode[m[a]] = append(byCode[m[a]], a)
	}
	return lo.PickBy(byCode, func(_ string, actions []Action) bool { return len(actions) > 1 })
}

// Binding builds the bubbles help binding of a.
func (m Map) Binding(a Action) key.Binding {
	code := m[a]
	return key.NewBinding(
		key.WithKeys(code),
		key.WithHelp(displayCode(code), a.Description()),
	)
}

// Bindings returns help bindings for actions, in the given order.
func (m Map) Bindings(actions ...Action) []key.Binding {
	return lo.Map(actions, func(a Action, _ int) key.Binding { return m.Binding(a) })
}

// Template renders m in the file format, one commented block per action.
func (m Map) Template() string {
	var b strings.Builder
	b.WriteString("# lyrebird key bindings\n# ACTION=KEY where KEY is a single character or ENTER\n\n")
	for _, a := range Actions {
		code := m[a]
		line := fmt.Sprintf("%s=%s", a, fileCode(code))
		if _, ok := parseCode(fileCode(code)); !ok {
			line = "# " + line + " (not configurable)"
		}
		b.WriteString(fmt.Sprintf("# %s\n%s\n", a.Description(), line))
	}
	return b.String()
}

func fileCode(code string) string {
	if code == "enter" {
		return "ENTER"
	}
	return code
}

func displayCode(code string) string {
	switch code {
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "left":
		return "←"
	case "right":
		return "→"
	case " ":
		return "space"
	}
	return code
}
