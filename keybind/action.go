// Package keybind maps logical player actions to key codes.
//
// Bindings come from built-in defaults, optionally overridden by a line-oriented
// file of ACTION=KEY entries. Codes use the same names bubbletea reports for key
// presses: a single character, or "enter", "up", "down", "left", "right".
package keybind

import "strings"

// Action is a logical player command.
type Action int

const (
	MoveUp Action = iota
	MoveDown
	Activate
	TogglePause
	Stop
	SeekLeft
	SeekRight
	VolumeUp
	VolumeDown
	ToggleShuffle
	ToggleRepeat
	Search
	Quit
	ToggleShowAlbum
	ToggleShowArtist
	ToggleLyrics
	ToggleRadioMode
)

// Actions lists every action in display order.
var Actions = []Action{
	MoveUp, MoveDown, Activate, TogglePause, Stop,
	SeekLeft, SeekRight, VolumeUp, VolumeDown,
	ToggleShuffle, ToggleRepeat, Search, Quit,
	ToggleShowAlbum, ToggleShowArtist, ToggleLyrics, ToggleRadioMode,
}

var names = map[Action]string{
	MoveUp:           "UP",
	MoveDown:         "DOWN",
	Activate:         "PLAY",
	TogglePause:      "PAUSE",
	Stop:             "STOP",
	SeekLeft:         "SEEKLEFT",
	SeekRight:        "SEEKRIGHT",
	VolumeUp:         "VOLUMEUP",
	VolumeDown:       "VOLUMEDOWN",
	ToggleShuffle:    "SHUFFLE",
	ToggleRepeat:     "REPEAT",
	Search:           "SEARCH",
	Quit:             "QUIT",
	ToggleShowAlbum:  "SHOW_HIDE_ALBUM",
	ToggleShowArtist: "SHOW_HIDE_ARTIST",
	ToggleLyrics:     "SHOW_HIDE_LYRICS",
	ToggleRadioMode:  "SHOW_HIDE_ONLINE_RADIO",
}

var descriptions = map[Action]string{
	MoveUp:           "up",
	MoveDown:         "down",
	Activate:         "play",
	TogglePause:      "pause",
	Stop:             "stop",
	SeekLeft:         "rewind",
	SeekRight:        "forward",
	VolumeUp:         "louder",
	VolumeDown:       "quieter",
	ToggleShuffle:    "shuffle",
	ToggleRepeat:     "repeat",
	Search:           "search",
	Quit:             "quit",
	ToggleShowAlbum:  "album",
	ToggleShowArtist: "artist",
	ToggleLyrics:     "lyrics",
	ToggleRadioMode:  "radio",
}

// String returns the name used in the key-binding file.
func (a Action) String() string {
	if n, ok := names[a]; ok {
		return n
	}
	return "UNKNOWN"
}

// Description is the short help text for a.
func (a Action) Description() string {
	return descriptions[a]
}

// ParseAction looks up an action by its file name, case-insensitively.
func ParseAction(name string) (Action, bool) {
	for _, a := range Actions {
		if strings.EqualFold(names[a], name) {
			return a, true
		}
	}
	return 0, false
}
