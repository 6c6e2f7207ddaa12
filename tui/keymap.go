package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/lyrebird-cli/lyrebird/keybind"
)

// statefulKeymap exposes the bindings that apply in the current state to the help view.
type statefulKeymap struct {
	state state
	keys  keybind.Map

	forceQuit,
	confirm,
	back,
	acceptSearchSuggestion key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap(keys keybind.Map) *statefulKeymap {
	return &statefulKeymap{
		keys: keys,
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		acceptSearchSuggestion: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "accept suggestion"),
		),
	}
}

// ShortHelp returns the bindings shown on the help line.
func (k *statefulKeymap) ShortHelp() []key.Binding {
	switch k.state {
	case searchState:
		return []key.Binding{k.confirm, k.back, k.acceptSearchSuggestion}
	default:
		return k.keys.Bindings(
			keybind.Activate,
			keybind.TogglePause,
			keybind.Stop,
			keybind.Search,
			keybind.ToggleLyrics,
			keybind.ToggleRadioMode,
			keybind.Quit,
		)
	}
}

// FullHelp lists every binding of the current state, grouped in columns.
func (k *statefulKeymap) FullHelp() [][]key.Binding {
	switch k.state {
	case searchState:
		return [][]key.Binding{k.ShortHelp(), {k.forceQuit}}
	default:
		return [][]key.Binding{
			k.keys.Bindings(keybind.MoveUp, keybind.MoveDown, keybind.Activate, keybind.TogglePause, keybind.Stop),
			k.keys.Bindings(keybind.SeekLeft, keybind.SeekRight, keybind.VolumeUp, keybind.VolumeDown),
			k.keys.Bindings(keybind.ToggleShuffle, keybind.ToggleRepeat, keybind.Search, keybind.Quit),
			k.keys.Bindings(keybind.ToggleShowAlbum, keybind.ToggleShowArtist, keybind.ToggleLyrics, keybind.ToggleRadioMode),
		}
	}
}
