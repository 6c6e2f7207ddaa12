// Package icon provides a flexible multi-variant rendering engine for UI symbols and feedback indicators.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/lyrebird-cli/lyrebird/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Fail Icon = iota
	Success
	Progress
	Playing
	Paused
	Stopped
	Shuffle
	Repeat
	Volume
	Radio
	Lyrics
	Search
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Fail:     {emoji: "💀", nerd: "", plain: "X", kaomoji: "(╥﹏╥)", squares: "🟥"},
	Success:  {emoji: "🎉", nerd: "", plain: "OK", kaomoji: "(ᵔᴥᵔ)", squares: "🟩"},
	Progress: {emoji: "⏳", nerd: "", plain: "...", kaomoji: "(・_・)", squares: "🟦"},
	Playing:  {emoji: "▶️", nerd: "", plain: ">", kaomoji: "♪(´▽｀)", squares: "▶"},
	Paused:   {emoji: "⏸️", nerd: "", plain: "||", kaomoji: "(-_-)", squares: "⏸"},
	Stopped:  {emoji: "⏹️", nerd: "", plain: "[]", kaomoji: "(-.-)zzZ", squares: "■"},
	Shuffle:  {emoji: "🔀", nerd: "", plain: "S", kaomoji: "(~_~)", squares: "⤮"},
	Repeat:   {emoji: "🔁", nerd: "", plain: "R", kaomoji: "(o_o)", squares: "⟳"},
	Volume:   {emoji: "🔊", nerd: "", plain: "Vol", kaomoji: "(°o°)", squares: "◢"},
	Radio:    {emoji: "📻", nerd: "", plain: "Radio", kaomoji: "((•))", squares: "◉"},
	Lyrics:   {emoji: "🎤", nerd: "", plain: "Lyrics", kaomoji: "ヽ(°〇°)ﾉ", squares: "≡"},
	Search:   {emoji: "🔍", nerd: "", plain: "/", kaomoji: "(¬_¬)", squares: "◎"},
}

// Get retrieves the visual representation based on the global icons variant configuration.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	return icons[i].Get()
}
