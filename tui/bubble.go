package tui

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/lyrebird-cli/lyrebird/constant"
	"github.com/lyrebird-cli/lyrebird/internal/ui"
	"github.com/lyrebird-cli/lyrebird/key"
	"github.com/lyrebird-cli/lyrebird/keybind"
	"github.com/lyrebird-cli/lyrebird/session"
	"github.com/lyrebird-cli/lyrebird/style"
	"github.com/lyrebird-cli/lyrebird/util"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// state is the screen the player is on. The track list stays visible in both.
type state int

const (
	browseState state = iota
	searchState
)

// statefulBubble is the bubbletea model of the player.
type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	ctrl     *session.Controller
	keys     keybind.Map
	keymap   *statefulKeymap
	warnings []keybind.Warning
	interval time.Duration
	shutdown *atomic.Bool

	// components
	spinnerC spinner.Model
	inputC   textinput.Model
	helpC    help.Model

	width, height    int
	searchSuggestion mo.Option[string]
	notifier         *ui.Model
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s and remembers where it came from.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}
	b.statesHistory.Push(b.state)
	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()

	b.width = width - x
	b.height = height - y
	b.helpC.Width = b.width
	b.inputC.Width = util.Max(b.width-lipgloss.Width(b.inputC.Prompt)-1, 10)
}

func newBubble(options *Options) *statefulBubble {
	keys := options.Keys
	if keys == nil {
		keys = keybind.Defaults()
	}

	interval := options.TickInterval
	if interval <= 0 {
		interval = 150 * time.Millisecond
	}

	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		ctrl:          options.Controller,
		keys:          keys,
		keymap:        newStatefulKeymap(keys),
		warnings:      options.Warnings,
		interval:      interval,
		shutdown:      &atomic.Bool{},
		notifier:      &ui.Model{},
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = fmt.Sprintf("Search tracks (%s v%s)", constant.Lyrebird, constant.Version)
	bubble.inputC.CharLimit = 80
	bubble.inputC.Prompt = viper.GetString(key.TUISearchPromptString)

	bubble.width, bubble.height = 80, 24
	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.setState(browseState)
	return &bubble
}
