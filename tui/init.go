package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lyrebird-cli/lyrebird/internal/ui"
	"github.com/lyrebird-cli/lyrebird/log"
	"github.com/lyrebird-cli/lyrebird/util"
)

type tickMsg time.Time

func (b *statefulBubble) tick() tea.Cmd {
	return tea.Tick(b.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the refresh loop and reports ignored key bindings.
func (b *statefulBubble) Init() tea.Cmd {
	cmds := []tea.Cmd{b.tick(), b.spinnerC.Tick}

	if n := len(b.warnings); n > 0 {
		for _, w := range b.warnings {
			log.Warnf("key bindings: %s", w)
		}
		cmds = append(cmds, ui.Notify(util.Quantify(n, "key binding", "key bindings")+" ignored, see `lyrebird keys`"))
	}

	return tea.Batch(cmds...)
}
