package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = uiCmd
	}

	switch msg := msg.(type) {
	case tickMsg:
		if b.shutdown.Load() {
			return b, b.quit()
		}
		b.ctrl.Tick()
		return b, tea.Batch(cmd, b.tick())
	case spinner.TickMsg:
		var spinnerCmd tea.Cmd
		b.spinnerC, spinnerCmd = b.spinnerC.Update(msg)
		return b, tea.Batch(cmd, spinnerCmd)
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, cmd
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			return b, b.quit()
		}
	}

	switch b.state {
	case searchState:
		return b.updateSearch(msg, cmd)
	default:
		return b.updateBrowse(msg, cmd)
	}
}

// quit releases playback before the program exits.
func (b *statefulBubble) quit() tea.Cmd {
	_ = b.ctrl.Close()
	return tea.Quit
}
