package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lyrebird-cli/lyrebird/log"
	"github.com/lyrebird-cli/lyrebird/query"
	"github.com/lyrebird-cli/lyrebird/session"
	"github.com/samber/mo"
)

// updateBrowse turns a key press into at most one controller action.
func (b *statefulBubble) updateBrowse(msg tea.Msg, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, cmd
	}

	if keyMsg.String() == "?" {
		b.helpC.ShowAll = !b.helpC.ShowAll
		return b, cmd
	}

	action, ok := b.keys.Resolve(keyMsg.String())
	if !ok {
		return b, cmd
	}

	switch b.ctrl.Dispatch(action) {
	case session.Exit:
		return b, tea.Quit
	case session.PromptSearch:
		b.newState(searchState)
		b.inputC.SetValue(b.ctrl.Term)
		b.inputC.CursorEnd()
		b.searchSuggestion = mo.None[string]()
		return b, tea.Batch(cmd, b.inputC.Focus(), textinput.Blink)
	}

	return b, cmd
}

// updateSearch edits the search term. Enter applies it, esc abandons it.
func (b *statefulBubble) updateSearch(msg tea.Msg, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, b.keymap.confirm):
			term := strings.TrimSpace(b.inputC.Value())
			b.ctrl.Search(term)
			if err := query.Remember(term, 1); err != nil {
				log.Warnf("remember search %q: %v", term, err)
			}
			b.leaveSearch()
			return b, cmd
		case key.Matches(keyMsg, b.keymap.back):
			b.leaveSearch()
			return b, cmd
		case key.Matches(keyMsg, b.keymap.acceptSearchSuggestion):
			if suggestion, ok := b.searchSuggestion.Get(); ok {
				b.inputC.SetValue(suggestion)
				b.inputC.CursorEnd()
				b.searchSuggestion = mo.None[string]()
			}
			return b, cmd
		}
	}

	var inputCmd tea.Cmd
	b.inputC, inputCmd = b.inputC.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		b.searchSuggestion = query.Suggest(b.inputC.Value())
	}

	return b, tea.Batch(cmd, inputCmd)
}

func (b *statefulBubble) leaveSearch() {
	b.inputC.Blur()
	b.searchSuggestion = mo.None[string]()
	b.previousState()
}
