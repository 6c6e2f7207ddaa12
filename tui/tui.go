// Package tui provides the terminal player built on bubbletea.
package tui

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lyrebird-cli/lyrebird/keybind"
	"github.com/lyrebird-cli/lyrebird/log"
	"github.com/lyrebird-cli/lyrebird/session"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	Controller   *session.Controller
	Keys         keybind.Map
	Warnings     []keybind.Warning
	TickInterval time.Duration
}

// Run executes the player loop until the user quits or a termination signal arrives.
// The controller is always closed on return.
func Run(options *Options) error {
	bubble := newBubble(options)

	stop := watchSignals(bubble.shutdown)
	defer stop()

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()

	if closeErr := options.Controller.Close(); closeErr != nil {
		log.Warnf("close session: %v", closeErr)
	}
	return err
}

// watchSignals raises flag on SIGINT or SIGTERM. The returned func stops watching.
func watchSignals(flag *atomic.Bool) func() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case sig := <-signals:
			log.Infof("received %s, shutting down", sig)
			flag.Store(true)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(signals)
		close(done)
	}
}
