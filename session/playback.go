package session

import (
	"github.com/lyrebird-cli/lyrebird/log"
	"github.com/lyrebird-cli/lyrebird/player"
)

// ActiveBackend names the backend bound to the audio output.
type ActiveBackend int

const (
	None ActiveBackend = iota
	Local
	Radio
)

func (a ActiveBackend) String() string {
	switch a {
	case Local:
		return "local"
	case Radio:
		return "radio"
	default:
		return "none"
	}
}

// activePlayback is the one backend allowed to hold the output.
type activePlayback struct {
	kind    ActiveBackend
	backend player.Backend
}

func (a *activePlayback) status() player.Status {
	if a.backend == nil {
		return player.Stopped
	}
	return a.backend.Status()
}

// release stops and frees the backend. The zero value is left behind.
func (a *activePlayback) release() error {
	if a.backend == nil {
		return nil
	}

	b, kind := a.backend, a.kind
	*a = activePlayback{}

	if err := b.Stop(); err != nil {
		log.Debugf("stop %s backend: %v", kind, err)
	}
	if err := b.Release(); err != nil {
		log.Warnf("release %s backend: %v", kind, err)
		return err
	}
	return nil
}

// bind makes kind the active backend, releasing the other one first.
func (c *Controller) bind(kind ActiveBackend) (player.Backend, error) {
	if c.active.kind == kind && c.active.backend != nil {
		return c.active.backend, nil
	}

	if err := c.active.release(); err != nil {
		return nil, err
	}

	var b player.Backend
	switch kind {
	case Radio:
		if c.factory.Radio != nil {
			b = c.factory.Radio()
		}
	default:
		if c.factory.Local != nil {
			b = c.factory.Local()
		}
	}
	if b == nil {
		return nil, player.ErrAudioUnavailable
	}

	if err := b.SetVolume(c.Volume); err != nil {
		log.Warnf("set volume: %v", err)
	}

	c.active = activePlayback{kind: kind, backend: b}
	return b, nil
}
