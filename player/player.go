// Package player defines the playback backends the session controller drives.
//
// Two backends exist: Local decodes files with beep and owns the sound card directly,
// MPV plays network streams through an mpv child process over JSON-IPC.
// Only one of them may hold the output device at a time; callers Release one before
// loading the other.
package player

import (
	"errors"
	"time"
)

// Status is the transport state reported by a backend.
type Status int

const (
	Stopped Status = iota
	Playing
	Paused
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Stopped"
	}
}

var (
	// ErrAudioUnavailable is returned by builds without an audio output.
	ErrAudioUnavailable = errors.New("audio output is not available in this build")
	// ErrNotLoaded is returned by transport calls made before a successful Load.
	ErrNotLoaded = errors.New("nothing is loaded")
)

// Backend is a single audio engine.
//
// Load failures leave the previous playback state untouched. SeekTo clamps its
// target to [0, Duration()]. Release stops playback and frees the output device
// and any native or process handles; a released backend may be loaded again.
type Backend interface {
	Status() Status
	Position() time.Duration
	Duration() time.Duration
	Load(target string) error
	Play() error
	Pause() error
	Stop() error
	SetVolume(percent int) error
	SeekTo(d time.Duration) error
	Release() error
}

// Metadata is what a stream reports about itself.
type Metadata struct {
	Title       string
	StreamTitle string
}

// MetadataSource is implemented by backends that can re-read stream metadata.
// The result is delivered on the returned channel, which is closed afterwards.
type MetadataSource interface {
	RefreshMetadata() <-chan Metadata
}

// Factory creates backends on demand.
type Factory struct {
	Local func() Backend
	Radio func() Backend
}

// DefaultFactory builds the beep backend for files and an mpv backend for streams.
func DefaultFactory(mpvBinary string) Factory {
	return Factory{
		Local: func() Backend { return NewLocal() },
		Radio: func() Backend { return NewMPV(mpvBinary) },
	}
}

func clampSeek(d, duration time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	if duration > 0 && d > duration {
		return duration
	}
	return d
}
