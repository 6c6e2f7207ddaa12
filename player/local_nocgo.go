//go:build !((linux && cgo) || windows || darwin)

package player

import "time"

// AudioAvailable indicates whether local playback is supported in this build.
// Native sound output needs cgo on this platform.
const AudioAvailable = false

// Local is a stand-in that refuses to load anything.
type Local struct{}

func NewLocal() *Local { return &Local{} }

func (*Local) Status() Status { return Stopped }
func (*Local) Position() time.Duration { return 0 }
func (*Local) Duration() time.Duration { return 0 }
func (*Local) Load(string) error { return ErrAudioUnavailable }
func (*Local) Play() error { return ErrNotLoaded }
func (*Local) Pause() error { return nil }
func (*Local) Stop() error { return nil }
func (*Local) SetVolume(int) error { return nil }
func (*Local) SeekTo(time.Duration) error { return ErrNotLoaded }
func (*Local) Release() error { return nil }
