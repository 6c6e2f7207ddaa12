//go:build (linux && cgo) || windows || darwin

package player

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/lyrebird-cli/lyrebird/log"
)

// AudioAvailable indicates whether local playback is supported in this build.
const AudioAvailable = true

const outputSampleRate = beep.SampleRate(44100)

var speakerOnce struct {
	sync.Once
	err error
}

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerOnce.err = speaker.Init(outputSampleRate, outputSampleRate.N(time.Second/10))
	})
	return speakerOnce.err
}

// Local plays files from disk through the system sound card.
type Local struct {
	mu sync.Mutex

	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	percent  int

	status atomic.Int32
	// generation invalidates end-of-stream callbacks of replaced streams
	generation atomic.Uint64
}

// NewLocal returns an idle local backend at full volume.
func NewLocal() *Local {
	return &Local{percent: 100}
}

func (l *Local) Status() Status {
	return Status(l.status.Load())
}

func (l *Local) Position() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.streamer == nil {
		return 0
	}

	speaker.Lock()
	pos := l.streamer.Position()
	speaker.Unlock()

	return l.format.SampleRate.D(pos)
}

func (l *Local) Duration() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.streamer == nil {
		return 0
	}

	return l.format.SampleRate.D(l.streamer.Len())
}

// Load decodes target and queues it paused at position zero.
// The previously loaded stream keeps playing if decoding fails.
func (l *Local) Load(target string) error {
	streamer, format, err := Open(target)
	if err != nil {
		return err
	}

	if err := initSpeaker(); err != nil {
		_ = streamer.Close()
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.closeLocked()

	gen := l.generation.Add(1)
	l.streamer = streamer
	l.format = format
	l.ctrl = &beep.Ctrl{
		Streamer: beep.Resample(4, format.SampleRate, outputSampleRate, streamer),
		Paused:   true,
	}
	l.volume = &effects.Volume{
		Streamer: l.ctrl,
		Base:     2,
		Volume:   volumeToGain(l.percent),
		Silent:   l.percent == 0,
	}

	speaker.Play(beep.Seq(l.volume, beep.Callback(func() {
		if l.generation.Load() == gen {
			l.status.Store(int32(Stopped))
		}
	})))

	l.status.Store(int32(Stopped))
	log.Debugf("loaded %s at %d Hz", target, format.SampleRate)
	return nil
}

func (l *Local) Play() error {
	return l.setPaused(false, Playing)
}

func (l *Local) Pause() error {
	if l.Status() != Playing {
		return nil
	}
	return l.setPaused(true, Paused)
}

// Stop pauses output and rewinds to the start of the stream.
func (l *Local) Stop() error {
	if err := l.setPaused(true, Stopped); err != nil {
		return err
	}
	return l.SeekTo(0)
}

func (l *Local) setPaused(paused bool, next Status) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.ctrl == nil {
		return ErrNotLoaded
	}

	speaker.Lock()
	l.ctrl.Paused = paused
	speaker.Unlock()

	l.status.Store(int32(next))
	return nil
}

func (l *Local) SetVolume(percent int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.percent = clampVolume(percent)
	if l.volume == nil {
		return nil
	}

	speaker.Lock()
	l.volume.Volume = volumeToGain(l.percent)
	l.volume.Silent = l.percent == 0
	speaker.Unlock()
	return nil
}

func (l *Local) SeekTo(d time.Duration) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.streamer == nil {
		return ErrNotLoaded
	}

	target := clampSeek(d, l.format.SampleRate.D(l.streamer.Len()))
	samples := l.format.SampleRate.N(target)
	if n := l.streamer.Len(); samples >= n && n > 0 {
		samples = n - 1
	}

	speaker.Lock()
	defer speaker.Unlock()
	return l.streamer.Seek(samples)
}

// Release stops output and closes the decoder. The speaker itself stays initialised.
func (l *Local) Release() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closeLocked()
	l.status.Store(int32(Stopped))
	return nil
}

func (l *Local) closeLocked() {
	l.generation.Add(1)
	speaker.Clear()

	if l.streamer != nil {
		if err := l.streamer.Close(); err != nil {
			log.Warnf("close decoder: %v", err)
		}
	}
	l.streamer = nil
	l.ctrl = nil
	l.volume = nil
}
