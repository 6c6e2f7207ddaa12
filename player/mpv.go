package player

import (
	"crypto/rand"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lyrebird-cli/lyrebird/constant"
	"github.com/lyrebird-cli/lyrebird/log"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
	quitTimeout       = 3 * time.Second
)

// observed are the mpv properties mirrored into the backend state.
var observed = []string{
	"idle-active",
	"pause",
	"time-pos",
	"duration",
	"media-title",
	"metadata/by-key/icy-title",
}

// MPV plays network streams through an mpv child process driven over JSON-IPC.
// The process is started lazily by the first Load and lives until Release.
type MPV struct {
	binary     string
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{} // closed when mpv process exits
	events     *EventListener
	mu         sync.Mutex // Protects socket writes

	percent atomic.Int32
	idle    atomic.Bool
	paused  atomic.Bool
	loaded  atomic.Bool
	pos     atomic.Int64
	dur     atomic.Int64
	title   atomic.Value
	icy     atomic.Value
}

// NewMPV creates an mpv backend; binary defaults to "mpv" when empty.
func NewMPV(binary string) *MPV {
	if binary == "" {
		binary = "mpv"
	}

	m := &MPV{binary: binary}
	m.percent.Store(100)
	m.idle.Store(true)
	m.title.Store("")
	m.icy.Store("")
	return m
}

func (m *MPV) running() bool {
	if m.exited == nil {
		return false
	}

	select {
	case <-m.exited:
		return false
	default:
		return true
	}
}

func (m *MPV) Status() Status {
	switch {
	case !m.running() || !m.loaded.Load() || m.idle.Load():
		return Stopped
	case m.paused.Load():
		return Paused
	default:
		return Playing
	}
}

func (m *MPV) Position() time.Duration { return time.Duration(m.pos.Load()) }

// Duration is zero for live streams.
func (m *MPV) Duration() time.Duration { return time.Duration(m.dur.Load()) }

// Load replaces whatever mpv is playing with target, paused.
func (m *MPV) Load(target string) error {
	safe, err := sanitizeMediaTarget(target)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	if !m.running() {
		if err := m.start(); err != nil {
			return err
		}
	}

	if err := m.Set("pause", true); err != nil {
		return err
	}
	if _, err := m.sendCommand([]any{"loadfile", safe, "replace"}); err != nil {
		return fmt.Errorf("loadfile: %w", err)
	}

	m.pos.Store(0)
	m.dur.Store(0)
	m.paused.Store(true)
	m.idle.Store(false)
	m.loaded.Store(true)
	return nil
}

func (m *MPV) start() error {
	if m.socketPath == "" {
		randomBytes := make([]byte, 4)
		if _, err := rand.Read(randomBytes); err != nil {
			return fmt.Errorf("generate socket name: %w", err)
		}
		m.socketPath = filepath.Join(os.TempDir(), fmt.Sprintf("%s-%x.sock", constant.Lyrebird, randomBytes))
	}

	args := []string{
		"--no-terminal",
		"--really-quiet",
		"--no-video",
		"--idle=yes",
		fmt.Sprintf("--volume=%d", m.percent.Load()),
		fmt.Sprintf("--input-ipc-server=%s", m.socketPath),
	}

	m.cmd = exec.Command(m.binary, args...)
	m.cmd.SysProcAttr = sysProcAttr()
	m.cmd.Stdout = nil
	m.cmd.Stderr = nil
	m.cmd.Stdin = nil

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", m.binary, err)
	}

	exited := make(chan struct{})
	m.exited = exited
	cmd := m.cmd
	go func() {
		_ = cmd.Wait()
		close(exited)
	}()

	if err := m.waitForSocket(); err != nil {
		select {
		case <-exited:
		default:
			log.Warnf("killing mpv: socket never became ready")
			_ = killProcess(cmd)
		}
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	m.events = NewEventListener(m.socketPath, observed, m.onEvent)
	if err := m.events.Start(); err != nil {
		log.Warnf("mpv events unavailable: %v", err)
	}

	return nil
}

// waitForSocket polls until the mpv IPC socket is accepting connections.
func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return fmt.Errorf("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			_ = conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

func (m *MPV) onEvent(property string, data any) {
	switch property {
	case "idle-active":
		if b, ok := data.(bool); ok {
			m.idle.Store(b)
		}
	case "pause":
		if b, ok := data.(bool); ok {
			m.paused.Store(b)
		}
	case "time-pos":
		m.pos.Store(int64(secondsOf(data)))
	case "duration":
		m.dur.Store(int64(secondsOf(data)))
	case "media-title":
		if s, ok := data.(string); ok {
			m.title.Store(s)
		}
	case "metadata/by-key/icy-title":
		if s, ok := data.(string); ok {
			m.icy.Store(s)
		}
	}
}

func secondsOf(data any) time.Duration {
	f, ok := data.(float64)
	if !ok || f < 0 {
		return 0
	}
	return time.Duration(f * float64(time.Second))
}

func (m *MPV) Play() error {
	if !m.loaded.Load() || !m.running() {
		return ErrNotLoaded
	}
	if err := m.Set("pause", false); err != nil {
		return err
	}
	m.paused.Store(false)
	return nil
}

func (m *MPV) Pause() error {
	if !m.running() {
		return nil
	}
	if err := m.Set("pause", true); err != nil {
		return err
	}
	m.paused.Store(true)
	return nil
}

// Stop unloads the stream but keeps the process alive.
func (m *MPV) Stop() error {
	if !m.running() {
		return nil
	}
	if _, err := m.sendCommand([]any{"stop"}); err != nil {
		return err
	}
	m.idle.Store(true)
	m.loaded.Store(false)
	m.pos.Store(0)
	return nil
}

func (m *MPV) SetVolume(percent int) error {
	percent = clampVolume(percent)
	m.percent.Store(int32(percent))

	if !m.running() {
		return nil
	}
	return m.Set("volume", percent)
}

func (m *MPV) SeekTo(d time.Duration) error {
	if !m.loaded.Load() || !m.running() {
		return ErrNotLoaded
	}

	target := clampSeek(d, m.Duration())
	_, err := m.sendCommand([]any{"seek", target.Seconds(), "absolute"})
	return err
}

// RefreshMetadata asks mpv for the current stream title without blocking the caller.
func (m *MPV) RefreshMetadata() <-chan Metadata {
	out := make(chan Metadata, 1)

	go func() {
		defer close(out)

		md := Metadata{
			Title:       m.title.Load().(string),
			StreamTitle: m.icy.Load().(string),
		}

		if m.running() {
			if s, err := m.getStringProperty("media-title"); err == nil {
				md.Title = s
			}
			if s, err := m.getStringProperty("metadata/by-key/icy-title"); err == nil {
				md.StreamTitle = s
			}
		}

		out <- md
	}()

	return out
}

// Release shuts down the mpv process and cleans up resources.
func (m *MPV) Release() error {
	if m.events != nil {
		m.events.Stop()
		m.events = nil
	}

	defer func() {
		m.loaded.Store(false)
		m.idle.Store(true)
		m.pos.Store(0)
		m.dur.Store(0)
	}()

	if !m.running() {
		return nil
	}

	_, _ = m.sendCommand([]any{"quit"})

	select {
	case <-m.exited:
	case <-time.After(quitTimeout):
		_ = killProcess(m.cmd)
	}

	_ = os.Remove(m.socketPath)
	return nil
}

// Set a property
func (m *MPV) Set(property string, value any) error {
	_, err := m.sendCommand([]any{"set_property", property, value})
	return err
}

func (m *MPV) getStringProperty(name string) (string, error) {
	data, err := m.sendCommand([]any{"get_property", name})
	if err != nil {
		return "", err
	}

	s, ok := data.(string)
	if !ok {
		return "", fmt.Errorf("property %s: expected string, got %T", name, data)
	}
	return s, nil
}

// sanitizeMediaTarget validates that a playlist entry is safe to pass to mpv.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	// URLs must not start with - or mpv parses them as flags
	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(l), nil
}
