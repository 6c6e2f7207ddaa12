package lyrics

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/lyrebird-cli/lyrebird/constant"
	"github.com/lyrebird-cli/lyrebird/filesystem"
)

// CachePath returns the .lrc file kept beside an audio file.
// Spaces in the file name become underscores; the directory is left as is so the file
// lands next to the track.
func CachePath(audioPath string) string {
	dir, name := filepath.Split(audioPath)
	return dir + strings.ReplaceAll(name, " ", "_") + constant.LyricsExtension
}

// Cache stores fetched lyrics beside the audio files.
type Cache struct{}

// Read returns the cached lyrics of audioPath. ok is false when nothing is cached.
func (Cache) Read(audioPath string) (text string, ok bool, err error) {
	data, err := filesystem.API().ReadFile(CachePath(audioPath))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read lyrics cache: %w", err)
	}
	return string(data), true, nil
}

// Write stores text as the lyrics of audioPath.
func (Cache) Write(audioPath, text string) error {
	if err := filesystem.API().WriteFile(CachePath(audioPath), []byte(text), 0o644); err != nil {
		return fmt.Errorf("write lyrics cache: %w", err)
	}
	return nil
}
