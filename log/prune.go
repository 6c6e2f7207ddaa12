package log

import (
	"os"
	"path/filepath"
	"time"

	"github.com/lyrebird-cli/lyrebird/filesystem"
	"github.com/lyrebird-cli/lyrebird/where"
)

// Retention is how long a daily log file is kept.
const Retention = 7 * 24 * time.Hour

// CollectGarbage removes log files last written before the retention window.
func CollectGarbage() {
	collectGarbage(where.Logs(), time.Now().Add(-Retention))
}

func collectGarbage(dir string, before time.Time) {
	fs := filesystem.API()

	_ = fs.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || filepath.Ext(path) != ".log" {
			return nil
		}

		if info.ModTime().Before(before) {
			if err := fs.Remove(path); err != nil {
				Warnf("remove stale log %s: %v", path, err)
			}
		}
		return nil
	})
}
