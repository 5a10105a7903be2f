// Package export persists a finished sketch to disk as PNG or PDF.
package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// SavePNG writes the rendered sketch to path, creating parent
// directories as needed.
func SavePNG(img image.Image, path string) error {
	if img == nil {
		return fmt.Errorf("no image to save")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// DefaultName returns a timestamped file name inside dir, for example
// drawbox-20260830-154210.png.
func DefaultName(dir, ext string) string {
	name := fmt.Sprintf("drawbox-%s.%s", time.Now().Format("20060102-150405"), ext)
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}
