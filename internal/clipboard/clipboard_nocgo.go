//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"errors"
	"image"
	"os"
	"sync"
)

// Without cgo the X11/Wayland clipboard bindings cannot link, so every
// operation reports why instead of silently dropping the sketch.
var (
	initOnce     sync.Once
	initErr      error
	errNoDisplay = errors.New("clipboard needs DISPLAY or WAYLAND_DISPLAY to be set")
	errNoCgo     = errors.New("this drawbox build has no clipboard support (compiled without cgo)")
)

func ensureInit() error {
	initOnce.Do(func() {
		if !hasDisplay() {
			initErr = errNoDisplay
			return
		}
		initErr = errNoCgo
	})
	return initErr
}

func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

func WriteImage(image.Image) error {
	return ensureInit()
}

func ReadImage() (image.Image, error) {
	if err := ensureInit(); err != nil {
		return nil, err
	}
	return nil, errNoCgo
}

func WriteText(string) error {
	return ensureInit()
}

func ReadText() (string, error) {
	if err := ensureInit(); err != nil {
		return "", err
	}
	return "", errNoCgo
}
