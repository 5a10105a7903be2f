//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

// Clipboard integration only exists for the unix/X11 family of targets;
// everywhere else drawbox still builds, but copy operations fail with a
// clear message instead of a missing symbol.

package clipboard

import (
	"errors"
	"image"
)

var errUnsupported = errors.New("drawbox has no clipboard backend for this OS")

func WriteImage(image.Image) error { return errUnsupported }

func ReadImage() (image.Image, error) { return nil, errUnsupported }

func WriteText(string) error { return errUnsupported }

func ReadText() (string, error) { return "", errUnsupported }
