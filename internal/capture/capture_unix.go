//go:build linux || freebsd || openbsd || netbsd || dragonfly

package capture

import (
	"errors"
	"fmt"
	"image"

	"github.com/godbus/dbus/v5"
)

// Indirection for tests.
var (
	portalScreenshotFn = portalScreenshot
	x11ScreenshotFn    = x11Screenshot
)

func screenshot(opts Options) (*image.RGBA, error) {
	img, err := portalScreenshotFn(opts.Interactive)
	if err == nil {
		return img, nil
	}
	if opts.Interactive || !portalUnavailable(err) {
		return nil, err
	}
	fallback, ferr := x11ScreenshotFn()
	if ferr != nil {
		return nil, fmt.Errorf("portal screenshot: %v; x11 fallback: %w", err, ferr)
	}
	return fallback, nil
}

// portalUnavailable reports whether the portal error means no portal is
// serving the bus, as opposed to the user cancelling or a decode failure.
func portalUnavailable(err error) bool {
	var dbusErr *dbus.Error
	if errors.As(err, &dbusErr) {
		switch dbusErr.Name {
		case "org.freedesktop.DBus.Error.ServiceUnknown",
			"org.freedesktop.DBus.Error.Disconnected",
			"org.freedesktop.DBus.Error.NoReply",
			"org.freedesktop.portal.Error.NotSupported":
			return true
		}
		return false
	}
	// Connection refusals surface as plain errors from ConnectSessionBus.
	return errors.Is(err, errNoSessionBus)
}
