// Package capture grabs the desktop so a sketch can start from a
// screenshot background. It prefers the XDG desktop portal and falls
// back to a direct X11 root-window grab when no portal answers.
package capture

import "image"

// Options configures a screen grab.
type Options struct {
	// Interactive asks the portal to let the user pick a region. An
	// interactive grab never falls back to X11 because the fallback
	// cannot offer region selection.
	Interactive bool
}

// Screenshot captures the desktop and returns it as an RGBA image.
func Screenshot(opts Options) (*image.RGBA, error) {
	return screenshot(opts)
}
