// Package notify raises desktop notifications for sketch lifecycle
// events. Events are opt-in: enablement comes from the [notify] section
// of the configuration, with command-line flags layered on top.
package notify

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/CyrusCastle/DrawBox/internal/config"
	"github.com/CyrusCastle/DrawBox/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventSave fires when a sketch is written to disk from the window.
	EventSave Event = "save"
	// EventCopy fires when the rendered sketch lands on the clipboard.
	EventCopy Event = "copy"
	// EventCapture fires when a screen grab becomes the background.
	EventCapture Event = "capture"
	// EventExport fires when a gesture script is exported headlessly.
	EventExport Event = "export"
)

const title = "DrawBox"

// Notifier gates desktop notifications per event. The zero-value and nil
// Notifier never notify.
type Notifier struct {
	enabled map[Event]bool
}

// New returns a Notifier with every event disabled.
func New() *Notifier {
	return &Notifier{enabled: make(map[Event]bool)}
}

// FromConfig returns a Notifier toggled per the [notify] configuration
// section.
func FromConfig(c config.Notify) *Notifier {
	n := New()
	n.enabled[EventSave] = c.Save
	n.enabled[EventCopy] = c.Copy
	n.enabled[EventCapture] = c.Capture
	n.enabled[EventExport] = c.Export
	return n
}

// Enable overrides the toggle for one event, typically from a flag.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	if n.enabled == nil {
		n.enabled = make(map[Event]bool)
	}
	n.enabled[event] = enabled
}

func (n *Notifier) enabledFor(event Event) bool {
	return n != nil && n.enabled[event]
}

// Save announces a sketch written to disk, pointing the notification at
// the saved file so platforms that support it show a thumbnail.
func (n *Notifier) Save(path string) {
	if !n.enabledFor(EventSave) {
		return
	}
	detail, icon := resolveSaved(path)
	n.send(EventSave, fmt.Sprintf("Saved %s", detail), platform.Options{IconPath: icon})
}

// Export announces a finished headless export.
func (n *Notifier) Export(path string) {
	if !n.enabledFor(EventExport) {
		return
	}
	detail, _ := resolveSaved(path)
	n.send(EventExport, fmt.Sprintf("Exported %s", detail), platform.Options{})
}

// Copy announces the sketch landing on the clipboard.
func (n *Notifier) Copy(detail string) {
	if !n.enabledFor(EventCopy) {
		return
	}
	if strings.TrimSpace(detail) == "" {
		detail = "sketch"
	}
	n.send(EventCopy, fmt.Sprintf("Copied %s to clipboard", detail), platform.Options{})
}

// Capture announces a captured background, attaching a preview image
// when one can be written.
func (n *Notifier) Capture(detail string, img image.Image) {
	if !n.enabledFor(EventCapture) {
		return
	}
	opts := platform.Options{}
	if path, cleanup := previewFile(img); path != "" {
		defer cleanup()
		opts.IconPath = path
	}
	n.send(EventCapture, fmt.Sprintf("Captured %s", detail), opts)
}

// Indirection for tests.
var notifyFn = platform.Notify

func (n *Notifier) send(event Event, body string, opts platform.Options) {
	if err := notifyFn(title, body, opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}

// resolveSaved absolutizes a saved path for display and returns it again
// as an icon path when the file exists.
func resolveSaved(path string) (detail, icon string) {
	detail = strings.TrimSpace(path)
	abs, err := filepath.Abs(path)
	if err != nil {
		return detail, ""
	}
	detail = abs
	if _, err := os.Stat(abs); err == nil {
		icon = abs
	}
	return detail, icon
}

// previewFile writes img to a temporary PNG for use as a notification
// icon. The returned cleanup removes it; on any failure the path is
// empty and the preview is simply skipped.
func previewFile(img image.Image) (string, func()) {
	if img == nil {
		return "", nil
	}
	f, err := os.CreateTemp("", "drawbox-preview-*.png")
	if err != nil {
		log.Printf("notification preview: %v", err)
		return "", nil
	}
	path := f.Name()
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Printf("notification preview: %v", err)
		_ = os.Remove(path)
		return "", nil
	}
	return path, func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("remove preview: %v", err)
		}
	}
}
