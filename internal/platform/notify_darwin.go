//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
)

// Notify posts a banner through Notification Center. It shells out to
// osascript rather than linking UserNotifications, which keeps the binary
// cgo-free; the trade-off is that opts.IconPath cannot be honored, since
// AppleScript notifications always use the sending app's icon.
func Notify(title, body string, opts Options) error {
	script := fmt.Sprintf("display notification %q with title %q", body, title)
	if err := exec.Command("osascript", "-e", script).Run(); err != nil {
		return fmt.Errorf("osascript notification: %w", err)
	}
	return nil
}
