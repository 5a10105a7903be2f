//go:build !linux && !darwin && !windows

package platform

// Notify silently drops the notification on platforms without a desktop
// notification service. Callers treat alerts as best-effort, so there is
// nothing useful to report here.
func Notify(title, body string, opts Options) error {
	return nil
}
