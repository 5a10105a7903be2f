package notify

import (
	"image"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CyrusCastle/DrawBox/internal/config"
	"github.com/CyrusCastle/DrawBox/internal/platform"
)

type sent struct {
	title string
	body  string
	opts  platform.Options
}

func recordNotifications(t *testing.T) *[]sent {
	t.Helper()
	var got []sent
	prev := notifyFn
	notifyFn = func(title, body string, opts platform.Options) error {
		got = append(got, sent{title, body, opts})
		return nil
	}
	t.Cleanup(func() { notifyFn = prev })
	return &got
}

func TestFromConfigTogglesEvents(t *testing.T) {
	got := recordNotifications(t)

	n := FromConfig(config.Notify{Save: true, Export: true})
	n.Copy("sketch")
	n.Capture("screen", nil)
	n.Save("out.png")
	n.Export("out.pdf")

	if len(*got) != 2 {
		t.Fatalf("expected 2 notifications, got %d: %+v", len(*got), *got)
	}
	if !strings.HasPrefix((*got)[0].body, "Saved ") {
		t.Errorf("unexpected save body %q", (*got)[0].body)
	}
	if !strings.HasPrefix((*got)[1].body, "Exported ") {
		t.Errorf("unexpected export body %q", (*got)[1].body)
	}
	for _, s := range *got {
		if s.title != "DrawBox" {
			t.Errorf("unexpected title %q", s.title)
		}
	}
}

func TestEnableOverridesConfig(t *testing.T) {
	got := recordNotifications(t)

	n := FromConfig(config.Notify{Copy: true})
	n.Enable(EventCopy, false)
	n.Enable(EventCapture, true)

	n.Copy("sketch")
	n.Capture("screen", nil)

	if len(*got) != 1 {
		t.Fatalf("expected 1 notification, got %d: %+v", len(*got), *got)
	}
	if want := "Captured screen"; (*got)[0].body != want {
		t.Errorf("expected body %q, got %q", want, (*got)[0].body)
	}
}

func TestNilNotifierIsSilent(t *testing.T) {
	got := recordNotifications(t)

	var n *Notifier
	n.Enable(EventSave, true)
	n.Save("out.png")
	n.Copy("")
	n.Export("out.pdf")

	if len(*got) != 0 {
		t.Fatalf("expected no notifications, got %+v", *got)
	}
}

func TestCopyDefaultsDetail(t *testing.T) {
	got := recordNotifications(t)

	n := New()
	n.Enable(EventCopy, true)
	n.Copy("   ")

	if len(*got) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(*got))
	}
	if want := "Copied sketch to clipboard"; (*got)[0].body != want {
		t.Errorf("expected body %q, got %q", want, (*got)[0].body)
	}
}

func TestCaptureAttachesPreview(t *testing.T) {
	got := recordNotifications(t)

	n := New()
	n.Enable(EventCapture, true)
	n.Capture("screen", image.NewRGBA(image.Rect(0, 0, 2, 2)))

	if len(*got) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(*got))
	}
	icon := (*got)[0].opts.IconPath
	if icon == "" || filepath.Ext(icon) != ".png" {
		t.Errorf("expected a PNG preview icon, got %q", icon)
	}
}
