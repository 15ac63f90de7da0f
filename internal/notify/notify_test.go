package notify

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/shapedit/internal/platform"
)

type sent struct {
	title, body string
	opts        platform.Options
	iconExisted bool
}

func recorder(out *[]sent) Sender {
	return func(title, body string, opts platform.Options) error {
		_, err := os.Stat(opts.IconPath)
		*out = append(*out, sent{title, body, opts, opts.IconPath != "" && err == nil})
		return nil
	}
}

func TestDisabledEventsAreSilent(t *testing.T) {
	var got []sent
	n := New(DefaultPreferences()).WithSender(recorder(&got))
	n.Save("x.png")
	n.Copy("", nil)
	if len(got) != 0 {
		t.Fatalf("expected no notifications, got %v", got)
	}

	var nilNotifier *Notifier
	nilNotifier.Enable(EventSave, true)
	nilNotifier.Save("x.png")
}

func TestSaveUsesAbsolutePathAndIcon(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	var got []sent
	n := New(DefaultPreferences()).WithSender(recorder(&got))
	n.Enable(EventSave, true)
	n.Save(path)
	if len(got) != 1 {
		t.Fatalf("expected one notification, got %d", len(got))
	}
	if got[0].title != "ShapEdit" || got[0].body != "Saved "+path {
		t.Fatalf("unexpected notification %+v", got[0])
	}
	if got[0].opts.IconPath != path {
		t.Fatalf("icon = %q", got[0].opts.IconPath)
	}
}

func TestCopyPreviewIsCleanedUp(t *testing.T) {
	var got []sent
	n := New(DefaultPreferences()).WithSender(recorder(&got))
	n.Enable(EventCopy, true)
	n.Copy("", image.NewRGBA(image.Rect(0, 0, 2, 2)))
	if len(got) != 1 {
		t.Fatalf("expected one notification, got %d", len(got))
	}
	if got[0].body != "Copied image to clipboard" {
		t.Fatalf("body = %q", got[0].body)
	}
	if !got[0].iconExisted {
		t.Fatalf("preview should exist while sending")
	}
	if _, err := os.Stat(got[0].opts.IconPath); !os.IsNotExist(err) {
		t.Fatalf("preview not removed: %v", err)
	}
}

func TestLoadPreferencesFromEnv(t *testing.T) {
	t.Setenv("SHAPEDIT_NOTIFY_TITLE", "Shapes")
	t.Setenv("SHAPEDIT_NOTIFY_SAVE_TEXT", "Wrote %s")
	prefs := LoadPreferences()
	if prefs.Title != "Shapes" || prefs.Templates[EventSave] != "Wrote %s" {
		t.Fatalf("unexpected prefs %+v", prefs)
	}
	if prefs.Templates[EventCopy] != DefaultPreferences().Templates[EventCopy] {
		t.Fatalf("copy template should keep its default")
	}
}
