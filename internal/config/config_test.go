package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
save_dir = /tmp/shapes
border_hover_offset = 8
canvas_width: 1024

[notify]
save = false
copy = true

[theme.my_custom_theme]
Stroke = #111111
SelectedFill: #FF000080
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	if cfg.SaveDir != "/tmp/shapes" {
		t.Errorf("Expected save_dir '/tmp/shapes', got '%s'", cfg.SaveDir)
	}
	if cfg.Tolerance != 8 {
		t.Errorf("Expected tolerance 8, got %g", cfg.Tolerance)
	}
	if cfg.CanvasWidth != 1024 || cfg.CanvasHeight != DefaultCanvasHeight {
		t.Errorf("Unexpected canvas %dx%d", cfg.CanvasWidth, cfg.CanvasHeight)
	}
	if cfg.Notify.Save {
		t.Error("Expected notify.save to be false")
	}
	if !cfg.Notify.Copy {
		t.Error("Expected notify.copy to be true")
	}

	theme, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if theme.Stroke.R != 0x11 || theme.Stroke.G != 0x11 || theme.Stroke.B != 0x11 {
		t.Errorf("Unexpected Stroke color: %+v", theme.Stroke)
	}
	if theme.SelectedFill.A != 0x80 {
		t.Errorf("Unexpected SelectedFill alpha: %+v", theme.SelectedFill)
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Tolerance != 5 {
		t.Errorf("Expected default tolerance 5, got %g", cfg.Tolerance)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"border_hover_offset = wide",
		"border_hover_offset = -1",
		"canvas_height = 0",
		"[notify]\nsave = maybe",
		"[theme.x]\nStroke = #12",
	} {
		if _, err := Parse(strings.NewReader(in)); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
save_dir = /home/user/shapes
border_hover_offset = 3.5

[notify]
save = true
copy = false

[theme.custom]
Name = custom
Stroke = #000000
CheckerDark = #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	generated := cfg.String()

	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	if cfg.Theme != cfg2.Theme {
		t.Errorf("Theme mismatch: %q vs %q", cfg.Theme, cfg2.Theme)
	}
	if cfg.SaveDir != cfg2.SaveDir {
		t.Errorf("SaveDir mismatch: %q vs %q", cfg.SaveDir, cfg2.SaveDir)
	}
	if cfg.Tolerance != cfg2.Tolerance {
		t.Errorf("Tolerance mismatch: %g vs %g", cfg.Tolerance, cfg2.Tolerance)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}

	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("Theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestLoaderOverrideAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.rc")
	l := NewLoader("test", path)

	if got := l.GetConfigPath(); got == path {
		t.Fatalf("missing override should not resolve")
	}

	cfg := New()
	cfg.Theme = "dark"
	cfg.Tolerance = 7
	written, err := l.Save(cfg)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(written); err != nil {
		t.Fatalf("saved file missing: %v", err)
	}

	loaded, err := NewLoader("test", written).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Theme != "dark" || loaded.Tolerance != 7 {
		t.Fatalf("unexpected loaded config %+v", loaded)
	}
}
