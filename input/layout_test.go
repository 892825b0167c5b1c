package input

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const layoutYAML = `
buttons:
  - id: 1
    x: 16
    y: 16
    width: 96
    height: 32
areas:
  - id: 2
    x: 0
    y: 64
    width: 256
    height: 128
    special:
      button: right
      touch_time: 350ms
`

func TestParseLayout(t *testing.T) {
	l, err := ParseLayout([]byte(layoutYAML))
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}

	if len(l.Buttons) != 1 || len(l.Areas) != 1 {
		t.Fatalf("got %d buttons, %d areas, want 1 and 1", len(l.Buttons), len(l.Areas))
	}
	if b := l.Buttons[0]; b.ID != 1 || b.X != 16 || b.Width != 96 {
		t.Errorf("button = %+v", b)
	}
	a := l.Areas[0]
	if a.ID != 2 || a.Special == nil {
		t.Fatalf("area = %+v", a)
	}
	if a.Special.Button != RightButton || a.Special.TouchTime != "350ms" {
		t.Errorf("special = %+v", *a.Special)
	}
}

func TestParseLayout_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", "   \n"},
		{"bad yaml", "buttons: ["},
		{"unknown button name", "areas:\n  - id: 1\n    width: 10\n    height: 10\n    special:\n      button: fourth\n"},
		{"duplicate id", "buttons:\n  - {id: 1, width: 10, height: 10}\n  - {id: 1, width: 10, height: 10}\n"},
		{"zero size", "buttons:\n  - {id: 1, width: 0, height: 10}\n"},
		{"bad touch time", "areas:\n  - id: 1\n    width: 10\n    height: 10\n    special:\n      button: right\n      touch_time: soon\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLayout([]byte(tt.yaml)); err == nil {
				t.Error("ParseLayout accepted an invalid layout")
			}
		})
	}
}

func TestLayout_Build(t *testing.T) {
	l, err := ParseLayout([]byte(layoutYAML))
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}

	p := l.Build()
	events := p.Process([]Event{
		RawMove{X: 20, Y: 20},
		RawMouse{State: Pressed, Button: LeftButton},
	}, 16*time.Millisecond)

	if len(events) != 1 || events[0] != (ButtonPressed{ID: 1}) {
		t.Errorf("events = %v, want [ButtonPressed 1]", events)
	}
}

func TestLoadLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "screen.yaml")
	if err := os.WriteFile(path, []byte(layoutYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	file, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	if file.Path != path {
		t.Errorf("Path = %q, want %q", file.Path, path)
	}
	if len(file.Layout.Buttons) != 1 {
		t.Errorf("got %d buttons, want 1", len(file.Layout.Buttons))
	}
}

func TestLoadLayout_Missing(t *testing.T) {
	if _, err := LoadLayout(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadLayout accepted a missing file")
	}
}

func TestLoadLayoutDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.yaml", "a.yml"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(layoutYAML), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	// Non-YAML files are skipped.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := LoadLayoutDir(dir)
	if err != nil {
		t.Fatalf("LoadLayoutDir: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d layouts, want 2", len(files))
	}
	if files[0].Path > files[1].Path {
		t.Error("layouts are not sorted by path")
	}
}

func TestLoadLayoutDir_Missing(t *testing.T) {
	files, err := LoadLayoutDir(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("LoadLayoutDir: %v", err)
	}
	if files != nil {
		t.Errorf("files = %v, want nil", files)
	}
}

func TestLoadLayoutDir_Empty(t *testing.T) {
	files, err := LoadLayoutDir("")
	if err != nil || files != nil {
		t.Errorf("LoadLayoutDir(\"\") = (%v, %v), want (nil, nil)", files, err)
	}
}
