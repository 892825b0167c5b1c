package input

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Layout declares the buttons and areas of a screen, typically loaded from a
// YAML file so UI arrangements can change without recompiling.
//
// Example file:
//
//	buttons:
//	  - id: 1
//	    x: 16
//	    y: 16
//	    width: 96
//	    height: 32
//	areas:
//	  - id: 2
//	    x: 0
//	    y: 64
//	    width: 256
//	    height: 128
//	    special:
//	      button: right
//	      touch_time: 350ms
type Layout struct {
	Buttons []ButtonDef `yaml:"buttons"`
	Areas   []AreaDef   `yaml:"areas"`
}

// ButtonDef declares one on-screen button.
type ButtonDef struct {
	ID     uint32 `yaml:"id"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// AreaDef declares one selectable area.
type AreaDef struct {
	ID      uint32      `yaml:"id"`
	X       int         `yaml:"x"`
	Y       int         `yaml:"y"`
	Width   int         `yaml:"width"`
	Height  int         `yaml:"height"`
	Special *SpecialDef `yaml:"special"`
}

// SpecialDef declares an area's special selection button. TouchTime uses
// time.ParseDuration syntax.
type SpecialDef struct {
	Button    MouseButton `yaml:"button"`
	TouchTime string      `yaml:"touch_time"`
}

// MarshalYAML encodes the button as its name.
func (b MouseButton) MarshalYAML() (interface{}, error) {
	switch b {
	case LeftButton, RightButton, MiddleButton:
		return b.String(), nil
	}
	return nil, fmt.Errorf("input: unknown mouse button %d", int(b))
}

// UnmarshalYAML decodes a button from its name.
func (b *MouseButton) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return fmt.Errorf("input: decode mouse button: %w", err)
	}
	switch name {
	case "left":
		*b = LeftButton
	case "right":
		*b = RightButton
	case "middle":
		*b = MiddleButton
	default:
		return fmt.Errorf("input: mouse button must be one of left, right, middle; got %q", name)
	}
	return nil
}

// Validate checks IDs and dimensions. IDs must be unique across buttons and
// areas so event consumers can tell sources apart.
func (l Layout) Validate() error {
	seen := make(map[uint32]bool)
	for _, b := range l.Buttons {
		if seen[b.ID] {
			return fmt.Errorf("input: duplicate id %d in layout", b.ID)
		}
		seen[b.ID] = true
		if b.Width <= 0 || b.Height <= 0 {
			return fmt.Errorf("input: button %d has non-positive size %dx%d", b.ID, b.Width, b.Height)
		}
	}
	for _, a := range l.Areas {
		if seen[a.ID] {
			return fmt.Errorf("input: duplicate id %d in layout", a.ID)
		}
		seen[a.ID] = true
		if a.Width <= 0 || a.Height <= 0 {
			return fmt.Errorf("input: area %d has non-positive size %dx%d", a.ID, a.Width, a.Height)
		}
		if a.Special != nil && a.Special.TouchTime != "" {
			if _, err := time.ParseDuration(a.Special.TouchTime); err != nil {
				return fmt.Errorf("input: area %d touch_time: %w", a.ID, err)
			}
		}
	}
	return nil
}

// Build creates the pipeline for the layout: a Cursor followed by the
// declared buttons and areas in file order. Call Validate first; Build
// assumes a valid layout.
func (l Layout) Build() *Pipeline {
	procs := make([]Processor, 0, 1+len(l.Buttons)+len(l.Areas))
	procs = append(procs, NewCursor())
	for _, b := range l.Buttons {
		procs = append(procs, NewButton(b.ID, b.X, b.Y, b.Width, b.Height))
	}
	for _, a := range l.Areas {
		var special *Special
		if a.Special != nil {
			touchTime, _ := time.ParseDuration(a.Special.TouchTime)
			special = &Special{Button: a.Special.Button, TouchTime: touchTime}
		}
		procs = append(procs, NewArea(a.ID, a.X, a.Y, a.Width, a.Height, special))
	}
	return NewPipeline(procs...)
}

// ParseLayout decodes and validates a single layout payload.
func ParseLayout(data []byte) (Layout, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Layout{}, fmt.Errorf("input: layout payload is empty")
	}
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("input: decode layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// LayoutFile pairs a parsed layout with its on-disk source.
type LayoutFile struct {
	Layout Layout
	Path   string
}

// LoadLayout reads a YAML file from disk and returns the parsed layout.
func LoadLayout(path string) (LayoutFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return LayoutFile{}, fmt.Errorf("input: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return LayoutFile{}, fmt.Errorf("input: %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return LayoutFile{}, fmt.Errorf("input: read %s: %w", path, err)
	}
	l, err := ParseLayout(data)
	if err != nil {
		return LayoutFile{}, fmt.Errorf("input: %s: %w", path, err)
	}
	return LayoutFile{Layout: l, Path: filepath.Clean(path)}, nil
}

// LoadLayoutDir scans a directory for *.yaml layouts and returns the parsed
// files sorted by path. Missing directories are treated as "no layouts" to
// simplify startup.
func LoadLayoutDir(dir string) ([]LayoutFile, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(trimmed)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("input: read %s: %w", trimmed, err)
	}
	var files []LayoutFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !isYAMLFile(name) {
			continue
		}
		file, err := LoadLayout(filepath.Join(trimmed, name))
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

func isYAMLFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
