package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/ombra/engine/resources"
)

func writeDescriptor(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hero.sheet.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write descriptor: %v", err)
	}
	return path
}

func TestSpritesheetLoaderLoad(t *testing.T) {
	path := writeDescriptor(t, `[spritesheet]
frame_width = 32
frame_height = 48
frame_count = 4
columns = 4
fps = 8.0
loop = true
`)

	sl := &SpritesheetLoader{}
	res, err := sl.Load(path, resources.ResourceTypeSpritesheet, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fd, ok := res.Data.(*resources.FrameData)
	if !ok {
		t.Fatalf("expected *resources.FrameData, got %T", res.Data)
	}
	if fd.FrameWidth != 32 || fd.FrameHeight != 48 || fd.FrameCount != 4 || fd.Columns != 4 {
		t.Errorf("unexpected frame data: %+v", fd)
	}
	if fd.FPS != 8.0 || !fd.Loop {
		t.Errorf("unexpected playback settings: fps=%f loop=%t", fd.FPS, fd.Loop)
	}

	if err := sl.Unload(res); err != nil {
		t.Errorf("unload failed: %v", err)
	}
	if res.Data != nil {
		t.Error("unload must drop the parsed data")
	}
}

func TestSpritesheetLoaderRejectsIncompleteDescriptors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"missing frame size", "[spritesheet]\nframe_count = 4\n"},
		{"missing frame count", "[spritesheet]\nframe_width = 32\nframe_height = 48\n"},
		{"not toml", "{\"frame_width\": 32}"},
	}

	sl := &SpritesheetLoader{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDescriptor(t, tt.content)
			if _, err := sl.Load(path, resources.ResourceTypeSpritesheet, nil); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestSpritesheetLoaderMissingFile(t *testing.T) {
	sl := &SpritesheetLoader{}
	if _, err := sl.Load(filepath.Join(t.TempDir(), "nope.sheet.toml"), resources.ResourceTypeSpritesheet, nil); err == nil {
		t.Error("expected an error for a missing file")
	}
}
