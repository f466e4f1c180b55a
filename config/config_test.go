package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("failed to load defaults: %v", err)
	}

	if cfg.Screen.Width != 600 || cfg.Screen.Height != 600 {
		t.Errorf("expected 600x600 window, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Screen.Title != "OpenGL Heatmap" {
		t.Errorf("expected title \"OpenGL Heatmap\", got %q", cfg.Screen.Title)
	}
	if !cfg.Screen.VSync {
		t.Error("expected vsync enabled by default")
	}
	if cfg.Field.Width != 256 || cfg.Field.Height != 256 {
		t.Errorf("expected 256x256 field, got %dx%d", cfg.Field.Width, cfg.Field.Height)
	}
	if cfg.Field.Scale != 30.0 {
		t.Errorf("expected scale 30.0, got %f", cfg.Field.Scale)
	}
	if cfg.Shaders.Vertex != "shaders/vertex_shader.glsl" {
		t.Errorf("unexpected vertex shader path %q", cfg.Shaders.Vertex)
	}
	if cfg.Shaders.Fragment != "shaders/fragment_shader.glsl" {
		t.Errorf("unexpected fragment shader path %q", cfg.Shaders.Fragment)
	}
	if cfg.Derived.Cells != 256*256 {
		t.Errorf("expected %d derived cells, got %d", 256*256, cfg.Derived.Cells)
	}
}

func TestLoadOverlayKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	overlay := `screen:
  width: 800
field:
  scale: 12.5
`
	if err := os.WriteFile(path, []byte(overlay), 0644); err != nil {
		t.Fatalf("failed to write overlay: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load overlay: %v", err)
	}

	if cfg.Screen.Width != 800 {
		t.Errorf("expected overridden width 800, got %d", cfg.Screen.Width)
	}
	if cfg.Screen.Height != 600 {
		t.Errorf("expected default height 600, got %d", cfg.Screen.Height)
	}
	if cfg.Field.Scale != 12.5 {
		t.Errorf("expected overridden scale 12.5, got %f", cfg.Field.Scale)
	}
	if cfg.Field.Width != 256 {
		t.Errorf("expected default field width 256, got %d", cfg.Field.Width)
	}
}

func TestLoadBackfillsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	overlay := `field:
  width: -4
  height: 0
`
	if err := os.WriteFile(path, []byte(overlay), 0644); err != nil {
		t.Fatalf("failed to write overlay: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load overlay: %v", err)
	}

	if cfg.Field.Width != 256 || cfg.Field.Height != 256 {
		t.Errorf("expected invalid dimensions backfilled to 256x256, got %dx%d",
			cfg.Field.Width, cfg.Field.Height)
	}
	if cfg.Derived.Cells != 256*256 {
		t.Errorf("expected derived cells from backfilled dimensions, got %d", cfg.Derived.Cells)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("failed to load defaults: %v", err)
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("failed to reload written config: %v", err)
	}

	if loaded.Screen != cfg.Screen {
		t.Errorf("screen config changed in roundtrip: %+v vs %+v", loaded.Screen, cfg.Screen)
	}
	if loaded.Field != cfg.Field {
		t.Errorf("field config changed in roundtrip: %+v vs %+v", loaded.Field, cfg.Field)
	}
	if loaded.Shaders != cfg.Shaders {
		t.Errorf("shaders config changed in roundtrip: %+v vs %+v", loaded.Shaders, cfg.Shaders)
	}
}
