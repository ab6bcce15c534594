package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/phosphor/vt"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "phosphor.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
fps = 30
cursor_shape = "beam"
blink_interval_ms = 0

[audio]
enabled = false

[crt]
enabled = true
scanline_depth = 0.3
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FPS != 30 {
		t.Errorf("fps = %d, want 30", cfg.FPS)
	}
	if cfg.TickInterval() != time.Second/30 {
		t.Errorf("tick interval = %v, want %v", cfg.TickInterval(), time.Second/30)
	}
	if cfg.Shape() != vt.CursorBeam {
		t.Errorf("shape = %v, want beam", cfg.Shape())
	}
	if cfg.BlinkInterval() != 0 {
		t.Errorf("blink interval = %v, want 0 (disabled)", cfg.BlinkInterval())
	}
	if cfg.Audio.Enabled {
		t.Error("audio should be disabled")
	}
	if !cfg.Crt.Enabled || cfg.Crt.ScanlineDepth != 0.3 {
		t.Errorf("crt = %+v, want enabled with depth 0.3", cfg.Crt)
	}
	// Untouched fields keep their defaults
	if cfg.Crt.Curvature != Default().Crt.Curvature {
		t.Errorf("curvature = %f, want default", cfg.Crt.Curvature)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero fps", "fps = 0"},
		{"huge fps", "fps = 1000"},
		{"bad shape", `cursor_shape = "wedge"`},
		{"negative blink", "blink_interval_ms = -5"},
		{"malformed toml", "fps = ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("want error, got nil")
			}
		})
	}
}

func TestShapeMapping(t *testing.T) {
	tests := []struct {
		in   string
		want vt.CursorShape
	}{
		{"block", vt.CursorBlock},
		{"beam", vt.CursorBeam},
		{"underline", vt.CursorUnderline},
	}
	for _, tt := range tests {
		cfg := Default()
		cfg.CursorShape = tt.in
		if got := cfg.Shape(); got != tt.want {
			t.Errorf("Shape(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
