package theme

import (
	"testing"
	"time"

	"github.com/lixenwraith/phosphor/terminal"
	"github.com/lixenwraith/phosphor/vt"
)

func TestResolveNamedColors(t *testing.T) {
	th := Synthwave()
	def := terminal.RGB{R: 1, G: 2, B: 3}

	if got := th.Resolve(vt.DefaultColor(), def); got != def {
		t.Errorf("default resolves to %v, want %v", got, def)
	}
	if got := th.Resolve(vt.Named(1), def); got != th.Palette.Red {
		t.Errorf("named 1 = %v, want palette red %v", got, th.Palette.Red)
	}
	if got := th.Resolve(vt.Named(15), def); got != th.Palette.BrightWhite {
		t.Errorf("named 15 = %v, want bright white", got)
	}
	if got := th.Resolve(vt.Direct(7, 8, 9), def); got != (terminal.RGB{R: 7, G: 8, B: 9}) {
		t.Errorf("direct = %v, want 7,8,9", got)
	}
}

func TestResolveColorCube(t *testing.T) {
	th := Synthwave()
	def := terminal.RGB{}

	tests := []struct {
		name string
		idx  uint8
		want terminal.RGB
	}{
		{"cube origin", 16, terminal.RGB{}},
		{"cube pure red", 196, terminal.RGB{R: 255}},
		{"cube pure blue", 21, terminal.RGB{B: 255}},
		{"cube mid gray", 102, terminal.RGB{R: 135, G: 135, B: 135}},
		{"grayscale first", 232, terminal.RGB{R: 8, G: 8, B: 8}},
		{"grayscale last", 255, terminal.RGB{R: 238, G: 238, B: 238}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := th.Resolve(vt.Indexed(tt.idx), def); got != tt.want {
				t.Errorf("indexed %d = %v, want %v", tt.idx, got, tt.want)
			}
		})
	}

	// Indices 0-15 route through the theme palette, not the cube
	if got := th.Resolve(vt.Indexed(2), def); got != th.Palette.Green {
		t.Errorf("indexed 2 = %v, want palette green", got)
	}
}

func TestGradientAt(t *testing.T) {
	g := LinearGradient{Stops: []GradientStop{
		{Color: terminal.RGB{R: 255}, Position: 0.0},
		{Color: terminal.RGB{B: 255}, Position: 1.0},
	}}

	if got := g.At(-0.5); got != (terminal.RGB{R: 255}) {
		t.Errorf("below range = %v, want first stop", got)
	}
	if got := g.At(2.0); got != (terminal.RGB{B: 255}) {
		t.Errorf("above range = %v, want last stop", got)
	}
	mid := g.At(0.5)
	if mid.R == 0 || mid.B == 0 {
		t.Errorf("midpoint = %v, want blend of both stops", mid)
	}

	var empty LinearGradient
	if got := empty.At(0.5); got != (terminal.RGB{}) {
		t.Errorf("empty gradient = %v, want zero", got)
	}
}

func TestEventOverrideMerge(t *testing.T) {
	red := terminal.RGB{R: 255}
	blue := terminal.RGB{B: 255}
	beam := vt.CursorBeam
	speed := 2.0

	base := &EventOverride{
		Duration:    time.Second,
		CursorColor: &red,
		Grid:        &GridPatch{Speed: &speed},
	}
	later := &EventOverride{
		CursorColor: &blue,
		CursorShape: &beam,
	}

	base.Merge(later)

	if *base.CursorColor != blue {
		t.Errorf("cursor color = %v, want later value %v", *base.CursorColor, blue)
	}
	if base.CursorShape == nil || *base.CursorShape != beam {
		t.Error("merge should adopt the later cursor shape")
	}
	if base.Grid == nil || *base.Grid.Speed != speed {
		t.Error("merge must not clear fields the later override leaves nil")
	}
	if base.Duration != time.Second {
		t.Errorf("duration = %v, want original when later is zero", base.Duration)
	}

	base.Merge(&EventOverride{Duration: 2 * time.Second})
	if base.Duration != 2*time.Second {
		t.Errorf("duration = %v, want later nonzero value", base.Duration)
	}

	base.Merge(nil)
	if *base.CursorColor != blue {
		t.Error("nil merge must be a no-op")
	}
}

func TestDefaultBackground(t *testing.T) {
	th := Synthwave()
	want := th.Background.Stops[len(th.Background.Stops)-1].Color
	if got := th.DefaultBackground(); got != want {
		t.Errorf("default background = %v, want bottom stop %v", got, want)
	}

	var bare Theme
	if got := bare.DefaultBackground(); got != terminal.RGBBlack {
		t.Errorf("empty gradient default background = %v, want black", got)
	}
}
