package effects

import (
	"testing"

	"github.com/lixenwraith/phosphor/render"
	"github.com/lixenwraith/phosphor/terminal"
	"github.com/lixenwraith/phosphor/theme"
)

func renderToBuffer(e render.BackdropEffect, frames, width, height int) *render.RenderBuffer {
	buf := render.NewRenderBuffer(width, height)
	buf.Clear(terminal.RGBBlack)
	for i := 0; i < frames; i++ {
		e.Advance(render.FixedDt, width, height)
	}
	e.Render(buf)
	return buf
}

func litCells(buf *render.RenderBuffer) int {
	lit := 0
	for _, c := range buf.Cells() {
		if c.Fg != terminal.RGBBlack || c.Bg != terminal.RGBBlack {
			lit++
		}
	}
	return lit
}

func TestEffectsDeterministicUnderFixedStep(t *testing.T) {
	base := &theme.StarfieldEffect{
		Color:   terminal.RGB{R: 200, G: 200, B: 255},
		Density: 0.05,
		Speed:   2.0,
		Twinkle: true,
	}

	a := renderToBuffer(NewStarfield(base), 120, 80, 24)
	b := renderToBuffer(NewStarfield(base), 120, 80, 24)

	cellsA, cellsB := a.Cells(), b.Cells()
	for i := range cellsA {
		if cellsA[i] != cellsB[i] {
			t.Fatalf("starfield diverged at cell %d after identical step sequences", i)
		}
	}
}

func TestEffectsRenderSomething(t *testing.T) {
	cyan := terminal.RGB{G: 229, B: 255}

	tests := []struct {
		name   string
		effect render.BackdropEffect
	}{
		{"grid", NewGrid(&theme.GridEffect{Color: cyan, Spacing: 4, Speed: 1, Opacity: 1})},
		{"starfield", NewStarfield(&theme.StarfieldEffect{Color: cyan, Density: 0.05, Speed: 1})},
		{"rain", NewRain(&theme.RainEffect{Color: cyan, Density: 0.3, Speed: 10})},
		{"particles", NewParticles(&theme.ParticleEffect{Color: cyan, Count: 30, Speed: 1})},
		{"matrix", NewMatrix(&theme.MatrixEffect{Color: cyan, Density: 0.4, Speed: 12})},
		{"shape", NewShape(&theme.ShapeEffect{Color: cyan, Kind: theme.ShapeDiamond, Size: 0.6, Spin: 1})},
		{"sprite", NewSprite(&theme.SpriteEffect{Frames: []string{"<o>", "<O>"}, Color: cyan, Fps: 4, Opacity: 1})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.effect.Enabled() {
				t.Fatal("effect with a baseline should be enabled")
			}
			buf := renderToBuffer(tt.effect, 30, 60, 20)
			if litCells(buf) == 0 {
				t.Error("effect rendered nothing after 30 frames")
			}
		})
	}
}

func TestNilBaselineDisabledUntilPatched(t *testing.T) {
	g := NewGrid(nil)
	if g.Enabled() {
		t.Fatal("grid without a baseline should start disabled")
	}

	opacity := 0.8
	g.ApplyPatch(&theme.GridPatch{Opacity: &opacity})
	if !g.Enabled() {
		t.Error("patched grid should enable")
	}
	if g.params.Opacity != opacity {
		t.Errorf("patched opacity = %f, want %f", g.params.Opacity, opacity)
	}

	g.Restore()
	if g.Enabled() {
		t.Error("restored grid should disable again without a baseline")
	}
}

func TestApplyPatchRebuildsFromBaseline(t *testing.T) {
	base := &theme.RainEffect{Color: terminal.RGB{B: 255}, Density: 0.2, Speed: 5}
	r := NewRain(base)

	fast := 20.0
	r.ApplyPatch(&theme.RainPatch{Speed: &fast})
	if r.params.Speed != fast || r.params.Density != base.Density {
		t.Errorf("patched params = %+v, want speed %f over baseline", r.params, fast)
	}

	// A second patch must not stack on the first
	dense := 0.9
	r.ApplyPatch(&theme.RainPatch{Density: &dense})
	if r.params.Speed != base.Speed {
		t.Errorf("speed = %f, want baseline %f after unrelated patch", r.params.Speed, base.Speed)
	}
	if r.params.Density != dense {
		t.Errorf("density = %f, want %f", r.params.Density, dense)
	}

	r.Restore()
	if r.params != *base {
		t.Errorf("restored params = %+v, want baseline %+v", r.params, *base)
	}
}

func TestApplyPatchIgnoresWrongType(t *testing.T) {
	base := &theme.GridEffect{Spacing: 6, Opacity: 0.5}
	g := NewGrid(base)

	g.ApplyPatch(&theme.RainPatch{})
	if g.params != *base {
		t.Errorf("mismatched patch mutated params: %+v", g.params)
	}
}

func TestSpriteBouncesInsideFrame(t *testing.T) {
	s := NewSprite(&theme.SpriteEffect{Frames: []string{"##\n##"}, Fps: 4, Opacity: 1})
	for i := 0; i < 2000; i++ {
		s.Advance(render.FixedDt, 30, 10)
		if s.x < 0 || s.y < 0 || s.x > 28 || s.y > 8 {
			t.Fatalf("sprite escaped the frame at step %d: (%f, %f)", i, s.x, s.y)
		}
	}
}
