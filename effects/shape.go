package effects

import (
	"math"

	"github.com/lixenwraith/phosphor/override"
	"github.com/lixenwraith/phosphor/render"
	"github.com/lixenwraith/phosphor/terminal"
	"github.com/lixenwraith/phosphor/theme"
)

// Shape draws a large rotating outline figure centered on the frame
type Shape struct {
	base    *theme.ShapeEffect
	params  theme.ShapeEffect
	patched bool
	angle   float64
}

// NewShape creates the shape effect; a nil baseline leaves it disabled
// until an override patches the channel
func NewShape(base *theme.ShapeEffect) *Shape {
	s := &Shape{base: base}
	s.Restore()
	return s
}

func (s *Shape) Channel() override.Channel {
	return override.ChannelShape
}

func (s *Shape) Enabled() bool {
	return (s.base != nil || s.patched) && s.params.Size > 0
}

func (s *Shape) ApplyPatch(p theme.EffectPatch) {
	patch, ok := p.(*theme.ShapePatch)
	if !ok {
		return
	}
	s.Restore()
	s.patched = true
	if patch.Color != nil {
		s.params.Color = *patch.Color
	}
	if patch.Kind != nil {
		s.params.Kind = *patch.Kind
	}
	if patch.Size != nil {
		s.params.Size = *patch.Size
	}
	if patch.Spin != nil {
		s.params.Spin = *patch.Spin
	}
}

func (s *Shape) Restore() {
	s.patched = false
	if s.base != nil {
		s.params = *s.base
	} else {
		s.params = theme.ShapeEffect{Size: 0.5, Spin: 0.3}
	}
}

func (s *Shape) Advance(dt float64, width, height int) {
	s.angle += s.params.Spin * dt
}

func (s *Shape) Render(buf *render.RenderBuffer) {
	width, height := buf.Size()
	cx := float64(width) / 2
	cy := float64(height) / 2
	// Terminal cells are roughly twice as tall as wide
	rx := s.params.Size * cx
	ry := s.params.Size * cy * 0.9

	vertices := 0
	switch s.params.Kind {
	case theme.ShapeDiamond:
		vertices = 4
	case theme.ShapeTriangle:
		vertices = 3
	case theme.ShapeCircle:
		vertices = 0
	}

	steps := int(2 * math.Pi * math.Max(rx, ry))
	if steps < 16 {
		steps = 16
	}
	for i := 0; i < steps; i++ {
		t := 2 * math.Pi * float64(i) / float64(steps)
		var r float64 = 1.0
		if vertices > 0 {
			// Polygon radius in polar form
			sector := math.Pi / float64(vertices)
			r = math.Cos(sector) / math.Cos(math.Mod(t, 2*sector)-sector)
		}
		x := cx + rx*r*math.Cos(t+s.angle)
		y := cy + ry*r*math.Sin(t+s.angle)
		buf.Set(int(x), int(y), '·', s.params.Color, terminal.RGBBlack,
			render.BlendAddFg, 1.0, terminal.AttrNone)
	}
}
