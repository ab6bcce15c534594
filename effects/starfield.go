package effects

import (
	"math"

	"github.com/lixenwraith/phosphor/override"
	"github.com/lixenwraith/phosphor/render"
	"github.com/lixenwraith/phosphor/terminal"
	"github.com/lixenwraith/phosphor/theme"
)

var starRunes = []rune{'·', '✦', '*', '˙'}

// Starfield is a drifting star layer on three parallax depths
type Starfield struct {
	base    *theme.StarfieldEffect
	params  theme.StarfieldEffect
	patched bool
	phase   float64
}

// NewStarfield creates the starfield effect; a nil baseline leaves it
// disabled until an override patches the channel
func NewStarfield(base *theme.StarfieldEffect) *Starfield {
	s := &Starfield{base: base}
	s.Restore()
	return s
}

func (s *Starfield) Channel() override.Channel {
	return override.ChannelStarfield
}

func (s *Starfield) Enabled() bool {
	return (s.base != nil || s.patched) && s.params.Density > 0
}

func (s *Starfield) ApplyPatch(p theme.EffectPatch) {
	patch, ok := p.(*theme.StarfieldPatch)
	if !ok {
		return
	}
	s.Restore()
	s.patched = true
	if patch.Color != nil {
		s.params.Color = *patch.Color
	}
	if patch.Density != nil {
		s.params.Density = *patch.Density
	}
	if patch.Speed != nil {
		s.params.Speed = *patch.Speed
	}
	if patch.Twinkle != nil {
		s.params.Twinkle = *patch.Twinkle
	}
}

func (s *Starfield) Restore() {
	s.patched = false
	if s.base != nil {
		s.params = *s.base
	} else {
		s.params = theme.StarfieldEffect{Density: 0.02, Speed: 1.0}
	}
}

func (s *Starfield) Advance(dt float64, width, height int) {
	s.phase += s.params.Speed * dt
}

func (s *Starfield) Render(buf *render.RenderBuffer) {
	width, height := buf.Size()
	count := int(s.params.Density * float64(width*height))
	if count <= 0 {
		return
	}
	for i := 0; i < count; i++ {
		idx := uint64(i)
		// Deeper layers drift slower
		layer := 1 + i%3
		drift := s.phase * float64(layer) / 3.0
		x := int(unit(idx)*float64(width)+drift) % width
		if x < 0 {
			x += width
		}
		y := int(unit(idx*31+7) * float64(height))

		brightness := 0.4 + 0.2*float64(layer)
		if s.params.Twinkle {
			brightness *= 0.6 + 0.4*math.Sin(s.phase*3.0+float64(scramble(idx)%628)/100.0)
		}
		r := starRunes[scramble(idx*17)%uint64(len(starRunes))]
		buf.Set(x, y, r, terminal.Scale(s.params.Color, brightness), terminal.RGBBlack,
			render.BlendAddFg, 1.0, terminal.AttrNone)
	}
}
