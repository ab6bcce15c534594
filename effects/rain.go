package effects

import (
	"github.com/lixenwraith/phosphor/override"
	"github.com/lixenwraith/phosphor/render"
	"github.com/lixenwraith/phosphor/terminal"
	"github.com/lixenwraith/phosphor/theme"
)

const rainTrail = 4

// Rain draws falling streaks with fading tails and optional horizontal
// drift
type Rain struct {
	base    *theme.RainEffect
	params  theme.RainEffect
	patched bool
	phase   float64
}

// NewRain creates the rain effect; a nil baseline leaves it disabled
// until an override patches the channel
func NewRain(base *theme.RainEffect) *Rain {
	r := &Rain{base: base}
	r.Restore()
	return r
}

func (r *Rain) Channel() override.Channel {
	return override.ChannelRain
}

func (r *Rain) Enabled() bool {
	return (r.base != nil || r.patched) && r.params.Density > 0
}

func (r *Rain) ApplyPatch(p theme.EffectPatch) {
	patch, ok := p.(*theme.RainPatch)
	if !ok {
		return
	}
	r.Restore()
	r.patched = true
	if patch.Color != nil {
		r.params.Color = *patch.Color
	}
	if patch.Density != nil {
		r.params.Density = *patch.Density
	}
	if patch.Speed != nil {
		r.params.Speed = *patch.Speed
	}
	if patch.Direction != nil {
		r.params.Direction = *patch.Direction
	}
}

func (r *Rain) Restore() {
	r.patched = false
	if r.base != nil {
		r.params = *r.base
	} else {
		r.params = theme.RainEffect{Density: 0.1, Speed: 8.0}
	}
}

func (r *Rain) Advance(dt float64, width, height int) {
	r.phase += r.params.Speed * dt
}

func (r *Rain) Render(buf *render.RenderBuffer) {
	width, height := buf.Size()
	drops := int(r.params.Density * float64(width))
	if drops <= 0 {
		return
	}
	glyph := '|'
	if r.params.Direction != 0 {
		if r.params.Direction > 0 {
			glyph = '\\'
		} else {
			glyph = '/'
		}
	}
	for i := 0; i < drops; i++ {
		idx := uint64(i)
		col := int(unit(idx) * float64(width))
		// Stagger drops along their fall cycle
		speedJitter := 0.7 + 0.6*unit(idx*13+5)
		cycle := float64(height + rainTrail)
		head := int(r.phase*speedJitter+unit(idx*7+3)*cycle) % int(cycle)

		drift := int(r.params.Direction * r.phase * 0.1)
		x := (col + drift) % width
		if x < 0 {
			x += width
		}

		for t := 0; t < rainTrail; t++ {
			y := head - t
			if y < 0 || y >= height {
				continue
			}
			fade := 1.0 - float64(t)/float64(rainTrail)
			buf.Set(x, y, glyph, terminal.Scale(r.params.Color, fade), terminal.RGBBlack,
				render.BlendAddFg, 1.0, terminal.AttrNone)
		}
	}
}
