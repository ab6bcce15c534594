package effects

import (
	"math"

	"github.com/lixenwraith/phosphor/override"
	"github.com/lixenwraith/phosphor/render"
	"github.com/lixenwraith/phosphor/terminal"
	"github.com/lixenwraith/phosphor/theme"
)

// Particles draws slow floating motes on sinusoidal paths
type Particles struct {
	base    *theme.ParticleEffect
	params  theme.ParticleEffect
	patched bool
	phase   float64
}

// NewParticles creates the particle effect; a nil baseline leaves it
// disabled until an override patches the channel
func NewParticles(base *theme.ParticleEffect) *Particles {
	p := &Particles{base: base}
	p.Restore()
	return p
}

func (p *Particles) Channel() override.Channel {
	return override.ChannelParticles
}

func (p *Particles) Enabled() bool {
	return (p.base != nil || p.patched) && p.params.Count > 0
}

func (p *Particles) ApplyPatch(ep theme.EffectPatch) {
	patch, ok := ep.(*theme.ParticlePatch)
	if !ok {
		return
	}
	p.Restore()
	p.patched = true
	if patch.Color != nil {
		p.params.Color = *patch.Color
	}
	if patch.Count != nil {
		p.params.Count = *patch.Count
	}
	if patch.Speed != nil {
		p.params.Speed = *patch.Speed
	}
}

func (p *Particles) Restore() {
	p.patched = false
	if p.base != nil {
		p.params = *p.base
	} else {
		p.params = theme.ParticleEffect{Count: 24, Speed: 1.0}
	}
}

func (p *Particles) Advance(dt float64, width, height int) {
	p.phase += p.params.Speed * dt
}

func (p *Particles) Render(buf *render.RenderBuffer) {
	width, height := buf.Size()
	for i := 0; i < p.params.Count; i++ {
		idx := uint64(i)
		baseX := unit(idx) * float64(width)
		baseY := unit(idx*19+11) * float64(height)
		wobble := 0.5 + unit(idx*5+1)

		x := int(baseX+3.0*math.Sin(p.phase*wobble+float64(i))) % width
		y := int(baseY+p.phase*wobble*0.5) % height
		if x < 0 {
			x += width
		}
		if y < 0 {
			y += height
		}

		brightness := 0.3 + 0.5*unit(idx*23+9)
		buf.Set(x, y, '•', terminal.Scale(p.params.Color, brightness), terminal.RGBBlack,
			render.BlendAddFg, 1.0, terminal.AttrNone)
	}
}
