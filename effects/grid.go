package effects

import (
	"github.com/lixenwraith/phosphor/override"
	"github.com/lixenwraith/phosphor/render"
	"github.com/lixenwraith/phosphor/terminal"
	"github.com/lixenwraith/phosphor/theme"
)

// Grid is the scrolling synthwave floor grid: horizontal lines drifting
// down with converging verticals below the horizon line
type Grid struct {
	base    *theme.GridEffect
	params  theme.GridEffect
	patched bool
	phase   float64
}

// NewGrid creates the grid effect; a nil baseline leaves it disabled
// until an override patches the channel
func NewGrid(base *theme.GridEffect) *Grid {
	g := &Grid{base: base}
	g.Restore()
	return g
}

func (g *Grid) Channel() override.Channel {
	return override.ChannelGrid
}

func (g *Grid) Enabled() bool {
	return (g.base != nil || g.patched) && g.params.Opacity > 0 && g.params.Spacing > 0
}

func (g *Grid) ApplyPatch(p theme.EffectPatch) {
	patch, ok := p.(*theme.GridPatch)
	if !ok {
		return
	}
	g.Restore()
	g.patched = true
	if patch.Color != nil {
		g.params.Color = *patch.Color
	}
	if patch.Spacing != nil {
		g.params.Spacing = *patch.Spacing
	}
	if patch.Speed != nil {
		g.params.Speed = *patch.Speed
	}
	if patch.Opacity != nil {
		g.params.Opacity = *patch.Opacity
	}
}

func (g *Grid) Restore() {
	g.patched = false
	if g.base != nil {
		g.params = *g.base
	} else {
		g.params = theme.GridEffect{Spacing: 6, Opacity: 1.0}
	}
}

func (g *Grid) Advance(dt float64, width, height int) {
	g.phase += g.params.Speed * dt
	if g.params.Spacing > 0 {
		for g.phase >= float64(g.params.Spacing) {
			g.phase -= float64(g.params.Spacing)
		}
	}
}

func (g *Grid) Render(buf *render.RenderBuffer) {
	width, height := buf.Size()
	spacing := g.params.Spacing
	horizon := height / 3

	// Horizontal lines scroll downward below the horizon
	for y := horizon; y < height; y++ {
		rel := float64(y-horizon) + g.phase
		if int(rel)%spacing != 0 {
			continue
		}
		// Lines nearer the bottom read closer, so brighter
		depth := float64(y-horizon) / float64(height-horizon)
		color := terminal.Scale(g.params.Color, 0.3+0.7*depth)
		for x := 0; x < width; x++ {
			buf.Set(x, y, 0, terminal.RGBBlack, color, render.BlendAlpha, g.params.Opacity*depth, terminal.AttrNone)
		}
	}

	// Verticals fan out from the center toward the bottom edge
	cx := width / 2
	for lane := -width; lane <= width; lane += spacing * 2 {
		for y := horizon; y < height; y++ {
			depth := float64(y-horizon) / float64(height-horizon)
			x := cx + int(float64(lane)*depth)
			if x < 0 || x >= width {
				continue
			}
			color := terminal.Scale(g.params.Color, 0.3+0.7*depth)
			buf.Set(x, y, 0, terminal.RGBBlack, color, render.BlendAlpha, g.params.Opacity*depth*0.8, terminal.AttrNone)
		}
	}
}
