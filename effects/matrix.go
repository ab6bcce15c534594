package effects

import (
	"github.com/lixenwraith/phosphor/override"
	"github.com/lixenwraith/phosphor/render"
	"github.com/lixenwraith/phosphor/terminal"
	"github.com/lixenwraith/phosphor/theme"
)

const (
	matrixTrail   = 8
	matrixCharset = "ｱｲｳｴｵｶｷｸｹｺ0123456789"
)

// Matrix draws falling glyph columns with a bright head and fading tail.
// Glyphs along a column mutate as the head passes so trails shimmer.
type Matrix struct {
	base    *theme.MatrixEffect
	params  theme.MatrixEffect
	patched bool
	phase   float64
}

// NewMatrix creates the matrix effect; a nil baseline leaves it disabled
// until an override patches the channel
func NewMatrix(base *theme.MatrixEffect) *Matrix {
	m := &Matrix{base: base}
	m.Restore()
	return m
}

func (m *Matrix) Channel() override.Channel {
	return override.ChannelMatrix
}

func (m *Matrix) Enabled() bool {
	return (m.base != nil || m.patched) && m.params.Density > 0
}

func (m *Matrix) ApplyPatch(p theme.EffectPatch) {
	patch, ok := p.(*theme.MatrixPatch)
	if !ok {
		return
	}
	m.Restore()
	m.patched = true
	if patch.Color != nil {
		m.params.Color = *patch.Color
	}
	if patch.Density != nil {
		m.params.Density = *patch.Density
	}
	if patch.Speed != nil {
		m.params.Speed = *patch.Speed
	}
	if patch.Charset != nil {
		m.params.Charset = *patch.Charset
	}
}

func (m *Matrix) Restore() {
	m.patched = false
	if m.base != nil {
		m.params = *m.base
	} else {
		m.params = theme.MatrixEffect{Density: 0.3, Speed: 10.0}
	}
	if m.params.Charset == "" {
		m.params.Charset = matrixCharset
	}
}

func (m *Matrix) Advance(dt float64, width, height int) {
	m.phase += m.params.Speed * dt
}

func (m *Matrix) Render(buf *render.RenderBuffer) {
	width, height := buf.Size()
	charset := []rune(m.params.Charset)
	if len(charset) == 0 {
		return
	}
	columns := int(m.params.Density * float64(width))
	if columns <= 0 {
		return
	}
	cycle := height + matrixTrail

	for i := 0; i < columns; i++ {
		idx := uint64(i)
		x := int(unit(idx) * float64(width))
		speedJitter := 0.5 + unit(idx*13+5)
		head := int(m.phase*speedJitter+unit(idx*7+3)*float64(cycle)) % cycle

		for t := 0; t < matrixTrail; t++ {
			y := head - t
			if y < 0 || y >= height {
				continue
			}
			// Glyph identity shifts each time the head laps the column
			lap := uint64(int(m.phase*speedJitter) / cycle)
			r := charset[scramble(idx*131+uint64(y)*17+lap)%uint64(len(charset))]

			color := m.params.Color
			if t == 0 {
				color = color.Max(terminal.RGB{R: 180, G: 255, B: 180})
			} else {
				color = terminal.Scale(color, 1.0-float64(t)/float64(matrixTrail))
			}
			buf.Set(x, y, r, color, terminal.RGBBlack, render.BlendFgOnly, 1.0, terminal.AttrNone)
		}
	}
}
