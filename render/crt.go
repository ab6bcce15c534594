package render

import (
	"math"

	"github.com/lixenwraith/phosphor/terminal"
	"github.com/lixenwraith/phosphor/theme"
)

// applyCrt runs the final post-process pass in place: scanline darkening
// on odd rows, a deterministic per-frame brightness flicker derived from
// the frame counter, and an edge vignette. Skipped entirely when the
// theme carries no CRT block.
func (c *Compositor) applyCrt(buf *RenderBuffer, st *RenderState, th *theme.Theme) {
	crt := th.Crt
	if crt == nil {
		return
	}

	flicker := 1.0
	if crt.Flicker > 0 {
		// Hash the frame counter so the jitter replays identically for a
		// given frame sequence
		n := fnvMix(fnvOffset, st.FrameCount)
		jitter := float64(n%1000)/1000.0 - 0.5
		flicker = 1.0 + 2.0*crt.Flicker*jitter*0.1
	}

	width, height := buf.Size()
	cx, cy := float64(width)/2, float64(height)/2
	maxDist := math.Hypot(cx, cy)

	for y := 0; y < height; y++ {
		rowScale := flicker
		if crt.ScanlineDepth > 0 && y%2 == 1 {
			rowScale *= 1.0 - crt.ScanlineDepth
		}
		for x := 0; x < width; x++ {
			scale := rowScale
			if crt.Curvature > 0 && maxDist > 0 {
				dist := math.Hypot(float64(x)-cx, float64(y)-cy) / maxDist
				scale *= 1.0 - crt.Curvature*dist*dist
			}
			if scale >= 1.0 {
				continue
			}
			cell := buf.Get(x, y)
			buf.Set(x, y, cell.Rune,
				terminal.Scale(cell.Fg, scale),
				terminal.Scale(cell.Bg, scale),
				BlendReplace, 1.0, cell.Attrs)
		}
	}
}
