package render

import (
	"github.com/lixenwraith/phosphor/terminal"
)

// BlendMode defines compositing operations for buffer writes
type BlendMode uint8

const (
	BlendReplace BlendMode = iota // Dst = Src (opaque overwrite)
	BlendAlpha                    // Dst = Src*α + Dst*(1-α)
	BlendAdd                      // Dst = clamp(Dst + Src, 255)
	BlendMax                      // Dst = max(Dst, Src) per channel
	BlendFgOnly                   // Replace rune+fg, keep bg
	BlendAddFg                    // Add fg, keep bg
	BlendBgOnly                   // Blend bg by alpha, keep rune+fg
)

// RenderBuffer is a compositor target backed by a terminal.Cell array.
// Buffers are pooled and reused across frames; Reset cheaply reinitializes
// one for a new frame.
type RenderBuffer struct {
	cells  []terminal.Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocating only if capacity is
// insufficient
func (b *RenderBuffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]terminal.Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear(terminal.RGBBlack)
}

// Size returns buffer dimensions
func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

// Cells exposes the raw cell array for flushing, row-major
func (b *RenderBuffer) Cells() []terminal.Cell {
	return b.cells
}

// Clear fills the buffer with empty cells on the given background using
// exponential copy
func (b *RenderBuffer) Clear(bg terminal.RGB) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = terminal.Cell{Bg: bg}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Get returns the cell at a position; the zero cell when out of bounds
func (b *RenderBuffer) Get(x, y int) terminal.Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return terminal.Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set writes a cell through the given blend mode. Out-of-bounds writes are
// dropped. Alpha applies to BlendAlpha and BlendBgOnly.
func (b *RenderBuffer) Set(x, y int, r rune, fg, bg terminal.RGB, mode BlendMode, alpha float64, attrs terminal.Attr) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]

	switch mode {
	case BlendReplace:
		*dst = terminal.Cell{Rune: r, Fg: fg, Bg: bg, Attrs: attrs}
	case BlendAlpha:
		dst.Rune = r
		dst.Fg = dst.Fg.Blend(fg, alpha)
		dst.Bg = dst.Bg.Blend(bg, alpha)
		dst.Attrs = attrs
	case BlendAdd:
		dst.Rune = r
		dst.Fg = dst.Fg.Add(fg)
		dst.Bg = dst.Bg.Add(bg)
		dst.Attrs |= attrs
	case BlendMax:
		dst.Rune = r
		dst.Fg = dst.Fg.Max(fg)
		dst.Bg = dst.Bg.Max(bg)
		dst.Attrs |= attrs
	case BlendFgOnly:
		dst.Rune = r
		dst.Fg = fg
		dst.Attrs = attrs
	case BlendAddFg:
		dst.Rune = r
		dst.Fg = dst.Fg.Add(fg)
		dst.Attrs |= attrs
	case BlendBgOnly:
		dst.Bg = dst.Bg.Blend(bg, alpha)
	}
}

// SetBg blends only the background of a cell
func (b *RenderBuffer) SetBg(x, y int, bg terminal.RGB, alpha float64) {
	b.Set(x, y, 0, terminal.RGBBlack, bg, BlendBgOnly, alpha, terminal.AttrNone)
}

// MergeAttrs ORs attributes into a cell and recolors its foreground,
// used by the decoration pass for underline/strikethrough
func (b *RenderBuffer) MergeAttrs(x, y int, attrs terminal.Attr, fg terminal.RGB) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Attrs |= attrs
	dst.Fg = fg
}

// CopyFrom copies another buffer's contents; sizes must match
func (b *RenderBuffer) CopyFrom(src *RenderBuffer) {
	if b.width != src.width || b.height != src.height {
		return
	}
	copy(b.cells, src.cells)
}
