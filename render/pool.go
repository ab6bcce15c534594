package render

import (
	"errors"

	"github.com/lixenwraith/phosphor/terminal"
)

// ErrUnavailable is returned when the pool cannot satisfy a checkout.
// Callers skip the frame and retry next tick; it is never fatal.
var ErrUnavailable = errors.New("render: buffer pool exhausted")

type sizeKey struct {
	width, height int
}

// BufferPool hands out fixed-shape frame buffers keyed by size so resizes
// and per-frame targets reuse memory instead of allocating. Checkout and
// Return are explicit; exceeding maxOutstanding yields ErrUnavailable.
type BufferPool struct {
	free           map[sizeKey][]*RenderBuffer
	outstanding    int
	maxOutstanding int
}

// NewBufferPool creates a pool allowing at most maxOutstanding checked-out
// buffers at a time
func NewBufferPool(maxOutstanding int) *BufferPool {
	return &BufferPool{
		free:           make(map[sizeKey][]*RenderBuffer),
		maxOutstanding: maxOutstanding,
	}
}

// Checkout returns a cleared buffer of the given shape, reusing a pooled
// one when available. Recycled buffers are wiped so a frame never starts
// from the previous frame's cells
func (p *BufferPool) Checkout(width, height int) (*RenderBuffer, error) {
	if p.outstanding >= p.maxOutstanding {
		return nil, ErrUnavailable
	}
	key := sizeKey{width, height}
	list := p.free[key]
	if n := len(list); n > 0 {
		buf := list[n-1]
		p.free[key] = list[:n-1]
		buf.Clear(terminal.RGBBlack)
		p.outstanding++
		return buf, nil
	}
	p.outstanding++
	return NewRenderBuffer(width, height), nil
}

// Return gives a buffer back to the pool for reuse
func (p *BufferPool) Return(buf *RenderBuffer) {
	if buf == nil {
		return
	}
	key := sizeKey{buf.width, buf.height}
	p.free[key] = append(p.free[key], buf)
	if p.outstanding > 0 {
		p.outstanding--
	}
}

// Purge drops all pooled buffers whose shape differs from the given size.
// Called on resize so stale-generation buffers do not pin memory.
func (p *BufferPool) Purge(width, height int) {
	keep := sizeKey{width, height}
	for key := range p.free {
		if key != keep {
			delete(p.free, key)
		}
	}
}

// Outstanding returns the number of currently checked-out buffers
func (p *BufferPool) Outstanding() int {
	return p.outstanding
}
