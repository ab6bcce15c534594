package render

import (
	"testing"

	"github.com/lixenwraith/phosphor/terminal"
)

func TestBufferClearFillsBackground(t *testing.T) {
	buf := NewRenderBuffer(10, 4)
	bg := terminal.RGB{R: 10, G: 20, B: 30}
	buf.Clear(bg)

	for y := 0; y < 4; y++ {
		for x := 0; x < 10; x++ {
			if got := buf.Get(x, y).Bg; got != bg {
				t.Fatalf("cell (%d,%d) bg = %v, want %v", x, y, got, bg)
			}
		}
	}
}

func TestBufferBlendModes(t *testing.T) {
	red := terminal.RGB{R: 200}
	green := terminal.RGB{G: 100}

	tests := []struct {
		name   string
		mode   BlendMode
		alpha  float64
		wantFg terminal.RGB
		wantBg terminal.RGB
	}{
		{"replace", BlendReplace, 1.0, green, green},
		{"alpha half", BlendAlpha, 0.5, terminal.RGB{R: 100, G: 50}, terminal.RGB{R: 100, G: 50}},
		{"add", BlendAdd, 1.0, terminal.RGB{R: 200, G: 100}, terminal.RGB{R: 200, G: 100}},
		{"max", BlendMax, 1.0, terminal.RGB{R: 200, G: 100}, terminal.RGB{R: 200, G: 100}},
		{"fg only", BlendFgOnly, 1.0, green, red},
		{"add fg", BlendAddFg, 1.0, terminal.RGB{R: 200, G: 100}, red},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewRenderBuffer(3, 1)
			buf.Set(1, 0, 'a', red, red, BlendReplace, 1.0, terminal.AttrNone)
			buf.Set(1, 0, 'b', green, green, tt.mode, tt.alpha, terminal.AttrNone)

			cell := buf.Get(1, 0)
			if cell.Fg != tt.wantFg {
				t.Errorf("fg = %v, want %v", cell.Fg, tt.wantFg)
			}
			if cell.Bg != tt.wantBg {
				t.Errorf("bg = %v, want %v", cell.Bg, tt.wantBg)
			}
		})
	}
}

func TestBufferBgOnlyKeepsGlyph(t *testing.T) {
	buf := NewRenderBuffer(3, 1)
	buf.Set(0, 0, 'x', terminal.RGBWhite, terminal.RGBBlack, BlendReplace, 1.0, terminal.AttrBold)
	buf.SetBg(0, 0, terminal.RGB{B: 200}, 1.0)

	cell := buf.Get(0, 0)
	if cell.Rune != 'x' || cell.Fg != terminal.RGBWhite || cell.Attrs != terminal.AttrBold {
		t.Errorf("bg-only write disturbed glyph: %+v", cell)
	}
	if cell.Bg != (terminal.RGB{B: 200}) {
		t.Errorf("bg = %v, want blue", cell.Bg)
	}
}

func TestBufferMergeAttrs(t *testing.T) {
	buf := NewRenderBuffer(3, 1)
	buf.Set(0, 0, 'x', terminal.RGBWhite, terminal.RGBBlack, BlendReplace, 1.0, terminal.AttrBold)
	buf.MergeAttrs(0, 0, terminal.AttrUnderline, terminal.RGB{R: 255})

	cell := buf.Get(0, 0)
	if cell.Attrs != terminal.AttrBold|terminal.AttrUnderline {
		t.Errorf("attrs = %v, want bold|underline", cell.Attrs)
	}
	if cell.Fg != (terminal.RGB{R: 255}) {
		t.Errorf("fg = %v, want recolored red", cell.Fg)
	}
}

func TestBufferOutOfBoundsDropped(t *testing.T) {
	buf := NewRenderBuffer(2, 2)
	buf.Set(-1, 0, 'x', terminal.RGBWhite, terminal.RGBWhite, BlendReplace, 1.0, terminal.AttrNone)
	buf.Set(2, 0, 'x', terminal.RGBWhite, terminal.RGBWhite, BlendReplace, 1.0, terminal.AttrNone)
	buf.Set(0, 5, 'x', terminal.RGBWhite, terminal.RGBWhite, BlendReplace, 1.0, terminal.AttrNone)

	for _, c := range buf.Cells() {
		if c.Rune == 'x' {
			t.Fatal("out-of-bounds write landed in the buffer")
		}
	}
	if got := buf.Get(9, 9); got != (terminal.Cell{}) {
		t.Errorf("out-of-bounds read = %+v, want zero cell", got)
	}
}

func TestBufferResizeReusesCapacity(t *testing.T) {
	buf := NewRenderBuffer(10, 10)
	buf.Resize(5, 5)
	if w, h := buf.Size(); w != 5 || h != 5 {
		t.Errorf("size = %dx%d, want 5x5", w, h)
	}
	if len(buf.Cells()) != 25 {
		t.Errorf("cell count = %d, want 25", len(buf.Cells()))
	}
}

func TestPoolCheckoutLimit(t *testing.T) {
	pool := NewBufferPool(2)

	a, err := pool.Checkout(10, 5)
	if err != nil {
		t.Fatalf("first checkout: %v", err)
	}
	if _, err := pool.Checkout(10, 5); err != nil {
		t.Fatalf("second checkout: %v", err)
	}
	if _, err := pool.Checkout(10, 5); err != ErrUnavailable {
		t.Errorf("third checkout err = %v, want ErrUnavailable", err)
	}

	pool.Return(a)
	if pool.Outstanding() != 1 {
		t.Errorf("outstanding = %d, want 1", pool.Outstanding())
	}
	if _, err := pool.Checkout(10, 5); err != nil {
		t.Errorf("checkout after return: %v", err)
	}
}

func TestPoolRecyclesBySize(t *testing.T) {
	pool := NewBufferPool(4)
	a, _ := pool.Checkout(10, 5)
	pool.Return(a)

	b, _ := pool.Checkout(10, 5)
	if b != a {
		t.Error("same-size checkout should reuse the returned buffer")
	}

	c, _ := pool.Checkout(20, 5)
	if c == a {
		t.Error("different size must not reuse the buffer in place")
	}
	if w, h := c.Size(); w != 20 || h != 5 {
		t.Errorf("new buffer size = %dx%d, want 20x5", w, h)
	}
}

func TestPoolCheckoutClearsRecycledBuffer(t *testing.T) {
	pool := NewBufferPool(4)
	a, _ := pool.Checkout(10, 5)
	a.Set(3, 2, 'x', terminal.RGBWhite, terminal.RGB{R: 40}, BlendReplace, 1.0, terminal.AttrBold)
	pool.Return(a)

	b, _ := pool.Checkout(10, 5)
	if b != a {
		t.Fatal("expected the returned buffer back")
	}
	got := b.Get(3, 2)
	if got.Rune != 0 || got.Attrs != terminal.AttrNone || got.Bg != terminal.RGBBlack {
		t.Errorf("recycled cell = %+v, want cleared", got)
	}
}
