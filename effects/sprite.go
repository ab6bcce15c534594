package effects

import (
	"strings"

	"github.com/lixenwraith/phosphor/override"
	"github.com/lixenwraith/phosphor/render"
	"github.com/lixenwraith/phosphor/terminal"
	"github.com/lixenwraith/phosphor/theme"
)

// Sprite is an animated character-art figure that wanders the backdrop,
// bouncing off the frame edges
type Sprite struct {
	base    *theme.SpriteEffect
	params  theme.SpriteEffect
	patched bool

	x, y   float64
	vx, vy float64
	clock  float64
	placed bool
}

// NewSprite creates the sprite effect; a nil baseline leaves it disabled
// until an override patches the channel
func NewSprite(base *theme.SpriteEffect) *Sprite {
	s := &Sprite{base: base, vx: 3.0, vy: 1.5}
	s.Restore()
	return s
}

func (s *Sprite) Channel() override.Channel {
	return override.ChannelSprite
}

func (s *Sprite) Enabled() bool {
	return (s.base != nil || s.patched) && len(s.params.Frames) > 0 && s.params.Opacity > 0
}

func (s *Sprite) ApplyPatch(p theme.EffectPatch) {
	patch, ok := p.(*theme.SpritePatch)
	if !ok {
		return
	}
	s.Restore()
	s.patched = true
	if patch.Frames != nil {
		s.params.Frames = patch.Frames
	}
	if patch.Color != nil {
		s.params.Color = *patch.Color
	}
	if patch.Fps != nil {
		s.params.Fps = *patch.Fps
	}
	if patch.Opacity != nil {
		s.params.Opacity = *patch.Opacity
	}
}

func (s *Sprite) Restore() {
	s.patched = false
	if s.base != nil {
		s.params = *s.base
	} else {
		s.params = theme.SpriteEffect{Fps: 4, Opacity: 1.0}
	}
}

func (s *Sprite) Advance(dt float64, width, height int) {
	s.clock += dt
	if !s.placed {
		s.x = float64(width) / 4
		s.y = float64(height) / 4
		s.placed = true
	}

	fw, fh := s.frameSize()
	s.x += s.vx * dt
	s.y += s.vy * dt
	if s.x < 0 {
		s.x = 0
		s.vx = -s.vx
	}
	if s.y < 0 {
		s.y = 0
		s.vy = -s.vy
	}
	if maxX := float64(width - fw); s.x > maxX && maxX > 0 {
		s.x = maxX
		s.vx = -s.vx
	}
	if maxY := float64(height - fh); s.y > maxY && maxY > 0 {
		s.y = maxY
		s.vy = -s.vy
	}
}

func (s *Sprite) Render(buf *render.RenderBuffer) {
	frames := s.params.Frames
	if len(frames) == 0 {
		return
	}
	fps := s.params.Fps
	if fps <= 0 {
		fps = 4
	}
	frame := frames[int(s.clock*fps)%len(frames)]

	ox, oy := int(s.x), int(s.y)
	for dy, row := range strings.Split(frame, "\n") {
		x := ox
		for _, r := range row {
			if r != ' ' {
				fg := buf.Get(x, oy+dy).Bg.Blend(s.params.Color, s.params.Opacity)
				buf.Set(x, oy+dy, r, fg, terminal.RGBBlack,
					render.BlendFgOnly, 1.0, terminal.AttrNone)
			}
			x++
		}
	}
}

// frameSize measures the first frame in cells
func (s *Sprite) frameSize() (int, int) {
	if len(s.params.Frames) == 0 {
		return 0, 0
	}
	rows := strings.Split(s.params.Frames[0], "\n")
	w := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > w {
			w = n
		}
	}
	return w, len(rows)
}
