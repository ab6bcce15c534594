// Package render is the frame pipeline: pooled cell buffers, the content
// classifier with fingerprint-gated caching, backdrop effects, and the
// compositor that assembles every frame in a fixed pass order and flushes
// it to the terminal backend.
package render

import (
	"time"

	"pkt.systems/pslog"

	"github.com/lixenwraith/phosphor/engine"
	"github.com/lixenwraith/phosphor/events"
	"github.com/lixenwraith/phosphor/override"
	"github.com/lixenwraith/phosphor/terminal"
	"github.com/lixenwraith/phosphor/theme"
	"github.com/lixenwraith/phosphor/vt"
)

// contentOffsetY is the first content row; row 0 belongs to the tab bar
const contentOffsetY = 1

// defaultBlinkInterval is the cursor blink half-period
const defaultBlinkInterval = 530 * time.Millisecond

// Compositor assembles frames for one terminal surface. It owns the draw
// pass order and is the only writer of the per-surface patched channel
// set; everything it mutates across frames lives in RenderState.
type Compositor struct {
	screen terminal.Screen
	clock  engine.TimeProvider
	log    pslog.Logger
	theme  *theme.Theme
	pool   *BufferPool

	effects map[override.Channel]BackdropEffect

	// bell rings the audible bell; nil means silent
	bell func()

	blinkInterval time.Duration
}

// NewCompositor creates a compositor for a screen on the given clock
func NewCompositor(screen terminal.Screen, clock engine.TimeProvider, th *theme.Theme, log pslog.Logger) *Compositor {
	return &Compositor{
		screen:        screen,
		clock:         clock,
		log:           log,
		theme:         th,
		pool:          NewBufferPool(8),
		effects:       make(map[override.Channel]BackdropEffect),
		blinkInterval: defaultBlinkInterval,
	}
}

// RegisterEffect installs a backdrop effect on its channel, replacing any
// previous effect there
func (c *Compositor) RegisterEffect(e BackdropEffect) {
	c.effects[e.Channel()] = e
}

// SetBellFunc installs the audible bell hook
func (c *Compositor) SetBellFunc(fn func()) {
	c.bell = fn
}

// SetBlinkInterval overrides the cursor blink half-period; zero or
// negative disables blinking (cursor stays solid)
func (c *Compositor) SetBlinkInterval(d time.Duration) {
	c.blinkInterval = d
}

// Theme returns the baseline theme
func (c *Compositor) Theme() *theme.Theme {
	return c.theme
}

// RenderFrame runs one render tick: fold shell events into the override
// registry, expire and apply overrides, reclassify when the content
// fingerprint moved, then draw and flush if anything changed. Reports
// whether a frame was flushed. A nil source still draws background and
// chrome so a surface whose engine died stays presentable.
func (c *Compositor) RenderFrame(st *RenderState, src vt.Source, shellEvents []events.ShellEvent) bool {
	width, height := c.screen.Size()
	if width <= 0 || height <= 0 {
		return false
	}

	c.foldEvents(st, shellEvents)
	expired := st.Overrides.Update()
	c.applyOverrides(st)

	// Damage gate. The warmup window forces full redraws while the
	// terminal backend settles after attach or resize.
	var fp uint64
	if src != nil {
		fp = Fingerprint(src.Cursor(), src.Cells())
	}
	if st.FrameCount < warmupFrames {
		st.Fingerprint = 0
	}
	changed := false
	if !st.HasCached || ShouldReclassify(fp, st.Fingerprint) {
		st.Cached = Classify(src, c.activeTheme(st), st.UI)
		st.HasCached = true
		changed = true
	}
	st.Fingerprint = fp

	blinkChanged := c.advanceCursorBlink(st)

	animating := false
	for _, e := range c.effects {
		if e.Enabled() {
			animating = true
			break
		}
	}
	_, _, flashOn := st.Overrides.Flash()
	overlayOn := st.UI.Search.Active || st.UI.ContextMenu.Visible ||
		st.UI.Rename.Active || st.UI.AnyIndicatorVisible()

	needsRedraw := st.FrameCount < warmupFrames ||
		changed || expired || blinkChanged || flashOn || overlayOn ||
		animating || st.Patched.Len() > 0 || c.theme.Crt != nil

	if !needsRedraw {
		st.FrameCount++
		return false
	}

	// All checkouts happen before any pass touches a buffer: a frame is
	// drawn whole or not at all, never partially
	main, err := c.pool.Checkout(width, height)
	if err != nil {
		c.log.Warn("frame skipped", "reason", "pool exhausted", "outstanding", c.pool.Outstanding())
		st.FrameCount++
		return false
	}
	glow, err := c.pool.Checkout(width, height)
	if err != nil {
		c.pool.Return(main)
		c.log.Warn("frame skipped", "reason", "pool exhausted", "outstanding", c.pool.Outstanding())
		st.FrameCount++
		return false
	}

	th := c.activeTheme(st)

	c.fillBackground(main, th)
	for _, ch := range override.AllChannels {
		if e, ok := c.effects[ch]; ok && e.Enabled() {
			e.Advance(FixedDt, width, height)
			e.Render(main)
		}
	}
	c.drawAsciiArt(main, th, width, height)

	c.drawDecorations(main, st, DecorationBackground)
	c.drawGlyphs(main, st.Cached.Flat)
	c.drawGlowTier(main, glow, st, th)
	c.drawSelection(main, st, th)
	c.drawDecorations(main, st, DecorationUnderline)
	c.drawDecorations(main, st, DecorationStrikethrough)
	c.drawCursor(main, st, th)

	c.drawTabBar(main, st, width)
	c.drawSearchBar(main, st, th, width, height)
	c.drawRenameDialog(main, st, th, width, height)

	// Bell flash washes the frame before the context menu and indicators
	// draw, so an open menu stays readable through the flash
	c.applyFlash(main, st)
	c.drawContextMenu(main, st, th)
	c.drawIndicators(main, st, th, width, height)
	c.applyCrt(main, st, th)

	c.screen.Flush(main.Cells(), width, height)

	c.pool.Return(glow)
	c.pool.Return(main)
	st.FrameCount++
	return true
}

// foldEvents translates shell events into registry operations, the bell
// hook, and chrome updates. A success event extinguishes a still-fading
// fail override; focus events clear each other the same way.
func (c *Compositor) foldEvents(st *RenderState, evs []events.ShellEvent) {
	for _, ev := range evs {
		switch ev.Kind {
		case events.ShellBell:
			if c.bell != nil {
				c.bell()
			}
			if c.theme.OnBell != nil {
				st.Overrides.Add(override.EventBell, c.theme.OnBell)
			}
		case events.ShellCommandSuccess:
			st.Overrides.ClearEvent(override.EventCommandFail)
			if c.theme.OnCommandSuccess != nil {
				st.Overrides.Add(override.EventCommandSuccess, c.theme.OnCommandSuccess)
			}
		case events.ShellCommandFail:
			if c.theme.OnCommandFail != nil {
				st.Overrides.Add(override.EventCommandFail, c.theme.OnCommandFail)
			}
			c.log.Debug("command failed", "code", ev.Code)
		case events.ShellFocusGained:
			st.Overrides.ClearEvent(override.EventFocusLost)
			if c.theme.OnFocusGained != nil {
				st.Overrides.Add(override.EventFocusGained, c.theme.OnFocusGained)
			}
		case events.ShellFocusLost:
			st.Overrides.ClearEvent(override.EventFocusGained)
			if c.theme.OnFocusLost != nil {
				st.Overrides.Add(override.EventFocusLost, c.theme.OnFocusLost)
			}
		case events.ShellTitleChanged:
			st.Tabs.SetTitle(st.Tabs.Active, ev.Title)
		}
	}
}

// applyOverrides is the per-channel apply/restore step and the only
// writer of st.Patched. Effect patches are reapplied from the baseline
// every frame while their channel is held; value channels keep an
// effective pointer that draw passes consult. Foreground and background
// changes invalidate the cached classification since resolved colors are
// baked into it.
func (c *Compositor) applyOverrides(st *RenderState) {
	for _, ch := range override.AllChannels {
		switch ch {
		case override.ChannelGrid, override.ChannelStarfield, override.ChannelRain,
			override.ChannelParticles, override.ChannelMatrix, override.ChannelShape,
			override.ChannelSprite:
			eff := c.effects[ch]
			if patch, ok := st.Overrides.EffectPatch(ch); ok && eff != nil {
				eff.ApplyPatch(patch)
				st.Patched.Add(ch)
			} else if st.Patched.Contains(ch) {
				if eff != nil {
					eff.Restore()
				}
				st.Patched.Remove(ch)
			}

		case override.ChannelCursorColor:
			if v, ok := st.Overrides.CursorColor(); ok {
				cv := v
				st.Effective.CursorColor = &cv
				st.Patched.Add(ch)
			} else if st.Patched.Contains(ch) {
				st.Effective.CursorColor = nil
				st.Patched.Remove(ch)
			}

		case override.ChannelCursorShape:
			if v, ok := st.Overrides.CursorShape(); ok {
				sv := v
				st.Effective.CursorShape = &sv
				st.Patched.Add(ch)
			} else if st.Patched.Contains(ch) {
				st.Effective.CursorShape = nil
				st.Patched.Remove(ch)
			}

		case override.ChannelForeground:
			if v, ok := st.Overrides.Foreground(); ok {
				if st.Effective.Foreground == nil || *st.Effective.Foreground != v {
					fv := v
					st.Effective.Foreground = &fv
					st.Invalidate()
				}
				st.Patched.Add(ch)
			} else if st.Patched.Contains(ch) {
				st.Effective.Foreground = nil
				st.Patched.Remove(ch)
				st.Invalidate()
			}

		case override.ChannelBackground:
			if v, ok := st.Overrides.Background(); ok {
				if st.Effective.Background != v {
					st.Effective.Background = v
					st.Invalidate()
				}
				st.Patched.Add(ch)
			} else if st.Patched.Contains(ch) {
				st.Effective.Background = nil
				st.Patched.Remove(ch)
				st.Invalidate()
			}

		case override.ChannelTextShadow:
			if v, ok := st.Overrides.TextShadow(); ok {
				st.Effective.TextShadow = v
				st.Patched.Add(ch)
			} else if st.Patched.Contains(ch) {
				st.Effective.TextShadow = nil
				st.Patched.Remove(ch)
			}

		case override.ChannelFlash:
			// Resolved at draw time; tracked only so an expiring flash
			// still forces the restore-frame redraw
			if _, _, ok := st.Overrides.Flash(); ok {
				st.Patched.Add(ch)
			} else if st.Patched.Contains(ch) {
				st.Patched.Remove(ch)
			}
		}
	}
}

// activeTheme returns the baseline theme with any live foreground or
// background override folded in. Other channels are consulted per pass.
func (c *Compositor) activeTheme(st *RenderState) *theme.Theme {
	if st.Effective.Foreground == nil && st.Effective.Background == nil {
		return c.theme
	}
	th := *c.theme
	if st.Effective.Foreground != nil {
		th.Foreground = *st.Effective.Foreground
	}
	if st.Effective.Background != nil {
		th.Background = *st.Effective.Background
	}
	return &th
}

// advanceCursorBlink steps the blink phase and reports whether it moved.
// A cursor position change resets the phase to visible.
func (c *Compositor) advanceCursorBlink(st *RenderState) bool {
	if c.blinkInterval <= 0 {
		return false
	}
	cur := st.Cached.Cursor
	if !cur.Visible {
		return false
	}
	now := c.clock.Now()
	before := st.blinkOn
	if cur.X != st.lastCursorX || cur.Y != st.lastCursorY {
		st.lastCursorX, st.lastCursorY = cur.X, cur.Y
		st.resetBlink(now)
	} else {
		st.advanceBlink(now, c.blinkInterval)
	}
	return st.blinkOn != before
}

// fillBackground clears the frame to the vertical background gradient
func (c *Compositor) fillBackground(buf *RenderBuffer, th *theme.Theme) {
	width, height := buf.Size()
	for y := 0; y < height; y++ {
		t := 0.0
		if height > 1 {
			t = float64(y) / float64(height-1)
		}
		bg := th.Background.At(t)
		for x := 0; x < width; x++ {
			buf.Set(x, y, ' ', th.Foreground, bg, BlendReplace, 1.0, terminal.AttrNone)
		}
	}
}

// drawAsciiArt renders the static character-art layer centered in the
// content area, behind the terminal text
func (c *Compositor) drawAsciiArt(buf *RenderBuffer, th *theme.Theme, width, height int) {
	art := th.BackgroundImage
	if art == nil || len(art.Rows) == 0 {
		return
	}
	artW := 0
	for _, row := range art.Rows {
		if w := len([]rune(row)); w > artW {
			artW = w
		}
	}
	startX := (width - artW) / 2
	startY := contentOffsetY + (height-contentOffsetY-len(art.Rows))/2
	for dy, row := range art.Rows {
		x := startX
		for _, r := range row {
			if r != ' ' {
				// Tint against the underlying background so the art sits
				// behind the text rather than washing it out
				fg := buf.Get(x, startY+dy).Bg.Blend(art.Color, art.Opacity)
				buf.Set(x, startY+dy, r, fg, terminal.RGBBlack, BlendFgOnly, 1.0, terminal.AttrNone)
			}
			x++
		}
	}
}

// drawDecorations draws one decoration kind from the cached
// classification; backgrounds fill the cell, line kinds merge attributes
// onto whatever glyph is already there
func (c *Compositor) drawDecorations(buf *RenderBuffer, st *RenderState, kind DecorationKind) {
	for _, d := range st.Cached.Decorations {
		if d.Kind != kind {
			continue
		}
		for dy := 0; dy < d.Height; dy++ {
			for dx := 0; dx < d.Width; dx++ {
				x, y := d.X+dx, d.Y+dy+contentOffsetY
				switch kind {
				case DecorationBackground:
					buf.SetBg(x, y, d.Color, 1.0)
				case DecorationUnderline:
					buf.MergeAttrs(x, y, terminal.AttrUnderline, d.Color)
				case DecorationStrikethrough:
					buf.MergeAttrs(x, y, terminal.AttrStrike, d.Color)
				}
			}
		}
	}
}

// drawGlyphs writes a glyph tier over the existing backgrounds
func (c *Compositor) drawGlyphs(buf *RenderBuffer, glyphs []Glyph) {
	for _, g := range glyphs {
		buf.Set(g.X, g.Y+contentOffsetY, g.Rune, g.Fg, terminal.RGBBlack, BlendFgOnly, 1.0, g.Attrs)
	}
}

// drawGlowTier renders prompt and input glyphs with a halo: the glow
// buffer accumulates shadow light around each glyph, that light is added
// into the frame backgrounds, then the glyphs draw on top. Without a
// shadow configured the tier degrades to a plain glyph pass.
func (c *Compositor) drawGlowTier(main, glow *RenderBuffer, st *RenderState, th *theme.Theme) {
	glyphs := st.Cached.Glow
	if len(glyphs) == 0 {
		return
	}
	shadow := th.TextShadow
	if st.Effective.TextShadow != nil {
		shadow = st.Effective.TextShadow
	}
	if shadow == nil || shadow.Intensity <= 0 || shadow.Radius <= 0 {
		c.drawGlyphs(main, glyphs)
		return
	}

	// glow arrives cleared from the pool and accumulates halo light only
	radius := int(shadow.Radius)
	for _, g := range glyphs {
		cx, cy := g.X, g.Y+contentOffsetY
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				dist := abs(dx) + abs(dy)
				if dist == 0 || dist > radius {
					continue
				}
				falloff := shadow.Intensity * (1.0 - float64(dist)/float64(radius+1))
				glow.Set(cx+dx, cy+dy, 0, terminal.RGBBlack,
					terminal.Scale(shadow.Color, falloff), BlendAdd, 1.0, terminal.AttrNone)
			}
		}
	}

	width, height := main.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			halo := glow.Get(x, y).Bg
			if halo != terminal.RGBBlack {
				main.Set(x, y, 0, terminal.RGBBlack, halo, BlendAdd, 1.0, terminal.AttrNone)
			}
		}
	}

	c.drawGlyphs(main, glyphs)
}

// drawSelection overlays the selection span with the theme's selection
// background
func (c *Compositor) drawSelection(buf *RenderBuffer, st *RenderState, th *theme.Theme) {
	span := st.UI.Selection
	if span == nil {
		return
	}
	width, _ := buf.Size()
	for line := span.StartLine; line <= span.EndLine; line++ {
		for col := 0; col < width; col++ {
			if span.Contains(line, col) {
				buf.SetBg(col, line+contentOffsetY, th.Selection.Background, th.Selection.Alpha)
			}
		}
	}
}

// drawCursor renders the cursor with shape precedence: an active override
// wins, then an explicit engine-requested shape, then the configured
// theme shape. Skipped while the blink phase is dark or the engine hides
// the cursor.
func (c *Compositor) drawCursor(buf *RenderBuffer, st *RenderState, th *theme.Theme) {
	cur := st.Cached.Cursor
	if !cur.Visible || !st.blinkOn {
		return
	}

	shape := cur.Shape
	// A block from the engine is the protocol default, not an explicit
	// request; the configured shape applies then
	if shape == vt.CursorBlock && th.CursorShape != vt.CursorBlock {
		shape = th.CursorShape
	}
	if st.Effective.CursorShape != nil {
		shape = *st.Effective.CursorShape
	}
	if shape == vt.CursorHidden {
		return
	}

	color := th.CursorColor
	if st.Effective.CursorColor != nil {
		color = *st.Effective.CursorColor
	}

	x, y := cur.X, cur.Y+contentOffsetY
	switch shape {
	case vt.CursorBlock:
		cell := buf.Get(x, y)
		buf.Set(x, y, cell.Rune, th.DefaultBackground(), color, BlendReplace, 1.0, cell.Attrs)
	case vt.CursorBeam:
		buf.Set(x, y, '▎', color, terminal.RGBBlack, BlendFgOnly, 1.0, terminal.AttrNone)
	case vt.CursorUnderline:
		buf.Set(x, y, '▁', color, terminal.RGBBlack, BlendFgOnly, 1.0, terminal.AttrNone)
	case vt.CursorHollowBlock:
		cell := buf.Get(x, y)
		r := cell.Rune
		if r == 0 || r == ' ' {
			r = '▯'
		}
		buf.Set(x, y, r, color, terminal.RGBBlack, BlendFgOnly, 1.0, cell.Attrs)
	}

	if th.CursorGlow != nil && th.CursorGlow.Intensity > 0 {
		radius := int(th.CursorGlow.Radius)
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				dist := abs(dx) + abs(dy)
				if dist == 0 || dist > radius {
					continue
				}
				falloff := th.CursorGlow.Intensity * (1.0 - float64(dist)/float64(radius+1))
				buf.Set(x+dx, y+dy, 0, terminal.RGBBlack,
					terminal.Scale(th.CursorGlow.Color, falloff), BlendAdd, 1.0, terminal.AttrNone)
			}
		}
	}
}

// applyFlash washes the frame with the registry-resolved flash color,
// backgrounds at full intensity and glyph colors at half so text stays
// readable through a bell flash
func (c *Compositor) applyFlash(buf *RenderBuffer, st *RenderState) {
	color, intensity, ok := st.Overrides.Flash()
	if !ok {
		return
	}
	width, height := buf.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := buf.Get(x, y)
			buf.Set(x, y, cell.Rune,
				cell.Fg.Blend(color, intensity*0.5),
				cell.Bg.Blend(color, intensity),
				BlendReplace, 1.0, cell.Attrs)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
