package render

import (
	"time"

	"github.com/lixenwraith/phosphor/engine"
	"github.com/lixenwraith/phosphor/override"
	"github.com/lixenwraith/phosphor/terminal"
	"github.com/lixenwraith/phosphor/theme"
	"github.com/lixenwraith/phosphor/ui"
	"github.com/lixenwraith/phosphor/vt"
)

// warmupFrames forces redraw and reclassification while the surface
// settles after creation
const warmupFrames = 60

// EffectiveOverrides holds the currently applied values of the
// non-retained effect channels; nil means the baseline theme value is in
// effect. Written only by the compositor's apply/restore step.
type EffectiveOverrides struct {
	CursorColor *terminal.RGB
	CursorShape *vt.CursorShape
	Foreground  *terminal.RGB
	Background  *theme.LinearGradient
	TextShadow  *theme.TextShadow
	Flash       *theme.FlashOverride
}

// Tab is one chrome tab
type Tab struct {
	Title string
}

// TabBar is the chrome state drawn by the tab bar pass
type TabBar struct {
	Tabs   []Tab
	Active int
}

// SetTitle updates a tab's title, ignoring out-of-range indices
func (tb *TabBar) SetTitle(idx int, title string) {
	if idx >= 0 && idx < len(tb.Tabs) {
		tb.Tabs[idx].Title = title
	}
}

// RenderState is the explicit per-surface render state threaded by
// reference through every tick. No ambient singletons: everything a frame
// mutates lives here.
type RenderState struct {
	// Damage tracking
	Fingerprint uint64

	// Cached holds the classification reused until the fingerprint
	// changes; HasCached distinguishes the pre-first-frame state
	Cached    Classification
	HasCached bool

	// Overrides and the channel-restore bookkeeping
	Overrides *override.Registry
	Patched   *override.ChannelSet
	Effective EffectiveOverrides

	// UI inputs (read-only to the compositor except fade advancement)
	UI *ui.State

	// Chrome
	Tabs TabBar

	FrameCount uint64

	// Cursor blink, owned by the compositor
	blinkOn     bool
	blinkFlip   time.Time
	lastCursorX int
	lastCursorY int
}

// NewRenderState creates per-surface state on the given clock
func NewRenderState(clock engine.TimeProvider) *RenderState {
	return &RenderState{
		Overrides: override.NewRegistry(clock),
		Patched:   override.NewChannelSet(),
		UI:        ui.NewState(clock),
		Tabs:      TabBar{Tabs: []Tab{{Title: "shell"}}},
		blinkOn:   true,
	}
}

// Invalidate clears the fingerprint so the next frame reclassifies.
// Called on resize, paste, and scroll.
func (st *RenderState) Invalidate() {
	st.Fingerprint = 0
}

// advanceBlink flips the blink phase on the given interval and returns the
// current phase
func (st *RenderState) advanceBlink(now time.Time, interval time.Duration) bool {
	if st.blinkFlip.IsZero() {
		st.blinkFlip = now
	}
	for now.Sub(st.blinkFlip) >= interval {
		st.blinkOn = !st.blinkOn
		st.blinkFlip = st.blinkFlip.Add(interval)
	}
	return st.blinkOn
}

// resetBlink makes the cursor immediately visible, used when it moves
func (st *RenderState) resetBlink(now time.Time) {
	st.blinkOn = true
	st.blinkFlip = now
}
