package render

import (
	"github.com/lixenwraith/phosphor/override"
	"github.com/lixenwraith/phosphor/theme"
)

// FixedDt is the fixed animation timestep in seconds. Effects advance one
// step per rendered frame regardless of wall-clock jitter, keeping the
// animation deterministic under a mocked clock.
const FixedDt = 1.0 / 60.0

// BackdropEffect is one animated backdrop layer. Implementations live in
// the effects package and are registered on the compositor per channel;
// keeping the interface here avoids an import cycle while the compositor
// drives apply/restore.
type BackdropEffect interface {
	// Channel identifies the override channel that patches this effect
	Channel() override.Channel

	// Enabled reports whether the effect renders this frame
	Enabled() bool

	// ApplyPatch overlays patch values on the baseline parameters. Called
	// every frame while an override holds the channel; implementations
	// rebuild from the baseline, never accumulate.
	ApplyPatch(p theme.EffectPatch)

	// Restore returns all parameters to the baseline
	Restore()

	// Advance steps the animation by dt seconds for the given frame size
	Advance(dt float64, width, height int)

	// Render draws the effect into the frame buffer
	Render(buf *RenderBuffer)
}
