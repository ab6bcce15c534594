// Package override holds the event-triggered visual override registry:
// zero or more concurrently active theme patches, each tied to a terminal
// event type, expiring on their own clocks.
package override

import (
	"time"

	"github.com/lixenwraith/phosphor/engine"
	"github.com/lixenwraith/phosphor/theme"
	"github.com/lixenwraith/phosphor/vt"
)

// EventType identifies the terminal event that triggered an override
type EventType uint8

const (
	EventBell EventType = iota
	EventCommandSuccess
	EventCommandFail
	EventFocusGained
	EventFocusLost
)

func (e EventType) String() string {
	switch e {
	case EventBell:
		return "bell"
	case EventCommandSuccess:
		return "command-success"
	case EventCommandFail:
		return "command-fail"
	case EventFocusGained:
		return "focus-gained"
	default:
		return "focus-lost"
	}
}

// ActiveOverride is one live theme override. Owned exclusively by the
// Registry; nothing else retains it across frames.
type ActiveOverride struct {
	Event       EventType
	Patch       *theme.EventOverride
	TriggeredAt time.Time
}

// Registry holds the active overrides for one surface. All operations are
// total over the current timestamp; an empty registry resolves every
// channel to nothing.
type Registry struct {
	clock  engine.TimeProvider
	active []ActiveOverride
}

// NewRegistry creates an empty registry on the given clock
func NewRegistry(clock engine.TimeProvider) *Registry {
	return &Registry{clock: clock}
}

// Add installs an override for an event, replacing any existing override
// of the same event type. A fresh trigger always resets its fade clock.
func (r *Registry) Add(event EventType, patch *theme.EventOverride) {
	r.ClearEvent(event)
	r.active = append(r.active, ActiveOverride{
		Event:       event,
		Patch:       patch,
		TriggeredAt: r.clock.Now(),
	})
}

// ClearEvent drops any override of the given event type before its timer
// runs out. Used when a success event extinguishes a still-fading fail
// override.
func (r *Registry) ClearEvent(event EventType) bool {
	for i := range r.active {
		if r.active[i].Event == event {
			r.active = append(r.active[:i], r.active[i+1:]...)
			return true
		}
	}
	return false
}

// Update removes expired overrides and reports whether anything was
// removed. Overrides with Duration 0 persist until cleared.
func (r *Registry) Update() bool {
	now := r.clock.Now()
	removed := false
	kept := r.active[:0]
	for _, o := range r.active {
		if o.Patch.Duration > 0 && now.Sub(o.TriggeredAt) >= o.Patch.Duration {
			removed = true
			continue
		}
		kept = append(kept, o)
	}
	r.active = kept
	return removed
}

// Len returns the number of active overrides
func (r *Registry) Len() int {
	return len(r.active)
}

// Intensity returns the ease-out curve 1-(elapsed/duration)^2 for an
// override: 1 at the trigger instant, 0 once expired. Overrides with
// Duration 0 hold intensity 1 until cleared.
func (r *Registry) Intensity(o *ActiveOverride) float64 {
	if o.Patch.Duration <= 0 {
		return 1.0
	}
	elapsed := r.clock.Now().Sub(o.TriggeredAt)
	if elapsed >= o.Patch.Duration {
		return 0.0
	}
	progress := float64(elapsed) / float64(o.Patch.Duration)
	return 1.0 - progress*progress
}

// Resolve returns the current value for a channel, scanning active
// overrides from most recently triggered to least: across independent
// events, whichever still-alive override fired later wins.
func (r *Registry) Resolve(ch Channel) (any, bool) {
	o, v := r.resolve(ch)
	if o == nil {
		return nil, false
	}
	return v, true
}

// resolve returns the winning override and its channel value. Adds keep
// the slice in trigger order, so the scan walks backwards.
func (r *Registry) resolve(ch Channel) (*ActiveOverride, any) {
	for i := len(r.active) - 1; i >= 0; i-- {
		o := &r.active[i]
		if v := channelValue(o.Patch, ch); v != nil {
			return o, v
		}
	}
	return nil, nil
}

// channelValue extracts a channel's value from a patch set; nil means the
// patch does not touch that channel. Exhaustive over Channel.
func channelValue(p *theme.EventOverride, ch Channel) any {
	switch ch {
	case ChannelGrid:
		if p.Grid != nil {
			return p.Grid
		}
	case ChannelStarfield:
		if p.Starfield != nil {
			return p.Starfield
		}
	case ChannelRain:
		if p.Rain != nil {
			return p.Rain
		}
	case ChannelParticles:
		if p.Particles != nil {
			return p.Particles
		}
	case ChannelMatrix:
		if p.Matrix != nil {
			return p.Matrix
		}
	case ChannelShape:
		if p.Shape != nil {
			return p.Shape
		}
	case ChannelSprite:
		if p.Sprite != nil {
			return p.Sprite
		}
	case ChannelCursorColor:
		if p.CursorColor != nil {
			return *p.CursorColor
		}
	case ChannelCursorShape:
		if p.CursorShape != nil {
			return *p.CursorShape
		}
	case ChannelForeground:
		if p.Foreground != nil {
			return *p.Foreground
		}
	case ChannelBackground:
		if p.Background != nil {
			return p.Background
		}
	case ChannelTextShadow:
		if p.TextShadow != nil {
			return p.TextShadow
		}
	case ChannelFlash:
		if p.Flash != nil {
			return p.Flash
		}
	}
	return nil
}

// CursorColor resolves the cursor color channel
func (r *Registry) CursorColor() (theme.RGB, bool) {
	o, v := r.resolve(ChannelCursorColor)
	if o == nil {
		return theme.RGB{}, false
	}
	return v.(theme.RGB), true
}

// CursorShape resolves the cursor shape channel
func (r *Registry) CursorShape() (vt.CursorShape, bool) {
	o, v := r.resolve(ChannelCursorShape)
	if o == nil {
		return vt.CursorBlock, false
	}
	return v.(vt.CursorShape), true
}

// Foreground resolves the foreground color channel
func (r *Registry) Foreground() (theme.RGB, bool) {
	o, v := r.resolve(ChannelForeground)
	if o == nil {
		return theme.RGB{}, false
	}
	return v.(theme.RGB), true
}

// Background resolves the background gradient channel
func (r *Registry) Background() (*theme.LinearGradient, bool) {
	o, v := r.resolve(ChannelBackground)
	if o == nil {
		return nil, false
	}
	return v.(*theme.LinearGradient), true
}

// TextShadow resolves the text shadow channel
func (r *Registry) TextShadow() (*theme.TextShadow, bool) {
	o, v := r.resolve(ChannelTextShadow)
	if o == nil {
		return nil, false
	}
	return v.(*theme.TextShadow), true
}

// EffectPatch resolves one of the backdrop effect channels to its patch
func (r *Registry) EffectPatch(ch Channel) (theme.EffectPatch, bool) {
	o, v := r.resolve(ch)
	if o == nil {
		return nil, false
	}
	p, ok := v.(theme.EffectPatch)
	return p, ok
}

// Flash resolves the full-screen flash: the patch color with its peak
// intensity scaled by the owning override's ease-out curve
func (r *Registry) Flash() (theme.RGB, float64, bool) {
	o, v := r.resolve(ChannelFlash)
	if o == nil {
		return theme.RGB{}, 0, false
	}
	f := v.(*theme.FlashOverride)
	intensity := f.Intensity * r.Intensity(o)
	if intensity <= 0 {
		return theme.RGB{}, 0, false
	}
	return f.Color, intensity, true
}
