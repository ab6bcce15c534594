package theme

import (
	"time"

	"github.com/lixenwraith/phosphor/vt"
)

// EffectPatch is the closed union of backdrop effect patches. Adding a new
// effect kind means adding a variant here and extending the compositor's
// apply/restore switch.
type EffectPatch interface {
	effectPatch()
}

func (*GridPatch) effectPatch()      {}
func (*StarfieldPatch) effectPatch() {}
func (*RainPatch) effectPatch()      {}
func (*ParticlePatch) effectPatch()  {}
func (*MatrixPatch) effectPatch()    {}
func (*ShapePatch) effectPatch()     {}
func (*SpritePatch) effectPatch()    {}

// GridPatch overrides grid effect parameters
type GridPatch struct {
	Color   *RGB
	Spacing *int
	Speed   *float64
	Opacity *float64
}

// StarfieldPatch overrides starfield parameters
type StarfieldPatch struct {
	Color   *RGB
	Density *float64
	Speed   *float64
	Twinkle *bool
}

// RainPatch overrides rain parameters
type RainPatch struct {
	Color     *RGB
	Density   *float64
	Speed     *float64
	Direction *float64
}

// ParticlePatch overrides particle parameters
type ParticlePatch struct {
	Color *RGB
	Count *int
	Speed *float64
}

// MatrixPatch overrides matrix parameters
type MatrixPatch struct {
	Color   *RGB
	Density *float64
	Speed   *float64
	Charset *string
}

// ShapePatch overrides shape parameters
type ShapePatch struct {
	Color *RGB
	Kind  *ShapeKind
	Size  *float64
	Spin  *float64
}

// SpritePatch overrides sprite parameters; Frames replaces the whole
// animation when set (keeps position/motion, matching backdrop patching)
type SpritePatch struct {
	Frames  []string
	Color   *RGB
	Fps     *float64
	Opacity *float64
}

// FlashOverride is a full-screen flash: color at a peak intensity, scaled
// by the override's ease-out intensity curve over its lifetime
type FlashOverride struct {
	Color     RGB
	Intensity float64
}

// EventOverride is a temporary theme modification triggered by a terminal
// event. Duration 0 means "persist until cleared by another event" (used
// for focus-lost reactions). All fields are optional; nil keeps the base
// theme value.
type EventOverride struct {
	Duration time.Duration

	Foreground  *RGB
	Background  *LinearGradient
	CursorColor *RGB
	CursorShape *vt.CursorShape
	TextShadow  *TextShadow
	Flash       *FlashOverride

	Grid      *GridPatch
	Starfield *StarfieldPatch
	Rain      *RainPatch
	Particles *ParticlePatch
	Matrix    *MatrixPatch
	Shape     *ShapePatch
	Sprite    *SpritePatch
}

// Merge folds another override into this one, cascade style: later values
// win field by field, nils leave the receiver untouched
func (o *EventOverride) Merge(other *EventOverride) {
	if other == nil {
		return
	}
	if other.Duration > 0 {
		o.Duration = other.Duration
	}
	if other.Foreground != nil {
		o.Foreground = other.Foreground
	}
	if other.Background != nil {
		o.Background = other.Background
	}
	if other.CursorColor != nil {
		o.CursorColor = other.CursorColor
	}
	if other.CursorShape != nil {
		o.CursorShape = other.CursorShape
	}
	if other.TextShadow != nil {
		o.TextShadow = other.TextShadow
	}
	if other.Flash != nil {
		o.Flash = other.Flash
	}
	if other.Grid != nil {
		o.Grid = other.Grid
	}
	if other.Starfield != nil {
		o.Starfield = other.Starfield
	}
	if other.Rain != nil {
		o.Rain = other.Rain
	}
	if other.Particles != nil {
		o.Particles = other.Particles
	}
	if other.Matrix != nil {
		o.Matrix = other.Matrix
	}
	if other.Shape != nil {
		o.Shape = other.Shape
	}
	if other.Sprite != nil {
		o.Sprite = other.Sprite
	}
}
