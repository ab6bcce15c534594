package theme

// Backdrop effect baselines. Each struct is the full parameter set of one
// animated backdrop; the corresponding patch types in patch.go carry
// optional per-field overrides on top of these baselines.

// GridEffect is a scrolling perspective grid
type GridEffect struct {
	Color   RGB
	Spacing int
	Speed   float64
	Opacity float64
}

// StarfieldEffect is a drifting star layer
type StarfieldEffect struct {
	Color   RGB
	Density float64
	Speed   float64
	Twinkle bool
}

// RainEffect is falling streaks
type RainEffect struct {
	Color     RGB
	Density   float64
	Speed     float64
	Direction float64 // horizontal drift, cells per second
}

// ParticleEffect is floating particles
type ParticleEffect struct {
	Color RGB
	Count int
	Speed float64
}

// MatrixEffect is falling glyph columns
type MatrixEffect struct {
	Color   RGB
	Density float64
	Speed   float64
	Charset string
}

// ShapeEffect is a large animated outline shape
type ShapeEffect struct {
	Color RGB
	Kind  ShapeKind
	Size  float64
	Spin  float64
}

// ShapeKind enumerates shape effect variants
type ShapeKind uint8

const (
	ShapeDiamond ShapeKind = iota
	ShapeCircle
	ShapeTriangle
)

// SpriteEffect is an ASCII sprite that wanders the backdrop
type SpriteEffect struct {
	Frames  []string // one string per animation frame
	Color   RGB
	Fps     float64
	Opacity float64
}

// CrtEffect is the final post-process pass
type CrtEffect struct {
	ScanlineDepth float64 // darkening applied to odd rows, 0-1
	Flicker       float64 // per-frame brightness jitter amplitude, 0-1
	Curvature     float64 // edge vignette strength, 0-1
}
