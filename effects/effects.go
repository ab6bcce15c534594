// Package effects implements the animated backdrop layers: grid,
// starfield, rain, particles, matrix, shape, and sprite. Each effect
// carries a baseline parameter set from the theme plus a working copy the
// compositor patches and restores through the override channels. All
// animation advances by the compositor's fixed timestep so replayed frame
// sequences produce identical output.
package effects

// splitmix-style scramble used to place stars, drops and glyph columns
// deterministically from their index
func scramble(v uint64) uint64 {
	v ^= v >> 33
	v *= 0xff51afd7ed558ccd
	v ^= v >> 33
	v *= 0xc4ceb9fe1a85ec53
	v ^= v >> 33
	return v
}

// unit maps an index to a stable pseudo-random float in [0, 1)
func unit(v uint64) float64 {
	return float64(scramble(v)%1_000_000) / 1_000_000.0
}
