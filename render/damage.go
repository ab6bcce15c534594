package render

import (
	"github.com/lixenwraith/phosphor/vt"
)

// FNV-1a 64-bit parameters
const (
	fnvOffset uint64 = 0xcbf29ce484222325
	fnvPrime  uint64 = 0x100000001b3
)

// Fingerprint digests the terminal-visible state into a cheap,
// order-sensitive redraw-skip key. Cursor line, column, shape and
// visibility mode are folded in ahead of the cell runes: two frames with
// identical text but a moved cursor must differ. Not cryptographic;
// collisions only cost a skipped reclassification, never correctness.
func Fingerprint(cursor vt.CursorState, cells []vt.Cell) uint64 {
	h := fnvOffset
	h = fnvMix(h, uint64(uint32(cursor.Line)))
	h = fnvMix(h, uint64(uint32(cursor.Column)))
	h = fnvMix(h, uint64(cursor.Shape))
	if cursor.Visible {
		h = fnvMix(h, 1)
	} else {
		h = fnvMix(h, 0)
	}
	for i := range cells {
		h = fnvMix(h, uint64(uint32(cells[i].Rune)))
	}
	return h
}

func fnvMix(h, v uint64) uint64 {
	for i := 0; i < 8; i++ {
		h ^= (v >> (i * 8)) & 0xff
		h *= fnvPrime
	}
	return h
}

// ShouldReclassify gates the classification pass: the zero sentinel always
// forces it (first frame, resize, paste, scroll invalidation), otherwise a
// changed fingerprint does. The caller replaces the cached value with the
// new one unconditionally when this returns true.
func ShouldReclassify(newFingerprint, cachedFingerprint uint64) bool {
	return cachedFingerprint == 0 || newFingerprint != cachedFingerprint
}
