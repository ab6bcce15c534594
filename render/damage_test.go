package render

import (
	"testing"

	"github.com/lixenwraith/phosphor/vt"
)

func helloSource() *vt.Fake {
	src := vt.NewFake(80, 24)
	src.SetText(0, 0, "Hello")
	src.CursorState = vt.CursorState{Line: 0, Column: 5, Shape: vt.CursorBlock, Visible: true}
	return src
}

func TestFingerprintDeterministic(t *testing.T) {
	src := helloSource()
	a := Fingerprint(src.Cursor(), src.Cells())
	b := Fingerprint(src.Cursor(), src.Cells())
	if a != b {
		t.Errorf("same state produced different fingerprints: %x vs %x", a, b)
	}
	if a == 0 {
		t.Error("fingerprint collided with the zero sentinel")
	}
}

func TestFingerprintTracksCursor(t *testing.T) {
	src := helloSource()
	before := Fingerprint(src.Cursor(), src.Cells())

	src.CursorState.Column = 6
	moved := Fingerprint(src.Cursor(), src.Cells())
	if moved == before {
		t.Error("cursor move should change the fingerprint")
	}

	src.CursorState.Column = 5
	back := Fingerprint(src.Cursor(), src.Cells())
	if back != before {
		t.Error("restoring cursor position should reproduce the fingerprint")
	}
}

func TestFingerprintTracksContentAndVisibility(t *testing.T) {
	src := helloSource()
	before := Fingerprint(src.Cursor(), src.Cells())

	src.SetText(0, 0, "Hellp")
	if Fingerprint(src.Cursor(), src.Cells()) == before {
		t.Error("content change should change the fingerprint")
	}
	src.SetText(0, 0, "Hello")

	src.CursorState.Visible = false
	if Fingerprint(src.Cursor(), src.Cells()) == before {
		t.Error("cursor visibility change should change the fingerprint")
	}

	src.CursorState.Visible = true
	src.CursorState.Shape = vt.CursorBeam
	if Fingerprint(src.Cursor(), src.Cells()) == before {
		t.Error("cursor shape change should change the fingerprint")
	}
}

func TestShouldReclassify(t *testing.T) {
	tests := []struct {
		name           string
		newFp, cached  uint64
		wantReclassify bool
	}{
		{"zero sentinel forces", 42, 0, true},
		{"changed fingerprint", 43, 42, true},
		{"unchanged fingerprint", 42, 42, false},
		{"both nonzero equal", 7, 7, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldReclassify(tt.newFp, tt.cached); got != tt.wantReclassify {
				t.Errorf("ShouldReclassify(%d, %d) = %v, want %v", tt.newFp, tt.cached, got, tt.wantReclassify)
			}
		})
	}
}
