package ui

import (
	"time"

	"github.com/lixenwraith/phosphor/engine"
)

// Indicator lifetimes. The fade window differs per indicator: the zoom
// readout lingers, the copy confirmation snaps away faster.
const (
	zoomDuration   = 1500 * time.Millisecond
	zoomFadeWindow = 500 * time.Millisecond

	copyDuration   = 1200 * time.Millisecond
	copyFadeWindow = 400 * time.Millisecond

	toastDuration   = 4 * time.Second
	toastFadeWindow = 1500 * time.Millisecond
)

// ZoomIndicator shows the current font scale after a zoom action
type ZoomIndicator struct {
	*FadeTimer
	// Percent is the font scale shown, e.g. 120 for 1.2x
	Percent int
}

// NewZoomIndicator creates an idle zoom indicator
func NewZoomIndicator(clock engine.TimeProvider) *ZoomIndicator {
	return &ZoomIndicator{FadeTimer: NewFadeTimer(clock, zoomDuration, zoomFadeWindow)}
}

// Show displays the indicator with the given scale percentage
func (z *ZoomIndicator) Show(percent int) {
	z.Percent = percent
	z.Trigger()
}

// CopyIndicator is the brief "Copied!" confirmation
type CopyIndicator struct {
	*FadeTimer
}

// NewCopyIndicator creates an idle copy indicator
func NewCopyIndicator(clock engine.TimeProvider) *CopyIndicator {
	return &CopyIndicator{FadeTimer: NewFadeTimer(clock, copyDuration, copyFadeWindow)}
}

// ToastKind classifies a toast notification
type ToastKind uint8

const (
	ToastInfo ToastKind = iota
	ToastWarning
	ToastError
)

// Toast is a transient notification line
type Toast struct {
	*FadeTimer
	Message string
	Kind    ToastKind
}

// NewToast creates an idle toast
func NewToast(clock engine.TimeProvider) *Toast {
	return &Toast{FadeTimer: NewFadeTimer(clock, toastDuration, toastFadeWindow)}
}

// Show displays a message, replacing any current toast
func (t *Toast) Show(kind ToastKind, message string) {
	t.Kind = kind
	t.Message = message
	t.Trigger()
}
