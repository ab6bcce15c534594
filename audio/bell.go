// Package audio provides the audible terminal bell. Audio failures are
// never fatal: if no output device can be opened the bell degrades to
// silence and the rest of the program carries on.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	bellFreq     = 880.0
	bellDuration = 60 * time.Millisecond
)

// Bell plays the terminal bell tone through the system speaker
type Bell struct {
	mu          sync.Mutex
	initialized bool
	muted       bool
}

// NewBell creates an uninitialized bell
func NewBell() *Bell {
	return &Bell{}
}

// Init opens the speaker. An error leaves the bell in silent mode and is
// returned for logging only.
func (b *Bell) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	b.initialized = true
	return nil
}

// SetMuted toggles the bell without tearing down the speaker
func (b *Bell) SetMuted(muted bool) {
	b.mu.Lock()
	b.muted = muted
	b.mu.Unlock()
}

// Ring plays a short sine chirp, fire and forget. A no-op while muted or
// uninitialized.
func (b *Bell) Ring() {
	b.mu.Lock()
	ok := b.initialized && !b.muted
	b.mu.Unlock()
	if !ok {
		return
	}

	sine, err := generators.SineTone(sampleRate, bellFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(bellDuration), sine))
}
