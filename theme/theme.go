// Package theme holds the typed theme document consumed by the compositor:
// palette, backdrop effect baselines, and event-triggered override patches.
// Theme file parsing is owned by the embedding application; this package
// only defines the document and its defaults.
package theme

import (
	"github.com/lixenwraith/phosphor/terminal"
	"github.com/lixenwraith/phosphor/vt"
)

// RGB re-exports the terminal color type for theme construction
type RGB = terminal.RGB

// AnsiPalette is the 16-color ANSI palette
type AnsiPalette struct {
	Black, Red, Green, Yellow, Blue, Magenta, Cyan, White                                         RGB
	BrightBlack, BrightRed, BrightGreen, BrightYellow, BrightBlue, BrightMagenta, BrightCyan, BrightWhite RGB
}

// Get returns the palette entry for a 0-15 index
func (p *AnsiPalette) Get(idx uint8) RGB {
	switch idx {
	case 0:
		return p.Black
	case 1:
		return p.Red
	case 2:
		return p.Green
	case 3:
		return p.Yellow
	case 4:
		return p.Blue
	case 5:
		return p.Magenta
	case 6:
		return p.Cyan
	case 7:
		return p.White
	case 8:
		return p.BrightBlack
	case 9:
		return p.BrightRed
	case 10:
		return p.BrightGreen
	case 11:
		return p.BrightYellow
	case 12:
		return p.BrightBlue
	case 13:
		return p.BrightMagenta
	case 14:
		return p.BrightCyan
	default:
		return p.BrightWhite
	}
}

// TextShadow describes a glow halo around glyphs
type TextShadow struct {
	Color     RGB
	Radius    float64
	Intensity float64
}

// SelectionStyle colors the selection overlay
type SelectionStyle struct {
	Background RGB
	Alpha      float64
}

// HighlightStyle colors search match backgrounds
type HighlightStyle struct {
	// Current is the focused match background
	Current RGB
	// Others is the background of non-focused matches
	Others RGB
}

// AsciiArt is a static character-art layer drawn between the backdrop
// effects and the terminal content
type AsciiArt struct {
	Rows    []string
	Color   RGB
	Opacity float64
}

// TabTheme styles the tab bar chrome
type TabTheme struct {
	BarBackground RGB
	ActiveBg      RGB
	InactiveBg    RGB
	ActiveFg      RGB
	InactiveFg    RGB
	// ActiveGlow, when set, renders the active title through the glow tier
	ActiveGlow *TextShadow
}

// Theme is a complete terminal theme
type Theme struct {
	// Colors
	Foreground RGB
	Background LinearGradient
	Palette    AnsiPalette

	// States
	Selection   SelectionStyle
	Highlight   HighlightStyle
	CursorColor RGB
	CursorGlow  *TextShadow

	// Configured default cursor shape; the terminal can override it via
	// escape sequences, theme event overrides rank above both
	CursorShape vt.CursorShape

	// Effects (nil = effect disabled)
	TextShadow *TextShadow
	Grid       *GridEffect
	Starfield  *StarfieldEffect
	Rain       *RainEffect
	Particles  *ParticleEffect
	Matrix     *MatrixEffect
	Shape      *ShapeEffect
	Sprite     *SpriteEffect
	Crt        *CrtEffect

	// BackgroundImage is an optional character-art layer behind the text
	BackgroundImage *AsciiArt

	// Chrome
	Tabs TabTheme

	// Event-driven overrides (nil = no reaction defined)
	OnBell           *EventOverride
	OnCommandFail    *EventOverride
	OnCommandSuccess *EventOverride
	OnFocusGained    *EventOverride
	OnFocusLost      *EventOverride
}

// Default returns the synthwave theme
func Default() *Theme {
	return Synthwave()
}

// Synthwave is the stock theme: neon palette, grid backdrop, glow on
func Synthwave() *Theme {
	return &Theme{
		Foreground: terminal.FromHex(0xc8c8c8),
		Background: LinearGradient{
			Stops: []GradientStop{
				{Color: terminal.FromHex(0x16091e), Position: 0.0},
				{Color: terminal.FromHex(0x0a0514), Position: 1.0},
			},
		},
		Palette: AnsiPalette{
			Black:         terminal.FromHex(0x16091e),
			Red:           terminal.FromHex(0xff2e97),
			Green:         terminal.FromHex(0x00ff9f),
			Yellow:        terminal.FromHex(0xffd319),
			Blue:          terminal.FromHex(0x4d7cff),
			Magenta:       terminal.FromHex(0xc45eff),
			Cyan:          terminal.FromHex(0x00e5ff),
			White:         terminal.FromHex(0xc8c8c8),
			BrightBlack:   terminal.FromHex(0x574a66),
			BrightRed:     terminal.FromHex(0xff6ab5),
			BrightGreen:   terminal.FromHex(0x6affc4),
			BrightYellow:  terminal.FromHex(0xffe566),
			BrightBlue:    terminal.FromHex(0x8aa9ff),
			BrightMagenta: terminal.FromHex(0xd98fff),
			BrightCyan:    terminal.FromHex(0x6af0ff),
			BrightWhite:   terminal.FromHex(0xffffff),
		},
		Selection: SelectionStyle{
			Background: terminal.FromHex(0x4d7cff),
			Alpha:      0.35,
		},
		Highlight: HighlightStyle{
			Current: terminal.FromHex(0xffd319),
			Others:  terminal.FromHex(0x70580b),
		},
		CursorColor: terminal.FromHex(0x00ffff),
		CursorGlow: &TextShadow{
			Color:     terminal.FromHex(0x00ffff),
			Radius:    2,
			Intensity: 0.6,
		},
		CursorShape: vt.CursorBlock,
		TextShadow: &TextShadow{
			Color:     terminal.FromHex(0xff2e97),
			Radius:    2,
			Intensity: 0.5,
		},
		Grid: &GridEffect{
			Color:   terminal.FromHex(0x2b1445),
			Spacing: 6,
			Speed:   0.5,
			Opacity: 0.6,
		},
		Tabs: TabTheme{
			BarBackground: terminal.FromHex(0x0a0514),
			ActiveBg:      terminal.FromHex(0x2b1445),
			InactiveBg:    terminal.FromHex(0x16091e),
			ActiveFg:      terminal.FromHex(0x00e5ff),
			InactiveFg:    terminal.FromHex(0x574a66),
			ActiveGlow: &TextShadow{
				Color:     terminal.FromHex(0x00e5ff),
				Radius:    1,
				Intensity: 0.4,
			},
		},
	}
}

// DefaultBackground returns the bottom stop of the background gradient,
// used as the reference "default bg" for decoration extraction
func (t *Theme) DefaultBackground() RGB {
	if len(t.Background.Stops) == 0 {
		return terminal.RGBBlack
	}
	return t.Background.Stops[len(t.Background.Stops)-1].Color
}

// Resolve maps a terminal engine color reference to concrete RGB through
// the theme palette: named colors, the 216 color cube, the grayscale ramp,
// and direct colors
func (t *Theme) Resolve(ref vt.ColorRef, def RGB) RGB {
	switch ref.Kind {
	case vt.ColorDefault:
		return def
	case vt.ColorNamed:
		return t.Palette.Get(ref.Index % 16)
	case vt.ColorIndexed:
		idx := ref.Index
		if idx < 16 {
			return t.Palette.Get(idx)
		}
		if idx < 232 {
			// 216 color cube (16-231)
			i := idx - 16
			r := (i / 36) % 6
			g := (i / 6) % 6
			b := i % 6
			level := func(v uint8) uint8 {
				if v == 0 {
					return 0
				}
				return v*40 + 55
			}
			return RGB{R: level(r), G: level(g), B: level(b)}
		}
		// Grayscale ramp (232-255)
		gray := (idx-232)*10 + 8
		return RGB{R: gray, G: gray, B: gray}
	default:
		return RGB{R: ref.R, G: ref.G, B: ref.B}
	}
}
