package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// tcellScreen implements Screen over a tcell terminal
type tcellScreen struct {
	screen tcell.Screen
}

// NewScreen creates a tcell-backed Screen
func NewScreen() (Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &tcellScreen{screen: s}, nil
}

func (t *tcellScreen) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	t.screen.Clear()
	return nil
}

func (t *tcellScreen) Fini() {
	t.screen.Fini()
}

func (t *tcellScreen) Size() (int, int) {
	return t.screen.Size()
}

func (t *tcellScreen) Flush(cells []Cell, width, height int) {
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			c := cells[row+x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			t.screen.SetContent(x, y, r, nil, styleFor(c))
		}
	}
	t.screen.Show()
}

func (t *tcellScreen) Sync() {
	t.screen.Sync()
}

func (t *tcellScreen) PollEvent() Event {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return keyEventFrom(ev)
		case *tcell.EventResize:
			w, h := ev.Size()
			return ResizeEvent{Width: w, Height: h}
		case *tcell.EventInterrupt:
			return InterruptEvent{}
		case nil:
			return InterruptEvent{}
		default:
			// Mouse and paste events are not consumed by this layer
			continue
		}
	}
}

// styleFor maps a Cell to a tcell style
func styleFor(c Cell) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
		Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
	if c.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&AttrItalic != 0 {
		st = st.Italic(true)
	}
	if c.Attrs&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if c.Attrs&AttrBlink != 0 {
		st = st.Blink(true)
	}
	if c.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	if c.Attrs&AttrStrike != 0 {
		st = st.StrikeThrough(true)
	}
	return st
}

func keyEventFrom(ev *tcell.EventKey) KeyEvent {
	ke := KeyEvent{Ctrl: ev.Modifiers()&tcell.ModCtrl != 0}
	switch ev.Key() {
	case tcell.KeyRune:
		ke.Rune = ev.Rune()
	case tcell.KeyEscape:
		ke.Key = KeyEscape
	case tcell.KeyEnter:
		ke.Key = KeyEnter
	case tcell.KeyTab:
		ke.Key = KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ke.Key = KeyBackspace
	case tcell.KeyUp:
		ke.Key = KeyUp
	case tcell.KeyDown:
		ke.Key = KeyDown
	case tcell.KeyLeft:
		ke.Key = KeyLeft
	case tcell.KeyRight:
		ke.Key = KeyRight
	case tcell.KeyCtrlC:
		ke.Ctrl = true
		ke.Rune = 'c'
	}
	return ke
}
