package render

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/phosphor/terminal"
	"github.com/lixenwraith/phosphor/theme"
	"github.com/lixenwraith/phosphor/ui"
)

// drawString writes a string left to right through the given blend mode,
// advancing by display width so wide runes keep their spacer cell.
// Returns the total width consumed.
func drawString(buf *RenderBuffer, x, y int, s string, fg, bg terminal.RGB, mode BlendMode, alpha float64, attrs terminal.Attr) int {
	cx := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		buf.Set(cx, y, r, fg, bg, mode, alpha, attrs)
		for i := 1; i < w; i++ {
			buf.Set(cx+i, y, ' ', fg, bg, mode, alpha, attrs)
		}
		cx += w
	}
	return cx - x
}

// drawTabBar renders the chrome row: one segment per tab, the active one
// highlighted and optionally glowing
func (c *Compositor) drawTabBar(buf *RenderBuffer, st *RenderState, width int) {
	tt := c.theme.Tabs
	for x := 0; x < width; x++ {
		buf.Set(x, 0, ' ', tt.InactiveFg, tt.BarBackground, BlendReplace, 1.0, terminal.AttrNone)
	}

	x := 0
	for i, tab := range st.Tabs.Tabs {
		title := tab.Title
		if title == "" {
			title = fmt.Sprintf("tab %d", i+1)
		}
		label := fmt.Sprintf(" %d:%s ", i+1, runewidth.Truncate(title, 20, "…"))
		fg, bg := tt.InactiveFg, tt.InactiveBg
		attrs := terminal.AttrNone
		if i == st.Tabs.Active {
			fg, bg = tt.ActiveFg, tt.ActiveBg
			attrs = terminal.AttrBold
		}
		w := drawString(buf, x, 0, label, fg, bg, BlendReplace, 1.0, attrs)
		if i == st.Tabs.Active && tt.ActiveGlow != nil {
			for gx := x - 1; gx <= x+w; gx++ {
				buf.Set(gx, 0, 0, terminal.RGBBlack,
					terminal.Scale(tt.ActiveGlow.Color, tt.ActiveGlow.Intensity), BlendAdd, 1.0, terminal.AttrNone)
			}
		}
		x += w + 1
		if x >= width {
			break
		}
	}
}

// drawSearchBar renders the bottom search prompt with the match counter
func (c *Compositor) drawSearchBar(buf *RenderBuffer, st *RenderState, th *theme.Theme, width, height int) {
	s := &st.UI.Search
	if !s.Active {
		return
	}
	y := height - 1
	bg := th.Tabs.BarBackground
	for x := 0; x < width; x++ {
		buf.Set(x, y, ' ', th.Foreground, bg, BlendReplace, 1.0, terminal.AttrNone)
	}
	prompt := "/" + s.Query
	drawString(buf, 0, y, prompt, th.Foreground, bg, BlendReplace, 1.0, terminal.AttrNone)
	if len(s.Matches) > 0 {
		counter := fmt.Sprintf("[%d/%d]", s.CurrentMatch+1, len(s.Matches))
		drawString(buf, width-runewidth.StringWidth(counter)-1, y, counter,
			th.Highlight.Current, bg, BlendReplace, 1.0, terminal.AttrNone)
	}
}

// drawRenameDialog renders the centered tab rename prompt
func (c *Compositor) drawRenameDialog(buf *RenderBuffer, st *RenderState, th *theme.Theme, width, height int) {
	r := &st.UI.Rename
	if !r.Active {
		return
	}
	label := " Rename: " + r.Text + "▏ "
	w := runewidth.StringWidth(label)
	x := (width - w) / 2
	y := height / 2
	drawString(buf, x, y, label, th.Tabs.ActiveFg, th.Tabs.ActiveBg, BlendReplace, 1.0, terminal.AttrBold)
}

// drawContextMenu renders the right-click menu box with the hovered item
// highlighted
func (c *Compositor) drawContextMenu(buf *RenderBuffer, st *RenderState, th *theme.Theme) {
	m := &st.UI.ContextMenu
	if !m.Visible || len(m.Items) == 0 {
		return
	}
	menuW := 0
	for _, item := range m.Items {
		if w := runewidth.StringWidth(item); w > menuW {
			menuW = w
		}
	}
	menuW += 2
	for i, item := range m.Items {
		fg, bg := th.Tabs.InactiveFg, th.Tabs.BarBackground
		if i == m.SelectedIndex {
			fg, bg = th.Tabs.ActiveFg, th.Tabs.ActiveBg
		}
		label := " " + runewidth.FillRight(item, menuW-1)
		drawString(buf, m.X, m.Y+i, label, fg, bg, BlendReplace, 1.0, terminal.AttrNone)
	}
}

// drawIndicators renders the transient overlays with their fade opacity:
// zoom readout and copy confirmation top right, toast bottom center
func (c *Compositor) drawIndicators(buf *RenderBuffer, st *RenderState, th *theme.Theme, width, height int) {
	if op := st.UI.Zoom.Opacity(); op > 0 {
		label := fmt.Sprintf(" %d%% ", st.UI.Zoom.Percent)
		x := width - runewidth.StringWidth(label) - 1
		drawString(buf, x, contentOffsetY, label, th.Tabs.ActiveFg, th.Tabs.ActiveBg, BlendAlpha, op, terminal.AttrBold)
	}
	if op := st.UI.Copy.Opacity(); op > 0 {
		label := " Copied "
		x := width - runewidth.StringWidth(label) - 1
		drawString(buf, x, contentOffsetY+1, label, th.Tabs.ActiveFg, th.Tabs.ActiveBg, BlendAlpha, op, terminal.AttrNone)
	}
	if op := st.UI.Toast.Opacity(); op > 0 {
		fg := th.Foreground
		switch st.UI.Toast.Kind {
		case ui.ToastWarning:
			fg = th.Palette.Yellow
		case ui.ToastError:
			fg = th.Palette.Red
		}
		label := " " + st.UI.Toast.Message + " "
		x := (width - runewidth.StringWidth(label)) / 2
		drawString(buf, x, height-2, label, fg, th.Tabs.BarBackground, BlendAlpha, op, terminal.AttrNone)
	}
}
