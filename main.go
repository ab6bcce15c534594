// Phosphor demo: drives the compositor against an in-memory terminal
// source so the theme, effects and event overrides can be exercised
// without a PTY. Keys: b bell, f fail, s success, z zoom, c copy, t
// toast, / search, q or Ctrl-C quit.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"pkt.systems/pslog"

	"github.com/lixenwraith/phosphor/audio"
	"github.com/lixenwraith/phosphor/config"
	"github.com/lixenwraith/phosphor/effects"
	"github.com/lixenwraith/phosphor/engine"
	"github.com/lixenwraith/phosphor/events"
	"github.com/lixenwraith/phosphor/render"
	"github.com/lixenwraith/phosphor/terminal"
	"github.com/lixenwraith/phosphor/theme"
	"github.com/lixenwraith/phosphor/ui"
	"github.com/lixenwraith/phosphor/vt"
)

func main() {
	configPath := flag.String("config", "phosphor.toml", "configuration file")
	logPath := flag.String("log", "", "debug log file (stderr is unusable under the alternate screen)")
	flag.Parse()

	logWriter := os.Stderr
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "open log:", err)
			os.Exit(1)
		}
		defer f.Close()
		logWriter = f
	}
	logger := pslog.NewWithOptions(logWriter, pslog.Options{Mode: pslog.ModeStructured})

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger pslog.Logger) error {
	screen, err := terminal.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	th := theme.Synthwave()
	th.CursorShape = cfg.Shape()
	if cfg.Crt.Enabled {
		th.Crt = &theme.CrtEffect{
			ScanlineDepth: cfg.Crt.ScanlineDepth,
			Flicker:       cfg.Crt.Flicker,
			Curvature:     cfg.Crt.Curvature,
		}
	}
	wireOverrides(th)

	clock := engine.NewMonotonicTimeProvider()
	comp := render.NewCompositor(screen, clock, th, logger)
	comp.SetBlinkInterval(cfg.BlinkInterval())
	comp.RegisterEffect(effects.NewGrid(th.Grid))
	comp.RegisterEffect(effects.NewStarfield(th.Starfield))
	comp.RegisterEffect(effects.NewRain(th.Rain))
	comp.RegisterEffect(effects.NewParticles(th.Particles))
	comp.RegisterEffect(effects.NewMatrix(th.Matrix))
	comp.RegisterEffect(effects.NewShape(th.Shape))
	comp.RegisterEffect(effects.NewSprite(th.Sprite))

	bell := audio.NewBell()
	if cfg.Audio.Enabled {
		if err := bell.Init(); err != nil {
			logger.Warn("audio unavailable", "err", err)
		}
		comp.SetBellFunc(bell.Ring)
	}

	st := render.NewRenderState(clock)
	src := demoSource()
	queue := events.NewQueue()

	input := make(chan terminal.Event, 16)
	go func() {
		for {
			input <- screen.PollEvent()
		}
	}()

	logger.Info("phosphor start", "fps", cfg.FPS)
	ticker := time.NewTicker(cfg.TickInterval())
	defer ticker.Stop()

	for {
		select {
		case ev := <-input:
			if quit := handleInput(ev, st, queue); quit {
				logger.Info("phosphor exit")
				return nil
			}
		case <-ticker.C:
			comp.RenderFrame(st, src, queue.Consume())
		}
	}
}

// wireOverrides attaches the stock event reactions: red flash and cursor
// on bell, red tint while a command failure fades, green blip on success,
// dimmed foreground while unfocused
func wireOverrides(th *theme.Theme) {
	red := th.Palette.Red
	green := th.Palette.Green
	dim := terminal.Scale(th.Foreground, 0.6)

	th.OnBell = &theme.EventOverride{
		Duration:    200 * time.Millisecond,
		CursorColor: &red,
		Flash:       &theme.FlashOverride{Color: red, Intensity: 0.25},
	}
	th.OnCommandFail = &theme.EventOverride{
		Duration:    800 * time.Millisecond,
		CursorColor: &red,
		Flash:       &theme.FlashOverride{Color: red, Intensity: 0.15},
	}
	th.OnCommandSuccess = &theme.EventOverride{
		Duration:    300 * time.Millisecond,
		CursorColor: &green,
	}
	th.OnFocusLost = &theme.EventOverride{
		Foreground: &dim,
	}
}

// demoSource builds a fake terminal with prompt, output and zone markers
func demoSource() *vt.Fake {
	src := vt.NewFake(120, 40)
	src.SetText(0, 0, "phosphor ~ % ls -la")
	src.SetZone(0, vt.ZonePrompt)
	src.SetText(1, 0, "total 42")
	src.SetZone(1, vt.ZoneOutput)
	src.SetText(2, 0, "drwxr-xr-x   7 demo  staff   224 Aug 30 12:00 .")
	src.SetZone(2, vt.ZoneOutput)
	src.SetText(3, 0, "-rw-r--r--   1 demo  staff  1021 Aug 30 11:58 phosphor.toml")
	src.SetZone(3, vt.ZoneOutput)
	src.SetText(5, 0, "phosphor ~ % ")
	src.SetZone(5, vt.ZoneInput)
	src.CursorState = vt.CursorState{Line: 5, Column: 13, Shape: vt.CursorBlock, Visible: true}
	return src
}

// handleInput maps demo keys to shell events and UI state; returns true
// on quit
func handleInput(ev terminal.Event, st *render.RenderState, queue *events.Queue) bool {
	switch e := ev.(type) {
	case terminal.InterruptEvent:
		return true
	case terminal.ResizeEvent:
		st.Invalidate()
	case terminal.KeyEvent:
		if e.Ctrl && e.Rune == 'c' {
			return true
		}
		switch e.Rune {
		case 'q':
			return true
		case 'b':
			queue.Push(events.ShellEvent{Kind: events.ShellBell})
		case 'f':
			queue.Push(events.ShellEvent{Kind: events.ShellCommandFail, Code: 1})
		case 's':
			queue.Push(events.ShellEvent{Kind: events.ShellCommandSuccess})
		case 'g':
			queue.Push(events.ShellEvent{Kind: events.ShellFocusGained})
		case 'l':
			queue.Push(events.ShellEvent{Kind: events.ShellFocusLost})
		case 'n':
			queue.Push(events.ShellEvent{Kind: events.ShellTitleChanged, Title: "renamed"})
		case 'z':
			st.UI.Zoom.Show(120)
		case 'c':
			st.UI.Copy.Trigger()
		case 't':
			st.UI.Toast.Show(ui.ToastInfo, "Connection restored")
		case '/':
			st.UI.Search.Open()
			st.UI.Search.Query = "phosphor"
			st.UI.Search.SetMatches([]ui.SearchMatch{
				{Line: 3, StartCol: 38, EndCol: 46},
				{Line: 5, StartCol: 0, EndCol: 8},
			})
			st.Invalidate()
		}
		if e.Key == terminal.KeyEscape {
			st.UI.Search.Close()
			st.Invalidate()
		}
	}
	return false
}
