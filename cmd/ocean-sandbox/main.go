package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/tidewake/audio"
	"github.com/lixenwraith/tidewake/config"
	"github.com/lixenwraith/tidewake/core"
	"github.com/lixenwraith/tidewake/engine"
	"github.com/lixenwraith/tidewake/logging"
	"github.com/lixenwraith/tidewake/render"
)

var (
	configDir = flag.String("config", ".", "Directory holding tidewake.toml")
	hullPath  = flag.String("hull", "", "Hull JSON file; empty uses the built-in hull")
	preset    = flag.String("preset", "", "Camera preset override: desktop, touch")
	noAudio   = flag.Bool("mute", false, "Disable audio cues")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ocean-sandbox: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configDir)
	if err != nil {
		return err
	}
	if *preset != "" {
		cfg.Camera.Preset = *preset
	}

	// stdout belongs to the screen
	var logOut io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, err := logging.OpenFile(cfg.Log.File)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	log := logging.New(logOut, cfg.Log.Level)
	log.Info().Str("config", cfg.Source).Msg("ocean-sandbox starting")

	opts, err := engine.OptionsFromConfig(cfg, log)
	if err != nil {
		return err
	}
	if *hullPath != "" {
		// Hit-testing stays off until the file loads
		opts.Hull = nil
	}
	sim, err := engine.NewSimulation(opts)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	core.SetCrashCleanup(screen.Fini)
	screen.EnableMouse()
	screen.HideCursor()

	sound := audio.NewSoundManager(audio.FromConfig(cfg.Audio), logging.Component(log, "audio"))
	if cfg.Audio.Enabled && !*noAudio {
		if err := sound.Initialize(); err != nil {
			log.Warn().Err(err).Msg("continuing without audio")
		}
	}
	defer sound.Cleanup()
	defer sound.Subscribe(sim.Bus())()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	renderer := render.NewTerminalRenderer(screen, sim.Registry())
	drv := engine.NewDriver(sim, nil, opts.TickInterval)
	held := newKeyHold(holdWindow)
	drv.OnFrame(func(f engine.Frame) {
		for _, k := range held.expire(time.Now()) {
			sim.KeyUp(k)
		}
		renderer.RenderFrame(f)
	})

	if *hullPath != "" {
		drv.LoadHull(ctx, engine.FileHull{Path: *hullPath})
	}

	core.Go(func() { pollEvents(ctx, cancel, screen, drv, renderer, held, log) })

	return drv.Run(ctx)
}

// pollEvents translates terminal events into driver commands until quit
func pollEvents(ctx context.Context, quit context.CancelFunc, screen tcell.Screen, drv *engine.Driver,
	renderer *render.TerminalRenderer, held *keyHold, log zerolog.Logger) {
	post := func(cmd engine.Command) bool {
		if err := drv.Post(ctx, cmd); err != nil {
			return false
		}
		return true
	}

	var buttonDown bool
	for {
		ev := screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			post(func(*engine.Simulation) {
				renderer.Resize(w, h)
				screen.Sync()
			})

		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
				quit()
				return
			}
			if ev.Key() == tcell.KeyRune && ev.Rune() == '?' {
				post(func(*engine.Simulation) { renderer.ToggleHints() })
				continue
			}
			k := keyName(ev)
			if k == "" {
				continue
			}
			now := time.Now()
			ok := post(func(s *engine.Simulation) { pressKey(s, held, k, now) })
			if !ok {
				return
			}

		case *tcell.EventMouse:
			pressed := ev.Buttons()&tcell.Button1 != 0
			if pressed && !buttonDown {
				x, y := ev.Position()
				post(func(s *engine.Simulation) {
					vx, vy, inside := renderer.ScreenToViewport(x, y)
					if !inside {
						return
					}
					td := renderer.Viewport(s.Frame())
					if _, err := s.PointerSelect(vx, vy, td); err != nil {
						log.Debug().Err(err).Int("x", x).Int("y", y).Msg("select failed")
					}
				})
			}
			buttonDown = pressed
		}
	}
}
