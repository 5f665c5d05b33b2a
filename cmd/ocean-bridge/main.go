package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lixenwraith/tidewake/bridge"
	"github.com/lixenwraith/tidewake/config"
	"github.com/lixenwraith/tidewake/engine"
	"github.com/lixenwraith/tidewake/logging"
	"github.com/lixenwraith/tidewake/scene"
)

var (
	configDir = flag.String("config", ".", "Directory holding tidewake.toml")
	listen    = flag.String("listen", "", "Listen address override")
	hullPath  = flag.String("hull", "", "Hull JSON file loaded once at startup; empty uses the built-in hull")
)

const shutdownTimeout = 5 * time.Second

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ocean-bridge: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configDir)
	if err != nil {
		return err
	}
	if *listen != "" {
		cfg.Bridge.Listen = *listen
	}

	log := logging.NewConsole(os.Stderr, cfg.Log.Level)
	if cfg.Log.File != "" {
		f, err := logging.OpenFile(cfg.Log.File)
		if err != nil {
			return err
		}
		defer f.Close()
		log = logging.New(f, cfg.Log.Level)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// One hull for every session; a failed load leaves sessions without hit-testing
	var hull *scene.Hull
	if *hullPath == "" {
		h := scene.DefaultHull()
		hull = &h
	} else if h, err := (engine.FileHull{Path: *hullPath}).LoadHull(ctx); err != nil {
		log.Error().Err(err).Msg("hull unavailable, selection disabled")
	} else {
		hull = &h
	}

	options := func() (engine.Options, error) {
		opts, err := engine.OptionsFromConfig(cfg, log)
		if err != nil {
			return engine.Options{}, err
		}
		opts.Hull = hull
		return opts, nil
	}
	if _, err := options(); err != nil {
		return err
	}

	srv := bridge.NewServer(cfg.Bridge, options, log)
	srv.SetHandlers(
		func(id bridge.SessionID) {
			log.Debug().Uint32("session", uint32(id)).Int("active", srv.SessionCount()).Msg("connect")
		},
		func(id bridge.SessionID) {
			log.Debug().Uint32("session", uint32(id)).Msg("disconnect")
		},
	)

	httpSrv := &http.Server{
		Addr:              cfg.Bridge.Listen,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("listen", cfg.Bridge.Listen).Str("config", cfg.Source).Msg("ocean-bridge listening")
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("sessions did not drain")
	}
	return httpSrv.Shutdown(shutdownCtx)
}
