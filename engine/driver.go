package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/tidewake/core"
	"github.com/lixenwraith/tidewake/parameter"
	"github.com/lixenwraith/tidewake/status"
)

// Command mutates the simulation on the driver goroutine
type Command func(s *Simulation)

// FrameFunc receives the frame after every tick, on the driver goroutine
type FrameFunc func(f Frame)

// Driver runs the simulation on a fixed tick and serializes host input onto the same goroutine
//
// Architecture:
//   - Run owns the Simulation; nothing else may touch it while Run is active
//   - Producers Post commands; Post blocks when the inbox is full, never drops
//   - Each tick: pending commands first, then Tick, then frame callbacks
//   - Cancelling the context stops scheduling immediately
type Driver struct {
	sim      *Simulation
	clock    Clock
	interval time.Duration
	log      zerolog.Logger

	inbox chan Command
	done  chan struct{}

	mu      sync.Mutex
	onFrame []FrameFunc

	running   atomic.Bool
	tickCount atomic.Uint64

	start     time.Time
	last      time.Time
	fpsWindow time.Time
	fpsFrames int

	statFPS *status.AtomicFloat
}

// NewDriver creates a stopped driver; interval <= 0 uses FrameUpdateInterval
func NewDriver(sim *Simulation, clock Clock, interval time.Duration) *Driver {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	if interval <= 0 {
		interval = parameter.FrameUpdateInterval
	}
	return &Driver{
		sim:      sim,
		clock:    clock,
		interval: interval,
		log:      sim.log.With().Str("component", "driver").Logger(),
		inbox:    make(chan Command, parameter.InputQueueSize),
		done:     make(chan struct{}),
		statFPS:  sim.reg.Floats.Get(status.KeyFPS),
	}
}

// OnFrame registers a frame callback; call before Run
func (d *Driver) OnFrame(fn FrameFunc) {
	d.mu.Lock()
	d.onFrame = append(d.onFrame, fn)
	d.mu.Unlock()
}

// Post queues cmd for the driver goroutine
// Blocks while the inbox is full; fails once the context ends or Run has returned
func (d *Driver) Post(ctx context.Context, cmd Command) error {
	select {
	case <-d.done:
		return ErrDriverStopped
	default:
	}
	select {
	case d.inbox <- cmd:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-d.done:
		return ErrDriverStopped
	}
}

// Done is closed when Run returns
func (d *Driver) Done() <-chan struct{} {
	return d.done
}

// Ticks returns the number of ticks run
func (d *Driver) Ticks() uint64 {
	return d.tickCount.Load()
}

// LoadHull runs loader off the driver goroutine and applies the result through Post
func (d *Driver) LoadHull(ctx context.Context, loader HullLoader) {
	core.Go(func() {
		h, err := loader.LoadHull(ctx)
		cmd := func(s *Simulation) {
			if err != nil {
				_ = s.hullFailed(err)
				return
			}
			s.AttachHull(h)
		}
		if perr := d.Post(ctx, cmd); perr != nil {
			d.log.Debug().Err(perr).Msg("hull result dropped")
		}
	})
}

// Run blocks until ctx is cancelled
// A driver runs once; a second Run returns ErrDriverRunning
func (d *Driver) Run(ctx context.Context) error {
	if !d.running.CompareAndSwap(false, true) {
		return ErrDriverRunning
	}
	defer close(d.done)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.start = d.clock.Now()
	d.last = d.start
	d.fpsWindow = d.start
	d.log.Info().Dur("interval", d.interval).Msg("driver started")
	defer d.log.Info().Uint64("ticks", d.tickCount.Load()).Msg("driver stopped")

	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd := <-d.inbox:
			cmd(d.sim)
		case <-ticker.C:
			if ctx.Err() != nil {
				return nil
			}
			d.drain()
			d.tick(d.clock.Now())
		}
	}
}

// drain applies queued commands without blocking
func (d *Driver) drain() {
	for {
		select {
		case cmd := <-d.inbox:
			cmd(d.sim)
		default:
			return
		}
	}
}

func (d *Driver) tick(now time.Time) {
	delta := seconds(now.Sub(d.last))
	d.last = now
	d.sim.Tick(seconds(now.Sub(d.start)), delta)
	d.tickCount.Add(1)

	d.fpsFrames++
	if window := now.Sub(d.fpsWindow); window >= time.Second {
		d.statFPS.Set(float64(d.fpsFrames) / window.Seconds())
		d.fpsFrames = 0
		d.fpsWindow = now
	}

	d.mu.Lock()
	callbacks := d.onFrame
	d.mu.Unlock()
	if len(callbacks) == 0 {
		return
	}
	f := d.sim.Frame()
	for _, fn := range callbacks {
		fn(f)
	}
}
