package bridge

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/tidewake/config"
	"github.com/lixenwraith/tidewake/core"
	"github.com/lixenwraith/tidewake/engine"
	"github.com/lixenwraith/tidewake/event"
	"github.com/lixenwraith/tidewake/input"
	"github.com/lixenwraith/tidewake/parameter"
)

// SessionID uniquely identifies a connected client
type SessionID uint32

// Session binds one websocket client to a private simulation and its driver
//
// Goroutines:
//   - readLoop (the HTTP handler goroutine) decodes client messages and Posts commands
//   - the driver goroutine ticks the simulation and queues snapshots and events
//   - writeLoop is the only writer on the connection
type Session struct {
	ID       SessionID
	LastSeen atomic.Int64 // UnixNano

	conn *websocket.Conn
	sim  *engine.Simulation
	tick time.Duration
	cfg  config.BridgeConfig
	log  zerolog.Logger

	hello HelloPayload

	sendCh    chan []byte
	closeCh   chan struct{}
	closeOnce sync.Once

	dropped atomic.Uint64
}

func newSession(id SessionID, conn *websocket.Conn, sim *engine.Simulation, tick time.Duration, cfg config.BridgeConfig, hello HelloPayload, log zerolog.Logger) *Session {
	hello.Session = uint32(id)
	s := &Session{
		ID:      id,
		conn:    conn,
		sim:     sim,
		tick:    tick,
		cfg:     cfg,
		log:     log.With().Uint32("session", uint32(id)).Logger(),
		hello:   hello,
		sendCh:  make(chan []byte, parameter.BridgeSendQueueSize),
		closeCh: make(chan struct{}),
	}
	s.LastSeen.Store(time.Now().UnixNano())
	return s
}

// Send queues an encoded message
// Returns false if the session is closed or the queue is full
func (s *Session) Send(data []byte) bool {
	select {
	case <-s.closeCh:
		return false
	default:
	}
	select {
	case s.sendCh <- data:
		return true
	default:
		s.dropped.Add(1)
		return false
	}
}

// Dropped counts messages discarded on a full queue
func (s *Session) Dropped() uint64 {
	return s.dropped.Load()
}

// Close initiates shutdown; safe to call repeatedly from any goroutine
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.closeCh)
		_ = s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		s.conn.Close()
	})
}

func (s *Session) send(msgType string, payload any) bool {
	data, err := Encode(msgType, payload)
	if err != nil {
		s.log.Error().Err(err).Str("type", msgType).Msg("encode failed")
		return false
	}
	return s.Send(data)
}

func (s *Session) sendError(forType string, err error) {
	s.send(TypeError, ErrorPayload{For: forType, Message: err.Error()})
}

// run blocks until the client disconnects or ctx ends
func (s *Session) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	drv := engine.NewDriver(s.sim, nil, s.tick)
	drv.OnFrame(s.onFrame)
	unsubscribe := s.sim.Bus().Subscribe(s.onEvent)

	s.send(TypeHello, s.hello)

	core.Go(func() {
		if err := drv.Run(ctx); err != nil {
			s.log.Error().Err(err).Msg("driver exited")
		}
	})
	core.Go(s.writeLoop)
	core.Go(func() {
		select {
		case <-ctx.Done():
		case <-s.closeCh:
		}
		s.Close()
	})

	err := s.readLoop(ctx, drv)
	cancel()
	<-drv.Done()
	unsubscribe()
	s.Close()
	return err
}

// readLoop decodes client messages until the connection fails
func (s *Session) readLoop(ctx context.Context, drv *engine.Driver) error {
	if s.cfg.MaxMessageBytes > 0 {
		s.conn.SetReadLimit(s.cfg.MaxMessageBytes)
	}
	extend := func() error {
		s.LastSeen.Store(time.Now().UnixNano())
		return s.conn.SetReadDeadline(time.Now().Add(parameter.BridgePongWait))
	}
	if err := extend(); err != nil {
		return err
	}
	s.conn.SetPongHandler(func(string) error { return extend() })

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			select {
			case <-s.closeCh:
				return nil
			default:
			}
			return fmt.Errorf("read: %w", err)
		}
		if err := extend(); err != nil {
			return err
		}

		env, err := Decode(data)
		if err != nil {
			s.sendError("", err)
			continue
		}
		cmd, err := s.command(env)
		if err != nil {
			s.log.Debug().Err(err).Str("type", env.Type).Msg("message rejected")
			s.sendError(env.Type, err)
			continue
		}
		if err := drv.Post(ctx, cmd); err != nil {
			return nil
		}
	}
}

// command turns a client message into a driver command
func (s *Session) command(env Envelope) (engine.Command, error) {
	switch env.Type {
	case TypeKeyDown, TypeKeyUp:
		var p KeyPayload
		if err := payloadInto(env, &p); err != nil {
			return nil, err
		}
		if p.Key == "" {
			return nil, fmt.Errorf("%w: %s: empty key", ErrMalformed, env.Type)
		}
		k := input.ParseKey(p.Key)
		if env.Type == TypeKeyDown {
			return func(sim *engine.Simulation) { sim.KeyDown(k) }, nil
		}
		return func(sim *engine.Simulation) { sim.KeyUp(k) }, nil

	case TypeJoystickMove:
		var p JoystickPayload
		if err := payloadInto(env, &p); err != nil {
			return nil, err
		}
		d := mgl64.Vec2{p.X, p.Y}
		return func(sim *engine.Simulation) { sim.JoystickMove(d) }, nil

	case TypeJoystickRelease:
		return func(sim *engine.Simulation) { sim.JoystickRelease() }, nil

	case TypeSelect:
		var p SelectPayload
		if err := payloadInto(env, &p); err != nil {
			return nil, err
		}
		return func(sim *engine.Simulation) {
			if _, err := sim.PointerSelect(p.X, p.Y, sim.Projector(p.Width, p.Height)); err != nil {
				s.sendError(TypeSelect, err)
			}
		}, nil

	case TypeExit:
		return func(sim *engine.Simulation) { sim.Exit() }, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownType, env.Type)
}

// onFrame runs on the driver goroutine
func (s *Session) onFrame(f engine.Frame) {
	data, err := Encode(TypeSnapshot, NewSnapshot(f, s.cfg.SnapshotStride))
	if err != nil {
		s.log.Error().Err(err).Msg("snapshot encode failed")
		return
	}
	if !s.Send(data) {
		s.log.Trace().Int64("frame", f.Number).Msg("snapshot dropped")
	}
}

// onEvent runs on the driver goroutine
func (s *Session) onEvent(ev event.GameEvent) {
	p := EventPayload{Name: ev.Type.String(), Frame: ev.Frame, Data: ev.Payload}
	if hu, ok := ev.Payload.(*event.HullUnavailablePayload); ok {
		p.Data = nil
		if hu.Err != nil {
			p.Error = hu.Err.Error()
		}
	}
	if !s.send(TypeEvent, p) {
		s.log.Warn().Str("event", p.Name).Msg("event dropped")
	}
}

// writeLoop sends queued messages and keepalive pings
func (s *Session) writeLoop() {
	defer s.Close()

	ping := time.NewTicker(parameter.BridgePingInterval)
	defer ping.Stop()

	for {
		select {
		case <-s.closeCh:
			return
		case data := <-s.sendCh:
			if err := s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout)); err != nil {
				s.log.Warn().Err(err).Msg("set write deadline failed")
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				s.log.Debug().Err(err).Msg("write failed")
				return
			}
		case <-ping.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(s.cfg.WriteTimeout)); err != nil {
				s.log.Debug().Err(err).Msg("ping failed")
				return
			}
		}
	}
}
