package bridge

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/tidewake/config"
	"github.com/lixenwraith/tidewake/engine"
	"github.com/lixenwraith/tidewake/parameter"
)

// OptionsFunc builds simulation options for a new session
type OptionsFunc func() (engine.Options, error)

// Server upgrades HTTP requests and runs one private simulation per connection
type Server struct {
	cfg      config.BridgeConfig
	options  OptionsFunc
	root     zerolog.Logger
	log      zerolog.Logger
	upgrader websocket.Upgrader

	mu       sync.RWMutex
	sessions map[SessionID]*Session
	nextID   atomic.Uint32
	wg       sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc

	// Callbacks
	onConnect    func(SessionID)
	onDisconnect func(SessionID)
}

// NewServer creates a server; nil options uses engine.DefaultOptions
func NewServer(cfg config.BridgeConfig, options OptionsFunc, log zerolog.Logger) *Server {
	if options == nil {
		options = func() (engine.Options, error) { return engine.DefaultOptions(), nil }
	}
	def := config.Default().Bridge
	if cfg.SnapshotStride < 1 {
		cfg.SnapshotStride = def.SnapshotStride
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = def.WriteTimeout
	}
	if cfg.MaxSessions < 1 {
		cfg.MaxSessions = def.MaxSessions
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		cfg:      cfg,
		options:  options,
		root:     log,
		log:      log.With().Str("component", "bridge").Logger(),
		sessions: make(map[SessionID]*Session),
		ctx:      ctx,
		cancel:   cancel,
	}
	if cfg.AllowAnyOrigin {
		s.upgrader.CheckOrigin = func(*http.Request) bool { return true }
	}
	return s
}

// SetHandlers configures session lifecycle callbacks; call before serving
func (s *Server) SetHandlers(onConnect, onDisconnect func(SessionID)) {
	s.onConnect = onConnect
	s.onDisconnect = onDisconnect
}

// ServeHTTP upgrades the request and blocks for the session lifetime
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s.ctx.Err() != nil {
		http.Error(w, ErrSessionClosed.Error(), http.StatusServiceUnavailable)
		return
	}
	if s.SessionCount() >= s.cfg.MaxSessions {
		http.Error(w, ErrSessionsFull.Error(), http.StatusServiceUnavailable)
		return
	}

	opts, err := s.options()
	if err != nil {
		s.log.Error().Err(err).Msg("session options failed")
		http.Error(w, "simulation unavailable", http.StatusInternalServerError)
		return
	}
	// Every session gets its own notification bus and metrics
	opts.Bus = nil
	opts.Registry = nil
	opts.Logger = s.root

	sim, err := engine.NewSimulation(opts)
	if err != nil {
		s.log.Error().Err(err).Msg("simulation init failed")
		http.Error(w, "simulation unavailable", http.StatusInternalServerError)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug().Err(err).Str("remote", r.RemoteAddr).Msg("upgrade failed")
		return
	}

	sess, ok := s.add(conn, sim, opts)
	if !ok {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseTryAgainLater, ErrSessionsFull.Error()),
			time.Now().Add(time.Second))
		conn.Close()
		return
	}
	defer s.remove(sess)

	sess.log.Info().Str("remote", r.RemoteAddr).Msg("session opened")
	if err := sess.run(s.ctx); err != nil {
		sess.log.Debug().Err(err).Msg("session read ended")
	}
	sess.log.Info().Uint64("dropped", sess.Dropped()).Msg("session closed")
}

func (s *Server) add(conn *websocket.Conn, sim *engine.Simulation, opts engine.Options) (*Session, bool) {
	s.mu.Lock()
	if len(s.sessions) >= s.cfg.MaxSessions {
		s.mu.Unlock()
		return nil, false
	}

	tick := opts.TickInterval
	if tick <= 0 {
		tick = parameter.FrameUpdateInterval
	}
	grid := sim.State().Grid
	hello := HelloPayload{
		GridSide:     SampledSide(grid.Side(), s.cfg.SnapshotStride),
		GridSize:     grid.Size,
		Stride:       s.cfg.SnapshotStride,
		TickMillis:   tick.Milliseconds(),
		Fragments:    opts.Fragments.Count,
		CameraPreset: opts.PresetName,
	}

	id := SessionID(s.nextID.Add(1))
	sess := newSession(id, conn, sim, tick, s.cfg, hello, s.log)
	s.sessions[id] = sess
	s.wg.Add(1)
	s.mu.Unlock()

	if s.onConnect != nil {
		s.onConnect(id)
	}
	return sess, true
}

func (s *Server) remove(sess *Session) {
	s.mu.Lock()
	delete(s.sessions, sess.ID)
	s.mu.Unlock()
	s.wg.Done()

	if s.onDisconnect != nil {
		s.onDisconnect(sess.ID)
	}
}

// Session retrieves a live session by ID
func (s *Server) Session(id SessionID) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// SessionCount returns current connected session count
func (s *Server) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Shutdown closes every session and waits for them to drain or ctx to end
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()

	s.mu.RLock()
	for _, sess := range s.sessions {
		sess.Close()
	}
	s.mu.RUnlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
