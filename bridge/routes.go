package bridge

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

// SessionInfo is the read-only view served by the session endpoint
type SessionInfo struct {
	ID       uint32    `json:"id"`
	LastSeen time.Time `json:"lastSeen"`
	Dropped  uint64    `json:"dropped"`

	// Metrics is read from the session's lock-free registry
	Metrics map[string]string `json:"metrics"`
}

// Routes mounts the websocket endpoint and the inspection endpoints
func (s *Server) Routes() http.Handler {
	router := mux.NewRouter()
	router.Handle("/ws", s).Methods(http.MethodGet)
	router.HandleFunc("/healthz", s.health).Methods(http.MethodGet)
	router.HandleFunc("/sessions/{id:[0-9]+}", s.sessionInfo).Methods(http.MethodGet)
	return router
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.SessionCount(),
		"capacity": s.cfg.MaxSessions,
	})
}

func (s *Server) sessionInfo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		http.Error(w, "bad session id", http.StatusBadRequest)
		return
	}
	sess, ok := s.Session(SessionID(id))
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, SessionInfo{
		ID:       uint32(sess.ID),
		LastSeen: time.Unix(0, sess.LastSeen.Load()).UTC(),
		Dropped:  sess.Dropped(),
		Metrics:  sess.sim.Registry().Snapshot(),
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
