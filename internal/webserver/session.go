// Package webserver streams sweeps to browser clients over a websocket.
package webserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/psidex/simgraph/internal/config"
	"github.com/psidex/simgraph/internal/graphs/graphologyws"
	"github.com/psidex/simgraph/internal/lib"
	"github.com/psidex/simgraph/internal/sweep"
)

// Server runs one sweep per websocket session over a matrix loaded at startup.
type Server struct {
	cfg      *config.Config
	in       sweep.Input
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func NewServer(cfg *config.Config, in sweep.Input, logger *slog.Logger) *Server {
	return &Server{
		cfg: cfg,
		in:  in,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Session upgrades the request, reads a SessionConfig and streams the sweep. The
// client can send anything to stop the sweep after the current threshold.
func (s *Server) Session(w http.ResponseWriter, r *http.Request) {
	c, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("ws upgrade failed", "error", err)
		return
	}

	ws := lib.NewThreadSafeWebSocket(c)
	defer ws.Close()

	_, msg, err := ws.ReadMessage()
	if err != nil {
		s.logger.Warn("ws cfg read failed", "error", err)
		return
	}

	sc := &SessionConfig{}
	if err = json.Unmarshal(msg, sc); err != nil {
		s.logger.Warn("ws cfg unmarshal failed", "error", err)
		return
	}
	if sc.WriteTimeout.Duration > 0 {
		ws = ws.WithWriteTimeout(sc.WriteTimeout.Duration)
	}

	sw, err := s.newSweep(sc, ws)
	if err != nil {
		s.logger.Warn("sweep setup failed", "error", err)
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go func() {
		// Warning: As this is the thread-safe version, this will block any other reads.
		_, _, _ = ws.ReadMessage()
		// Returns with an error once the session closes the connection.
		cancel()
	}()

	res, err := sw.Run(ctx)
	if err != nil {
		s.logger.Warn("sweep stopped", "error", err)
		return
	}
	s.logger.Info("Session done", "written", len(res.Written), "skipped", len(res.Skipped))
}

func (s *Server) newSweep(sc *SessionConfig, ws lib.ThreadSafeWebSocket) (*sweep.Sweep, error) {
	thresholds := s.cfg.Thresholds
	if len(sc.Thresholds) > 0 {
		thresholds = sc.Thresholds
	}
	seed := s.cfg.Seed
	if sc.Seed != nil {
		seed = *sc.Seed
	}

	return sweep.NewSweep(
		sweep.Config{Thresholds: thresholds},
		s.in,
		s.cfg.Community.Louvain(seed),
		s.cfg.Layout.Spring(seed),
		graphologyws.NewGraphologyWs(ws, s.logger),
		s.logger,
	)
}
