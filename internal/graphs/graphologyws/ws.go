package graphologyws

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/psidex/simgraph/internal/graphs"
	"github.com/psidex/simgraph/internal/graphs/graphology"
	"github.com/psidex/simgraph/internal/lib"
	"github.com/psidex/simgraph/internal/simgraph"
)

// All of the websocket messages sent by GraphologyWs will be text.
var t = websocket.TextMessage

type graphMessage struct {
	Type string                      `json:"type"` // always "graph"
	Data *graphology.SerializedGraph `json:"data"`
}

// GraphologyWs defines a SweepNotifier that serialises each document for a graphology
// frontend and streams it over a websocket, along with sweep progress.
type GraphologyWs struct {
	mu      *sync.Mutex
	ws      lib.ThreadSafeWebSocket
	logger  *slog.Logger
	sent    int
	skipped int
}

var _ graphs.SweepNotifier = (*GraphologyWs)(nil)

func NewGraphologyWs(ws lib.ThreadSafeWebSocket, logger *slog.Logger) *GraphologyWs {
	return &GraphologyWs{
		mu:     &sync.Mutex{},
		ws:     ws,
		logger: logger,
	}
}

func (g *GraphologyWs) Render(_ context.Context, doc *simgraph.Document) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	msg := graphMessage{Type: "graph", Data: graphology.Serialize(doc)}
	if err := g.ws.WriteJSON(msg); err != nil {
		return "", fmt.Errorf("send %s: %w", doc.Name(), err)
	}
	g.sent++

	return "ws:" + doc.Name(), nil
}

func (g *GraphologyWs) NotifyStart(thresholds []float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sent, g.skipped = 0, 0
	g.write(startSweepNotification(thresholds))
}

func (g *GraphologyWs) NotifySkip(threshold float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.skipped++
	g.write(skipNotification(threshold))
}

func (g *GraphologyWs) NotifyEnd() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.write(endSweepNotification(g.sent, g.skipped))
}

// write is used for notifications, which are best-effort.
func (g *GraphologyWs) write(msg []byte) {
	if err := g.ws.WriteMessage(t, msg); err != nil {
		g.logger.Warn("ws.WriteMessage failed", "error", err)
	}
}
