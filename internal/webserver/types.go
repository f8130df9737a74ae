package webserver

import (
	"github.com/psidex/simgraph/internal/lib"
)

// SessionConfig is the first message a client sends. Zero values fall back to the
// server's configuration.
type SessionConfig struct {
	Thresholds   []float64    `json:"thresholds"`
	Seed         *uint64      `json:"seed"`
	WriteTimeout lib.Duration `json:"writeTimeout"`
}
