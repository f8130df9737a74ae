package lib

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ThreadSafeWebSocket wraps a websocket.Conn and allows many readers and writers to
// read/write the conn from goroutines without having to track safe access.
// This comes with the caveat that all writes block eachother, and similarly for reads.
// See https://pkg.go.dev/github.com/gorilla/websocket?utm_source=godoc#hdr-Concurrency.
type ThreadSafeWebSocket struct {
	c            *websocket.Conn
	writeMu      *sync.Mutex
	readMu       *sync.Mutex
	writeTimeout time.Duration
}

func NewThreadSafeWebSocket(c *websocket.Conn) ThreadSafeWebSocket {
	return ThreadSafeWebSocket{c, &sync.Mutex{}, &sync.Mutex{}, 0}
}

// WithWriteTimeout returns a copy that sets a write deadline of d before every write.
// The copy shares the connection and locks with s.
func (s ThreadSafeWebSocket) WithWriteTimeout(d time.Duration) ThreadSafeWebSocket {
	s.writeTimeout = d
	return s
}

func (s ThreadSafeWebSocket) ReadMessage() (int, []byte, error) {
	s.readMu.Lock()
	defer s.readMu.Unlock()
	return s.c.ReadMessage()
}

func (s ThreadSafeWebSocket) WriteMessage(messageType int, data []byte) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.deadline(); err != nil {
		return err
	}
	return s.c.WriteMessage(messageType, data)
}

// WriteJSON sends v as a single JSON text message.
func (s ThreadSafeWebSocket) WriteJSON(v interface{}) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.deadline(); err != nil {
		return err
	}
	return s.c.WriteJSON(v)
}

// Close sends a normal closure frame, then closes the underlying connection.
func (s ThreadSafeWebSocket) Close() error {
	s.writeMu.Lock()
	_ = s.c.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second),
	)
	s.writeMu.Unlock()
	return s.c.Close()
}

func (s ThreadSafeWebSocket) deadline() error {
	if s.writeTimeout <= 0 {
		return nil
	}
	return s.c.SetWriteDeadline(time.Now().Add(s.writeTimeout))
}
