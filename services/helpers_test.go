package services

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

func newTestLogger() *zap.Logger {
	return zap.NewNop()
}

type recordedEvent struct {
	UserID  uint
	Kind    string
	Payload any
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (f *fakeNotifier) Broadcast(userID uint, kind string, payload any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, recordedEvent{UserID: userID, Kind: kind, Payload: payload})
}

type fakeConn struct {
	mu       sync.Mutex
	messages [][]byte
	closed   bool
	failWith error
}

func (c *fakeConn) WriteMessage(_ int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failWith != nil {
		return c.failWith
	}
	c.messages = append(c.messages, data)
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

var errBoom = errors.New("boom")

// Wednesday 2024-01-10 14:00 UTC; its week starts Monday 2024-01-08.
var testNow = time.Date(2024, time.January, 10, 14, 0, 0, 0, time.UTC)
