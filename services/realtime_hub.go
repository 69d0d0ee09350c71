package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Event kinds pushed to listeners.
const (
	EventUserUpdated  = "user.updated"
	EventWeeklyReport = "report.weekly"
)

// ChangeNotifier fans document changes out to whoever listens for a user.
type ChangeNotifier interface {
	Broadcast(userID uint, kind string, payload any)
}

// ListenerConn is the part of *websocket.Conn the hub writes to.
type ListenerConn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

type WSClient struct {
	UserID uint
	Conn   ListenerConn

	writeMu sync.Mutex // a websocket conn allows one writer at a time
}

// Write serializes writes to the underlying connection.
func (c *WSClient) Write(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
	logger  *zap.Logger
}

func NewRealtimeHub(logger *zap.Logger) *RealtimeHub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{}), logger: logger}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
	h.logger.Debug("listener registered", zap.Uint("user_id", c.UserID))
}

// Unregister removes the client and closes its connection. Safe to call twice.
func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	set := h.clients[c.UserID]
	_, known := set[c]
	if known {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	if known {
		_ = c.Conn.Close()
		h.logger.Debug("listener unregistered", zap.Uint("user_id", c.UserID))
	}
}

// Listeners reports how many connections are open for userID.
func (h *RealtimeHub) Listeners(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Broadcast sends {"kind": kind, "data": payload} to every connection of userID.
// Connections that fail to accept the message are dropped.
func (h *RealtimeHub) Broadcast(userID uint, kind string, payload any) {
	msg, err := json.Marshal(map[string]any{"kind": kind, "data": payload})
	if err != nil {
		h.logger.Error("encode realtime event", zap.String("kind", kind), zap.Error(err))
		return
	}

	h.mu.RLock()
	targets := make([]*WSClient, 0, len(h.clients[userID]))
	for c := range h.clients[userID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.Write(websocket.TextMessage, msg); err != nil {
			h.logger.Warn("drop realtime listener", zap.Uint("user_id", userID), zap.Error(err))
			h.Unregister(c)
		}
	}
}
