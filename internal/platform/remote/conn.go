package remote

import (
	"encoding/json"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Conn manages a single WebSocket controller session.
type Conn struct {
	ID     string
	ws     *websocket.Conn
	mu     sync.Mutex // protects ws writes and closed
	closed bool
}

// NewConn wraps an upgraded WebSocket with a fresh ID.
func NewConn(ws *websocket.Conn) *Conn {
	return &Conn{
		ID: uuid.New().String(),
		ws: ws,
	}
}

// Send serializes msg to JSON and writes it to the WebSocket.
func (c *Conn) Send(msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	return c.ws.WriteMessage(websocket.TextMessage, data)
}

// Close marks the connection closed. Safe to call more than once.
func (c *Conn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.ws.Close()
}

// ReadLoop decodes incoming frames and forwards events to sink until the
// connection drops. Malformed frames are logged and skipped.
func (c *Conn) ReadLoop(sink func(any), logger *log.Logger) {
	defer c.Close()

	for {
		kind, raw, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("remote read error", "conn", c.ID, "error", err)
			}
			return
		}

		var ev any
		if kind == websocket.BinaryMessage {
			ev, err = DecodeBinary(c.ID, raw)
		} else {
			ev, err = Decode(c.ID, raw)
		}
		if err != nil {
			logger.Debug("skipping remote message", "conn", c.ID, "error", err)
			continue
		}
		sink(ev)
	}
}

// ConnManager tracks active connections.
type ConnManager struct {
	mu    sync.RWMutex
	conns map[string]*Conn
}

// NewConnManager creates an empty connection manager.
func NewConnManager() *ConnManager {
	return &ConnManager{conns: make(map[string]*Conn)}
}

// TryAdd registers a connection unless limit connections are already
// registered. The check and the insert happen under one lock.
func (m *ConnManager) TryAdd(c *Conn, limit int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.conns) >= limit {
		return false
	}
	m.conns[c.ID] = c
	return true
}

// Remove unregisters a connection.
func (m *ConnManager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.conns, id)
}

// Count returns the number of active connections.
func (m *ConnManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.conns)
}

// CloseAll closes every registered connection.
func (m *ConnManager) CloseAll() {
	m.mu.RLock()
	list := make([]*Conn, 0, len(m.conns))
	for _, c := range m.conns {
		list = append(list, c)
	}
	m.mu.RUnlock()

	for _, c := range list {
		c.Close()
	}
}
