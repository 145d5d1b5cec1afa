package feed

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event is a committed change pushed to connected staff clients. Delivery is
// eventual: subscribers see writes from any client within network latency,
// not instantaneously.
type Event struct {
	Entity string    `json:"entity"` // booking | account | transaction
	Action string    `json:"action"` // created | updated | voided
	ID     int64     `json:"id"`
	At     time.Time `json:"at"`
}

// Hub fans committed changes out to every connection of a tenant.
type Hub struct {
	connections map[int64]map[*websocket.Conn]bool
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]map[*websocket.Conn]bool),
	}
}

func (h *Hub) Register(tenantID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.connections[tenantID] == nil {
		h.connections[tenantID] = make(map[*websocket.Conn]bool)
	}
	h.connections[tenantID][conn] = true
}

func (h *Hub) Unregister(tenantID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conns, exists := h.connections[tenantID]; exists {
		if conns[conn] {
			_ = conn.Close()
			delete(conns, conn)
		}
		if len(conns) == 0 {
			delete(h.connections, tenantID)
		}
	}
}

// Publish sends the event to every subscriber of the tenant. Connections
// that fail to take the write are dropped.
func (h *Hub) Publish(tenantID int64, e Event) {
	h.mutex.RLock()
	conns := make([]*websocket.Conn, 0, len(h.connections[tenantID]))
	for conn := range h.connections[tenantID] {
		conns = append(conns, conn)
	}
	h.mutex.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(e); err != nil {
			h.Unregister(tenantID, conn)
		}
	}
}

func (h *Hub) SubscriberCount(tenantID int64) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections[tenantID])
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for tenantID, conns := range h.connections {
		for conn := range conns {
			_ = conn.Close()
		}
		delete(h.connections, tenantID)
	}
}
