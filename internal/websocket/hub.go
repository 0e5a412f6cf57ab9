package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/navjivan/navjivan-backend/internal/notify"
	"github.com/navjivan/navjivan-backend/pkg/logger"
)

// contentChangedMessage is pushed to admin consoles whenever a content
// table changes, so open sessions refresh without polling.
type contentChangedMessage struct {
	Type  string `json:"type"`
	Table string `json:"table"`
}

// Hub manages admin console WebSocket connections.
type Hub struct {
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client, 256),
		unregister: make(chan *Client, 256),
		broadcast:  make(chan []byte, 1024),
	}
}

// Run processes registrations and broadcasts. Call it once in its own
// goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			logger.Info("WebSocket client registered", map[string]interface{}{
				"user_id":       client.UserID,
				"total_clients": total,
			})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			logger.Info("WebSocket client unregistered", map[string]interface{}{
				"user_id":       client.UserID,
				"total_clients": total,
			})

		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					// Send channel blocked, drop the client asynchronously
					go h.Unregister(client)
					logger.Warn("Client send buffer full, disconnecting", map[string]interface{}{
						"user_id": client.UserID,
					})
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Listen forwards content change events to connected clients until the
// context is done.
func (h *Hub) Listen(ctx context.Context, notifier *notify.Notifier) {
	events, cancel := notifier.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			h.BroadcastContentChange(ev.Table)
		}
	}
}

// BroadcastContentChange pushes a change notice to every connected client.
// A full broadcast channel drops the notice: clients also refresh on a
// schedule, so a missed push is not fatal.
func (h *Hub) BroadcastContentChange(table string) {
	data, err := json.Marshal(contentChangedMessage{Type: "content_changed", Table: table})
	if err != nil {
		logger.Error("Failed to marshal change notice", err, nil)
		return
	}

	select {
	case h.broadcast <- data:
	default:
		logger.Warn("Broadcast channel full, change notice dropped", map[string]interface{}{
			"table": table,
		})
	}
}

// Register queues a client registration.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister queues a client removal.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
