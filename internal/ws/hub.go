package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"SupportSquad/entity"
	"SupportSquad/internal/lib/sl"
)

// Event represents a WebSocket event sent to connected observers.
type Event struct {
	Type string      `json:"type"` // "message_processed"
	Data interface{} `json:"data"`
}

// Hub maintains the set of active WebSocket clients and broadcasts events.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan *Event
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	log        *slog.Logger
}

// NewHub creates a new Hub instance.
func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan *Event, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log.With(sl.Module("ws.hub")),
	}
}

// Run starts the hub's event loop. Should be called in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.log.With(
				slog.String("client_id", client.id),
			).Debug("ws client connected")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.log.With(
				slog.String("client_id", client.id),
			).Debug("ws client disconnected")

		case event := <-h.broadcast:
			data, err := json.Marshal(event)
			if err != nil {
				h.log.With(
					sl.Err(err),
				).Error("marshal ws event")
				continue
			}

			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- data:
				default:
					// Slow consumer; drop the event rather than block the hub.
				}
			}
			h.mu.RUnlock()
		}
	}
}

// BroadcastMessageProcessed notifies observers that a dispatch completed.
func (h *Hub) BroadcastMessageProcessed(event entity.MessageEvent) {
	select {
	case h.broadcast <- &Event{Type: "message_processed", Data: event}:
	default:
		h.log.Debug("ws broadcast buffer full, event dropped")
	}
}
