package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"assessment-portal/internal/models"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// SessionEvent is the message pushed to every connected admin when a ledger
// row is created or closed.
type SessionEvent struct {
	EventType string          `json:"event_type" example:"session_opened"`
	Payload   *models.Session `json:"payload"`
}

// Hub fans ledger events out to all connected admin dashboards. Clients are
// grouped by admin id so one admin may keep several tabs open.
type Hub struct {
	clients    map[int64]map[*Client]bool
	mu         sync.RWMutex
	Register   chan *Client
	Unregister chan *Client
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[int64]map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run processes registrations until ctx is cancelled, then disconnects every
// remaining client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.Register:
			h.registerClient(client)
		case client := <-h.Unregister:
			h.unregisterClient(client)
		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			return
		}
	}
}

// Attach hands client to the hub. It reports false once the hub has stopped.
func (h *Hub) Attach(client *Client) bool {
	select {
	case h.Register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) detach(client *Client) {
	select {
	case h.Unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client.AdminID]; !ok {
		h.clients[client.AdminID] = make(map[*Client]bool)
	}
	h.clients[client.AdminID][client] = true
	log.Debug().Int64("admin_id", client.AdminID).Msg("live feed client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if adminClients, ok := h.clients[client.AdminID]; ok {
		if _, ok := adminClients[client]; ok {
			delete(adminClients, client)
			close(client.send)
			if len(adminClients) == 0 {
				delete(h.clients, client.AdminID)
			}
			log.Debug().Int64("admin_id", client.AdminID).Msg("live feed client unregistered")
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for adminID, adminClients := range h.clients {
		for client := range adminClients {
			close(client.send)
		}
		delete(h.clients, adminID)
	}
}

// ClientCount returns the number of connected clients across all admins.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, adminClients := range h.clients {
		n += len(adminClients)
	}
	return n
}

func (h *Hub) PublishSessionEvent(eventType string, session *models.Session) {
	data, err := json.Marshal(SessionEvent{EventType: eventType, Payload: session})
	if err != nil {
		log.Error().Err(err).Str("event", eventType).Msg("failed to encode session event")
		return
	}
	h.broadcast(data)
}

func (h *Hub) broadcast(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for adminID, adminClients := range h.clients {
		for client := range adminClients {
			select {
			case client.send <- data:
			default:
				log.Warn().Int64("admin_id", adminID).Msg("live feed send buffer is full, dropping message")
			}
		}
	}
}
