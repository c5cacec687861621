package websocket

import (
	"encoding/json"
	"sync"

	"ai-studymate-be/internal/pkg/logger"
)

// Hub fans staged-file status updates out to every connected staging panel.
// The app is single-user, but one user can keep several tabs open.
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"clients": len(h.clients)})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
			h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"clients": len(h.clients)})
		}
	}
}

// Broadcast sends a staged-file update to ALL connected clients.
func (h *Hub) Broadcast(payload interface{}) {
	// 1. Serialize
	data, err := json.Marshal(map[string]interface{}{
		"type": "staged_file",
		"data": payload,
	})
	if err != nil {
		h.logger.Error("Hub", "Failed to marshal broadcast payload", map[string]interface{}{"error": err.Error()})
		return
	}

	// 2. Send to all local clients
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.Send <- data:
		default:
			// Slow consumer, drop it
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}
