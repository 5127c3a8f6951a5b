package websocket

import (
	"encoding/json"
	"log"
	"sync"
)

// Event is pushed to an owner's connected clients after a mutation so the
// single-page client can refresh the affected section.
type Event struct {
	Type    string `json:"type"`
	Section string `json:"section"`
	Action  string `json:"action"`
}

// Hub maintains the set of active clients grouped by owner and broadcasts
// change events to them.
type Hub struct {
	// Registered clients per owner id
	clients map[uint]map[*Client]bool

	// Register requests
	register chan *Client

	// Unregister requests
	unregister chan *Client

	mu sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uint]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.ownerID] == nil {
				h.clients[client.ownerID] = make(map[*Client]bool)
			}
			h.clients[client.ownerID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if owned, ok := h.clients[client.ownerID]; ok {
				if _, ok := owned[client]; ok {
					delete(owned, client)
					close(client.send)
					if len(owned) == 0 {
						delete(h.clients, client.ownerID)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

// NotifyOwner pushes a change event to every client of one owner. Clients of
// other owners never see it.
func (h *Hub) NotifyOwner(ownerID uint, section, action string) {
	payload, err := json.Marshal(Event{Type: "change", Section: section, Action: action})
	if err != nil {
		log.Printf("WS marshal error: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients[ownerID] {
		select {
		case client.send <- payload:
		default:
			// Slow consumer; drop the event rather than block the request
		}
	}
}
