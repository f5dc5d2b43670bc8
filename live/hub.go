// Package live pushes full issue-collection snapshots to connected dashboard
// clients over WebSocket. Every delivery is the complete current collection,
// never a diff; a client that connects mid-stream immediately receives the
// latest snapshot.
package live

import (
	"encoding/json"
	"log"
	"sync"

	"streetlens-admin/models"
)

type snapshotMessage struct {
	Type   string         `json:"type"`
	Count  int            `json:"count"`
	Issues []models.Issue `json:"issues"`
}

// Hub manages WebSocket connections and fans snapshots out to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []models.Issue
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	latest     []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []models.Issue),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run owns the client set and the latest-snapshot cache. It must run in its
// own goroutine for the life of the process.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()
			if h.latest != nil {
				select {
				case client.send <- h.latest:
				default:
				}
			}
			log.Println("live: client connected")

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mutex.Unlock()
			log.Println("live: client disconnected")

		case issues := <-h.broadcast:
			data, err := json.Marshal(snapshotMessage{
				Type:   "snapshot",
				Count:  len(issues),
				Issues: issues,
			})
			if err != nil {
				log.Printf("live: failed to serialize snapshot: %v", err)
				continue
			}
			h.latest = data

			h.mutex.Lock()
			for client := range h.clients {
				select {
				case client.send <- data:
				default:
					// slow consumer, drop it
					delete(h.clients, client)
					close(client.send)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Broadcast hands a fresh full-collection snapshot to the hub. Safe to use
// as the store subscription callback.
func (h *Hub) Broadcast(issues []models.Issue) {
	h.broadcast <- issues
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
