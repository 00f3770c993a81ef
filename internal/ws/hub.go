package ws

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Client is one websocket connection subscribed to a user's incoming messages.
type Client struct {
	UserID string
	Send   chan []byte
	Conn   *websocket.Conn
}

// Delivery is a payload addressed to every connection of one user.
type Delivery struct {
	UserID string
	Data   []byte
}

// Hub fans deliveries out to the connections registered for each user.
type Hub struct {
	clients    map[string]map[*Client]bool // userID -> clients
	Register   chan *Client
	Unregister chan *Client
	Broadcast  chan Delivery
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Broadcast:  make(chan Delivery, 64),
	}
}

// Deliver queues data for every connection of userID.
func (h *Hub) Deliver(userID string, data []byte) {
	h.Broadcast <- Delivery{UserID: userID, Data: data}
}

// Count returns how many connections userID currently has.
func (h *Hub) Count(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			if h.clients[client.UserID] == nil {
				h.clients[client.UserID] = make(map[*Client]bool)
			}
			h.clients[client.UserID][client] = true
			h.mu.Unlock()
			log.Printf("[WS] Registered client for user %s", client.UserID)
		case client := <-h.Unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()
		case d := <-h.Broadcast:
			h.mu.Lock()
			for client := range h.clients[d.UserID] {
				select {
				case client.Send <- d.Data:
				default:
					// Slow consumer: drop the connection rather than block the hub.
					log.Printf("[WS] Dropping slow client for user %s", client.UserID)
					h.remove(client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// remove must be called with mu held.
func (h *Hub) remove(client *Client) {
	clients, ok := h.clients[client.UserID]
	if !ok {
		return
	}
	if _, ok := clients[client]; ok {
		delete(clients, client)
		close(client.Send)
	}
	if len(clients) == 0 {
		delete(h.clients, client.UserID)
	}
}
