// websocket/hub.go
package websocket

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client is one connected dashboard.
type Client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans activity events out to the dashboards of each HR tenant.
type Hub struct {
	mu      sync.Mutex
	clients map[string]map[*Client]bool // keyed by HR email
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]bool),
	}
}

// ServeWS upgrades the connection and registers it under the tenant.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, tenant string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	client := &Client{conn: conn, send: make(chan []byte, 16)}

	h.mu.Lock()
	if h.clients[tenant] == nil {
		h.clients[tenant] = make(map[*Client]bool)
	}
	h.clients[tenant][client] = true
	h.mu.Unlock()

	log.Printf("websocket client connected for tenant %s", tenant)

	go client.writePump()
	go h.readPump(client, tenant)
}

func (h *Hub) readPump(client *Client, tenant string) {
	defer func() {
		h.remove(tenant, client)
		client.conn.Close()
	}()
	client.conn.SetReadLimit(512)
	for {
		// Inbound messages are ignored; the read loop only detects closes.
		if _, _, err := client.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *Hub) remove(tenant string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.clients[tenant]; ok {
		if clients[client] {
			delete(clients, client)
			close(client.send)
		}
		if len(clients) == 0 {
			delete(h.clients, tenant)
		}
	}
}

// broadcast sends data to every client of the tenant, dropping clients
// whose send buffer is full.
func (h *Hub) broadcast(tenant string, data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.clients[tenant]; ok {
		for client := range clients {
			select {
			case client.send <- data:
			default:
				close(client.send)
				delete(clients, client)
			}
		}
	}
}
