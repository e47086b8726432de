package ws

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/playmatatu/tinko/internal/game"
	"github.com/playmatatu/tinko/internal/host"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true // origins are checked by middleware.WebSocketCORSCheck
	},
}

// Client represents a connected WebSocket client
type Client struct {
	id     string
	conn   *websocket.Conn
	format Format
	ctrl   Controller
	hub    *Hub
	send   chan frame
}

// Hub fans frames out to every subscriber of the board.
type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run services registrations until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for id, c := range h.clients {
				c.conn.Close()
				delete(h.clients, id)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.id] = client
			n := len(h.clients)
			h.mu.Unlock()
			log.Printf("[WS] client %s connected (%s, %d watching)", client.id, client.format, n)

		case client := <-h.unregister:
			h.mu.Lock()
			if cur, ok := h.clients[client.id]; ok && cur == client {
				delete(h.clients, client.id)
				close(client.send)
				log.Printf("[WS] client %s disconnected (%d watching)", client.id, len(h.clients))
			}
			h.mu.Unlock()
		}
	}
}

// ClientCount returns the number of connected subscribers.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// BroadcastState sends a frame snapshot to every client.
func (h *Hub) BroadcastState(snap game.Snapshot) {
	h.broadcast(MsgState, snap)
}

// BroadcastBoard sends new board geometry to every client.
func (h *Hub) BroadcastBoard(board *game.Board) {
	h.broadcast(MsgBoard, board)
}

// Publish relays a host event to every client. It lets the hub stand in
// for the redis event bus when none is configured.
func (h *Hub) Publish(_ context.Context, ev host.Event) error {
	h.broadcast(ev.Type, ev)
	return nil
}

func (h *Hub) broadcast(msgType string, payload any) {
	enc := newEncodings(msgType, payload)

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients {
		fr, err := enc.get(client.format)
		if err != nil {
			log.Printf("[WS] Error encoding %s for client %s: %v", msgType, client.id, err)
			continue
		}
		select {
		case client.send <- fr:
		default:
			// A slow client just misses frames; the next state supersedes this one.
			log.Printf("[WS] send buffer full for client %s, dropping %s", client.id, msgType)
		}
	}
}

// writePump writes messages to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case fr, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				// Hub closed the channel; best-effort close frame.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(fr.kind, fr.data); err != nil {
				log.Printf("[WS] write error for client %s: %v", c.id, err)
				return
			}

		case <-c.hub.done:
			return

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("[WS] ping error for client %s: %v", c.id, err)
				return
			}
		}
	}
}

// sendDirect queues a message for this client only.
func (c *Client) sendDirect(msgType string, payload any) {
	fr, err := Encode(c.format, msgType, payload)
	if err != nil {
		log.Printf("[WS] Error encoding %s for client %s: %v", msgType, c.id, err)
		return
	}
	select {
	case c.send <- fr:
	default:
		log.Printf("[WS] send buffer full for client %s, dropping %s", c.id, msgType)
	}
}

// sendError sends an error message to the client
func (c *Client) sendError(message string) {
	c.sendDirect(MsgError, map[string]string{"message": message})
}
