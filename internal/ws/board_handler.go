package ws

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/playmatatu/tinko/internal/game"
)

// Controller is the command surface a client may drive. *host.Host
// satisfies it.
type Controller interface {
	Board() *game.Board
	SpawnBall(ctx context.Context) (game.BallState, error)
	Reset(ctx context.Context) (game.Snapshot, error)
	Snapshot(ctx context.Context) (game.Snapshot, error)
}

// HandleWebSocket upgrades a viewer connection. The client gets the board
// geometry and the latest frame straight away, then every broadcast.
func HandleWebSocket(hub *Hub, ctrl Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		format, err := parseFormat(c.Query("format"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("[WS] Upgrade error: %v", err)
			return
		}

		client := &Client{
			id:     uuid.NewString(),
			conn:   conn,
			format: format,
			ctrl:   ctrl,
			hub:    hub,
			send:   make(chan frame, 256),
		}

		client.sendDirect(MsgBoard, ctrl.Board())
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		if snap, err := ctrl.Snapshot(ctx); err == nil {
			client.sendDirect(MsgState, snap)
		}
		cancel()

		select {
		case hub.register <- client:
		case <-hub.done:
			conn.Close()
			return
		}

		go client.writePump()
		go client.readPump()
	}
}

// readPump reads viewer commands until the connection drops.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(4096)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		kind, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[WS] unexpected close for client %s: %v", c.id, err)
			}
			break
		}

		msg, err := Decode(kind, message)
		if err != nil {
			log.Printf("[WS] bad message from client %s: %v", c.id, err)
			c.sendError("invalid message")
			continue
		}

		c.handleMessage(msg)
	}
}

func (c *Client) handleMessage(msg WSMessage) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	switch msg.Type {
	case MsgSpawnBall:
		if _, err := c.ctrl.SpawnBall(ctx); err != nil {
			log.Printf("[WS] spawn for client %s failed: %v", c.id, err)
			c.sendError("could not spawn ball")
		}
	case MsgReset:
		// The host broadcasts the new board and state itself.
		if _, err := c.ctrl.Reset(ctx); err != nil {
			log.Printf("[WS] reset for client %s failed: %v", c.id, err)
			c.sendError("could not reset board")
		}
	default:
		c.sendError("unknown message type: " + msg.Type)
	}
}
