package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/playmatatu/tinko/internal/ws"
)

// HandleBoardWebSocket streams board frames to a viewer.
func HandleBoardWebSocket(hub *ws.Hub, ctrl ws.Controller) gin.HandlerFunc {
	return ws.HandleWebSocket(hub, ctrl)
}
