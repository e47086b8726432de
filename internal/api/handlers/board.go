package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/playmatatu/tinko/internal/host"
	"github.com/playmatatu/tinko/internal/ws"
)

// GetBoard returns the static pin and pocket geometry.
func GetBoard(ctrl ws.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, ctrl.Board())
	}
}

// GetState returns the latest frame.
func GetState(ctrl ws.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := ctrl.Snapshot(c.Request.Context())
		if err != nil {
			respondHostError(c, "snapshot", err)
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

// SpawnBall drops one ball at the top of the board.
func SpawnBall(ctrl ws.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		ball, err := ctrl.SpawnBall(c.Request.Context())
		if err != nil {
			respondHostError(c, "spawn", err)
			return
		}
		c.JSON(http.StatusCreated, ball)
	}
}

// ResetBoard starts a new game on a freshly generated board.
func ResetBoard(ctrl ws.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := ctrl.Reset(c.Request.Context())
		if err != nil {
			respondHostError(c, "reset", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"board": ctrl.Board(),
			"state": snap,
		})
	}
}

func respondHostError(c *gin.Context, op string, err error) {
	log.Printf("[HTTP] %s failed: %v", op, err)
	if errors.Is(err, host.ErrStopped) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "board is not running"})
		return
	}
	c.JSON(http.StatusGatewayTimeout, gin.H{"error": op + " timed out"})
}
