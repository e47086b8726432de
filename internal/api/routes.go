package api

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/playmatatu/tinko/internal/api/handlers"
	"github.com/playmatatu/tinko/internal/config"
	"github.com/playmatatu/tinko/internal/middleware"
	"github.com/playmatatu/tinko/internal/ws"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, ctrl ws.Controller, hub *ws.Hub, cfg *config.Config) {
	router.Use(middleware.CORSMiddleware(cfg))

	if !cfg.IsProduction() {
		router.Use(func(c *gin.Context) {
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
			c.Next()
		})
		log.Println("[DEV MODE] no-cache headers enabled for all routes")
	}

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handlers.HealthCheck)

		v1.GET("/board", handlers.GetBoard(ctrl))
		v1.GET("/state", handlers.GetState(ctrl))
		v1.POST("/balls", handlers.SpawnBall(ctrl))
		v1.POST("/reset", handlers.ResetBoard(ctrl))

		v1.GET("/ws", middleware.WebSocketCORSCheck(cfg), handlers.HandleBoardWebSocket(hub, ctrl))
	}
}
