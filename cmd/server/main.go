package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/playmatatu/tinko/internal/api"
	"github.com/playmatatu/tinko/internal/config"
	"github.com/playmatatu/tinko/internal/game"
	"github.com/playmatatu/tinko/internal/host"
	"github.com/playmatatu/tinko/internal/redis"
	"github.com/playmatatu/tinko/internal/ws"
)

func main() {
	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub := ws.NewHub()
	go hub.Run(ctx)

	// Big-win events go through redis when it is configured so every
	// server process relays them; otherwise straight to local viewers.
	var events host.EventSink = hub
	if cfg.RedisURL != "" {
		rdb, err := redis.Connect(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer rdb.Close()

		if err := ws.StartEventSubscriber(ctx, rdb, cfg.EventChannel, hub); err != nil {
			log.Fatalf("Failed to subscribe to events: %v", err)
		}
		events = ws.NewRedisEvents(rdb, cfg.EventChannel)
	} else {
		log.Printf("[REDIS] REDIS_URL not set, events stay local")
	}

	board := host.New(host.Options{
		Width:          float64(cfg.ScreenWidth),
		Height:         float64(cfg.ScreenHeight),
		TickHz:         cfg.TickHz,
		BroadcastEvery: cfg.BroadcastEvery,
		AutoSpawn:      cfg.AutoSpawn,
	}, game.NewRand(cfg.Seed), hub, events)
	go board.Run(ctx)

	// Set up Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	api.SetupRoutes(router, board, hub, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Starting tinko server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	<-board.Done()
}
