package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/playmatatu/tinko/internal/config"
	"github.com/playmatatu/tinko/internal/game"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	g := NewGame(cfg.ScreenWidth, cfg.ScreenHeight, game.NewRand(cfg.Seed))

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Tinko")
	ebiten.SetTPS(60)

	log.Printf("[TINKO] space drops a ball, r resets the board")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
}
