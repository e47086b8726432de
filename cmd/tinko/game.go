package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/playmatatu/tinko/internal/game"
	"github.com/playmatatu/tinko/internal/render"
)

const frameMs = 1000.0 / 60

// Game drives one session from ebiten's update loop. ebiten calls Update
// at a fixed 60 TPS, so each Update is one simulation frame.
type Game struct {
	session *game.Session
	spawner game.Spawner
	width   int
	height  int
	start   time.Time
	snap    game.Snapshot
}

func NewGame(width, height int, rng game.Rand) *Game {
	s := game.NewSession(float64(width), float64(height), rng)
	return &Game{
		session: s,
		width:   width,
		height:  height,
		start:   time.Now(),
		snap:    s.Snapshot(),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || g.spawner.Tick(g.snap.Mode) {
		g.session.SpawnBall()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.snap = g.session.Initialize(float64(g.width), float64(g.height))
		g.spawner.Reset()
		g.start = time.Now()
		return nil
	}

	now := float64(time.Since(g.start).Milliseconds())
	g.snap = g.session.Step(frameMs, now)

	if g.snap.BigWinStarted {
		log.Printf("[TINKO] big win! %s (score=%d)", g.snap.Message, g.snap.Score)
	}
	if g.snap.BigWinEnded {
		log.Printf("[TINKO] big win over (score=%d)", g.snap.Score)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background(g.snap))

	board := g.session.Board()
	for _, pin := range board.Pins {
		vector.DrawFilledCircle(screen, float32(pin.Position.X), float32(pin.Position.Y), float32(pin.Radius), render.Blue, true)
	}
	for _, p := range board.Pockets {
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), render.PocketColor(p), false)
	}
	for _, b := range g.snap.Balls {
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), game.BallRadius, render.White, true)
	}

	text.Draw(screen, fmt.Sprintf("Score: %d", g.snap.Score), basicfont.Face7x13, 10, 20, render.White)

	if g.snap.BigWin() {
		w := len(g.snap.Message) * 7
		text.Draw(screen, g.snap.Message, basicfont.Face7x13, (g.width-w)/2, g.height/2, render.MessageColor())
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
