package game

import "math"

// Ball is a single falling ball's physics state.
type Ball struct {
	ID       int     `json:"id"`
	Position Vec2    `json:"position"`
	Velocity Vec2    `json:"velocity"`
	Radius   float64 `json:"radius"`
}

// BallState is the render-facing copy of a ball placed in snapshots.
type BallState struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
}

func (b *Ball) state() BallState {
	return BallState{
		ID: b.ID,
		X:  b.Position.X,
		Y:  b.Position.Y,
		VX: b.Velocity.X,
		VY: b.Velocity.Y,
	}
}

// integrate applies one frame of gravity, updating velocity before position.
func (b *Ball) integrate() {
	b.Velocity.Y += Gravity
	b.Position = b.Position.Plus(b.Velocity)
}

// reflectOffWalls clamps the ball inside [r, width-r] and bounces vx with
// energy loss. It reports whether a wall was hit.
func (b *Ball) reflectOffWalls(width float64) bool {
	switch {
	case b.Position.X-b.Radius < 0:
		b.Position.X = b.Radius
	case b.Position.X+b.Radius > width:
		b.Position.X = width - b.Radius
	default:
		return false
	}
	b.Velocity.X *= -Elasticity
	return true
}

// isOffscreen reports whether the ball's top edge is below the playfield.
func (b *Ball) isOffscreen(height float64) bool {
	return b.Position.Y-b.Radius > height
}

// BallPool is the set of balls in play. Order is insertion order; nothing
// depends on it beyond pin-resolution reproducibility.
type BallPool struct {
	balls  []*Ball
	nextID int
}

// Spawn drops a new ball at the top centre with a random sideways velocity.
func (p *BallPool) Spawn(width float64, rng Rand) *Ball {
	b := &Ball{
		ID:       p.nextID,
		Position: NewVec2(math.Floor(width/2), 0),
		Velocity: NewVec2(uniform(rng, -SpawnSpeedX, SpawnSpeedX), 0),
		Radius:   BallRadius,
	}
	p.nextID++
	p.balls = append(p.balls, b)
	return b
}

func (p *BallPool) Len() int {
	return len(p.balls)
}

// Balls returns the live balls. Callers must not retain the slice across
// steps.
func (p *BallPool) Balls() []*Ball {
	return p.balls
}

// removeMarked drops every ball whose ID is in marked, preserving order.
func (p *BallPool) removeMarked(marked map[int]struct{}) {
	if len(marked) == 0 {
		return
	}
	kept := p.balls[:0]
	for _, b := range p.balls {
		if _, gone := marked[b.ID]; gone {
			continue
		}
		kept = append(kept, b)
	}
	for i := len(kept); i < len(p.balls); i++ {
		p.balls[i] = nil
	}
	p.balls = kept
}

func (p *BallPool) reset() {
	p.balls = nil
	p.nextID = 0
}
