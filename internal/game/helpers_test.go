package game

// fixedRand always returns the same draws: f for Float64 and n (mod the
// bound) for IntN.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }

func (r fixedRand) IntN(n int) int { return r.n % n }

// straightDropSession returns an 800x600 session whose spawned balls fall
// straight down (vx = 0) and whose big-win pocket is bigWin.
func straightDropSession(bigWin int) *Session {
	return NewSession(DefaultScreenWidth, DefaultScreenHeight, fixedRand{f: 0.5, n: bigWin})
}

func placeBall(s *Session, x, y, vx, vy float64) *Ball {
	b := &Ball{
		ID:       s.pool.nextID,
		Position: NewVec2(x, y),
		Velocity: NewVec2(vx, vy),
		Radius:   BallRadius,
	}
	s.pool.balls = append(s.pool.balls, b)
	s.pool.nextID++
	return b
}

func approxEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
