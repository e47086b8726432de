package game

// Collision event types.
const (
	EventWall      = "wall"
	EventPin       = "pin"
	EventPocket    = "pocket"
	EventOffscreen = "offscreen"
)

// CollisionEvent records a contact during a step, for sound and effects.
type CollisionEvent struct {
	Type     string  `json:"type"`
	BallID   int     `json:"ball_id"`
	TargetID int     `json:"target_id"` // pin or pocket ID, -1 otherwise
	Speed    float64 `json:"speed"`     // incident speed
}

// resolvePin separates a ball overlapping pin and bounces it about the
// contact normal. Coincident centres have no normal, so the ball is left
// untouched for that pair.
func resolvePin(b *Ball, pin *Pin) bool {
	offset := b.Position.Minus(pin.Position)
	distance := offset.Magnitude()
	reach := b.Radius + pin.Radius

	if distance >= reach {
		return false
	}
	if distance == 0 {
		return true
	}

	normal := offset.Normalize()
	b.Position = b.Position.Plus(normal.Times(reach - distance))
	b.Velocity = b.Velocity.Reflect(normal).Times(Elasticity)
	return true
}

// resolvePins runs resolvePin against every pin in board order. Each
// contact moves the ball before the next pin is tested.
func (s *Session) resolvePins(b *Ball) {
	for i := range s.board.Pins {
		pin := &s.board.Pins[i]
		speed := b.Velocity.Magnitude()
		if resolvePin(b, pin) {
			s.emit(CollisionEvent{Type: EventPin, BallID: b.ID, TargetID: pin.ID, Speed: speed})
		}
	}
}

// resolvePockets scores the ball against the first pocket it overlaps.
// It returns whether the ball scored; a scoring ball is removed at the end
// of the step.
func (s *Session) resolvePockets(b *Ball, now float64) bool {
	for i := range s.board.Pockets {
		pocket := &s.board.Pockets[i]
		if !pocket.Overlaps(b) {
			continue
		}

		s.state.Score++
		s.emit(CollisionEvent{Type: EventPocket, BallID: b.ID, TargetID: pocket.ID, Speed: b.Velocity.Magnitude()})

		if pocket.BigWin {
			s.state.enterBigWin(now, s.rng)
		}
		return true
	}
	return false
}

func (s *Session) emit(e CollisionEvent) {
	s.events = append(s.events, e)
}
