package game

import "errors"

// ErrNotInitialized is the panic value for spawning or stepping a session
// that has no board.
var ErrNotInitialized = errors.New("game: session used before Initialize")

// Snapshot is an immutable copy of a session after a step. Board geometry is
// static and is fetched once through Session.Board.
type Snapshot struct {
	Tick        int              `json:"tick"`
	DT          float64          `json:"dt"`
	Score       int              `json:"score"`
	Mode        Mode             `json:"mode"`
	Message     string           `json:"message,omitempty"`
	RainbowHue  float64          `json:"rainbow_hue"`
	BigWinStart float64          `json:"big_win_start,omitempty"`
	Balls       []BallState      `json:"balls"`
	Events      []CollisionEvent `json:"events,omitempty"`

	// Set on the step that entered or left big-win mode.
	BigWinStarted bool `json:"big_win_started,omitempty"`
	BigWinEnded   bool `json:"big_win_ended,omitempty"`
}

// BigWin reports whether the snapshot was taken during a big-win episode.
func (s Snapshot) BigWin() bool {
	return s.Mode == ModeBigWin
}

// Session is one pachinko board in play: geometry, balls and score. It is
// not safe for concurrent use; one goroutine owns it and calls Step once per
// frame.
type Session struct {
	board *Board
	pool  BallPool
	state GameState
	rng   Rand
	tick  int

	lastDT float64
	events []CollisionEvent
}

// NewSession builds and initializes a session on a width x height playfield.
func NewSession(width, height float64, rng Rand) *Session {
	s := &Session{rng: rng}
	s.Initialize(width, height)
	return s
}

// Initialize rebuilds the board, drops every ball and resets score and mode.
// It may be called any number of times to start a fresh game.
func (s *Session) Initialize(width, height float64) Snapshot {
	if s.rng == nil {
		s.rng = NewRand(0)
	}
	s.board = NewBoard(width, height, s.rng)
	s.pool.reset()
	s.state = newGameState()
	s.tick = 0
	s.lastDT = 0
	s.events = nil
	return s.snapshot(false, false)
}

// Board returns the static geometry built by the last Initialize.
func (s *Session) Board() *Board {
	return s.board
}

// SpawnBall drops one ball at the top centre.
func (s *Session) SpawnBall() BallState {
	s.mustBeInitialized()
	return s.pool.Spawn(s.board.Width, s.rng).state()
}

// Step advances the board by one frame. dt is the host's frame delta in
// milliseconds and now its absolute clock; motion is per frame and only the
// big-win timer and hue read the clock. now must not go backwards.
func (s *Session) Step(dt, now float64) Snapshot {
	s.mustBeInitialized()
	s.tick++
	s.lastDT = dt
	s.events = s.events[:0]
	wasBigWin := s.state.Mode == ModeBigWin
	removed := make(map[int]struct{})

	for _, b := range s.pool.Balls() {
		b.integrate()

		if b.reflectOffWalls(s.board.Width) {
			s.emit(CollisionEvent{Type: EventWall, BallID: b.ID, TargetID: -1, Speed: b.Velocity.Magnitude()})
		}

		s.resolvePins(b)

		if s.resolvePockets(b, now) {
			removed[b.ID] = struct{}{}
			continue
		}

		if b.isOffscreen(s.board.Height) {
			s.emit(CollisionEvent{Type: EventOffscreen, BallID: b.ID, TargetID: -1, Speed: b.Velocity.Magnitude()})
			removed[b.ID] = struct{}{}
		}
	}
	s.pool.removeMarked(removed)

	started := !wasBigWin && s.state.Mode == ModeBigWin
	ended := s.state.advance(now)
	return s.snapshot(started, ended)
}

// Snapshot returns the current state without stepping.
func (s *Session) Snapshot() Snapshot {
	s.mustBeInitialized()
	return s.snapshot(false, false)
}

func (s *Session) snapshot(started, ended bool) Snapshot {
	balls := make([]BallState, 0, s.pool.Len())
	for _, b := range s.pool.Balls() {
		balls = append(balls, b.state())
	}

	var events []CollisionEvent
	if len(s.events) > 0 {
		events = append(events, s.events...)
	}

	snap := Snapshot{
		Tick:          s.tick,
		DT:            s.lastDT,
		Score:         s.state.Score,
		Mode:          s.state.Mode,
		Balls:         balls,
		Events:        events,
		BigWinStarted: started,
		BigWinEnded:   ended,
	}
	if s.state.Mode == ModeBigWin {
		snap.Message = s.state.Message
		snap.RainbowHue = s.state.RainbowHue
		snap.BigWinStart = s.state.BigWinStart
	}
	return snap
}

// State returns a copy of the score and mode bookkeeping.
func (s *Session) State() GameState {
	return s.state
}

func (s *Session) mustBeInitialized() {
	if s == nil || s.board == nil {
		panic(ErrNotInitialized)
	}
}
