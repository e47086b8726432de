package host

import (
	"context"
	"errors"
	"log"
	"sync/atomic"
	"time"

	"github.com/playmatatu/tinko/internal/game"
)

// ErrStopped is returned by commands sent after the loop has exited.
var ErrStopped = errors.New("host stopped")

// Broadcaster receives every published frame.
type Broadcaster interface {
	BroadcastState(snap game.Snapshot)
	BroadcastBoard(board *game.Board)
}

// EventSink is told about big-win transitions.
type EventSink interface {
	Publish(ctx context.Context, ev Event) error
}

// Event is a board-level happening worth announcing outside the frame
// stream.
type Event struct {
	Type    string    `json:"type"` // "big_win_started" or "big_win_ended"
	Score   int       `json:"score"`
	Message string    `json:"message,omitempty"`
	Tick    int       `json:"tick"`
	At      time.Time `json:"at"`
}

const (
	EventBigWinStarted = "big_win_started"
	EventBigWinEnded   = "big_win_ended"
)

type Options struct {
	Width          float64
	Height         float64
	TickHz         int
	BroadcastEvery int
	AutoSpawn      bool
}

// Host owns one session and drives it from a ticker. All access to the
// session goes through the loop goroutine.
type Host struct {
	opts        Options
	session     *game.Session
	spawner     game.Spawner
	broadcaster Broadcaster
	events      EventSink
	board       atomic.Pointer[game.Board]

	inbox chan any
	quit  chan struct{}
	done  chan struct{}

	start  time.Time
	lastMs float64
	last   game.Snapshot
}

type spawnCmd struct{ reply chan game.BallState }
type resetCmd struct{ reply chan game.Snapshot }
type snapshotCmd struct{ reply chan game.Snapshot }

// New builds a host around a fresh session. broadcaster and events may be
// nil.
func New(opts Options, rng game.Rand, broadcaster Broadcaster, events EventSink) *Host {
	if opts.TickHz <= 0 {
		opts.TickHz = 60
	}
	if opts.BroadcastEvery <= 0 {
		opts.BroadcastEvery = 1
	}
	session := game.NewSession(opts.Width, opts.Height, rng)
	h := &Host{
		opts:        opts,
		session:     session,
		broadcaster: broadcaster,
		events:      events,
		inbox:       make(chan any, 64),
		quit:        make(chan struct{}),
		done:        make(chan struct{}),
		last:        session.Snapshot(),
	}
	h.board.Store(session.Board())
	return h
}

// Board returns the current static geometry. Boards are never mutated, so
// the pointer stays valid after a reset; it just stops being current.
func (h *Host) Board() *game.Board {
	return h.board.Load()
}

// Run steps the session until ctx is cancelled or Stop is called.
func (h *Host) Run(ctx context.Context) {
	defer close(h.done)

	ticker := time.NewTicker(time.Second / time.Duration(h.opts.TickHz))
	defer ticker.Stop()

	h.start = time.Now()
	log.Printf("[HOST] board running at %d Hz (%gx%g)", h.opts.TickHz, h.opts.Width, h.opts.Height)

	for {
		select {
		case <-ctx.Done():
			return
		case <-h.quit:
			return
		case cmd := <-h.inbox:
			h.handleCommand(cmd)
		case t := <-ticker.C:
			h.tick(float64(t.Sub(h.start).Milliseconds()))
		}
	}
}

func (h *Host) Stop() {
	select {
	case <-h.quit:
	default:
		close(h.quit)
	}
}

// Done is closed once Run has returned.
func (h *Host) Done() <-chan struct{} {
	return h.done
}

func (h *Host) tick(nowMs float64) {
	if h.opts.AutoSpawn && h.spawner.Tick(h.last.Mode) {
		h.session.SpawnBall()
	}

	snap := h.session.Step(nowMs-h.lastMs, nowMs)
	h.lastMs = nowMs
	h.last = snap

	if snap.BigWinStarted {
		log.Printf("[HOST] big win! score=%d message=%q", snap.Score, snap.Message)
		h.publish(Event{Type: EventBigWinStarted, Score: snap.Score, Message: snap.Message, Tick: snap.Tick})
	}
	if snap.BigWinEnded {
		log.Printf("[HOST] big win over at tick %d (score=%d)", snap.Tick, snap.Score)
		h.publish(Event{Type: EventBigWinEnded, Score: snap.Score, Tick: snap.Tick})
	}

	if h.broadcaster != nil && (snap.Tick%h.opts.BroadcastEvery == 0 || snap.BigWinStarted || snap.BigWinEnded) {
		h.broadcaster.BroadcastState(snap)
	}
}

func (h *Host) publish(ev Event) {
	if h.events == nil {
		return
	}
	ev.At = time.Now()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := h.events.Publish(ctx, ev); err != nil {
			log.Printf("[HOST] failed to publish %s: %v", ev.Type, err)
		}
	}()
}

func (h *Host) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case spawnCmd:
		c.reply <- h.session.SpawnBall()
	case resetCmd:
		snap := h.session.Initialize(h.opts.Width, h.opts.Height)
		h.spawner.Reset()
		h.board.Store(h.session.Board())
		h.last = snap
		log.Printf("[HOST] board reset, big-win pocket=%d", h.session.Board().BigWinIndex)
		if h.broadcaster != nil {
			h.broadcaster.BroadcastBoard(h.session.Board())
			h.broadcaster.BroadcastState(snap)
		}
		c.reply <- snap
	case snapshotCmd:
		c.reply <- h.last
	}
}

// SpawnBall drops a ball on the next loop turn.
func (h *Host) SpawnBall(ctx context.Context) (game.BallState, error) {
	reply := make(chan game.BallState, 1)
	if err := h.send(ctx, spawnCmd{reply: reply}); err != nil {
		return game.BallState{}, err
	}
	return await(ctx, h.done, reply)
}

// Reset starts a fresh game on a newly generated board.
func (h *Host) Reset(ctx context.Context) (game.Snapshot, error) {
	reply := make(chan game.Snapshot, 1)
	if err := h.send(ctx, resetCmd{reply: reply}); err != nil {
		return game.Snapshot{}, err
	}
	return await(ctx, h.done, reply)
}

// Snapshot returns the most recent frame.
func (h *Host) Snapshot(ctx context.Context) (game.Snapshot, error) {
	reply := make(chan game.Snapshot, 1)
	if err := h.send(ctx, snapshotCmd{reply: reply}); err != nil {
		return game.Snapshot{}, err
	}
	return await(ctx, h.done, reply)
}

func (h *Host) send(ctx context.Context, cmd any) error {
	select {
	case <-h.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	case h.inbox <- cmd:
		return nil
	}
}

func await[T any](ctx context.Context, done <-chan struct{}, reply <-chan T) (T, error) {
	var zero T
	select {
	case v := <-reply:
		return v, nil
	case <-done:
		return zero, ErrStopped
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
