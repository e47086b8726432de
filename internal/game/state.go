package game

import "math"

// Mode is the board's scoring mode.
type Mode string

const (
	ModeNormal Mode = "NORMAL"
	ModeBigWin Mode = "BIG_WIN"
)

// GameState is the score and big-win bookkeeping for one session. Times are
// absolute milliseconds on the caller's clock.
type GameState struct {
	Score       int     `json:"score"`
	Mode        Mode    `json:"mode"`
	BigWinStart float64 `json:"big_win_start"`
	Message     string  `json:"message"`
	RainbowHue  float64 `json:"rainbow_hue"`
}

func newGameState() GameState {
	return GameState{Mode: ModeNormal}
}

// enterBigWin starts a big-win episode at now. It does nothing while an
// episode is already running, so the timer is never extended.
func (g *GameState) enterBigWin(now float64, rng Rand) bool {
	if g.Mode != ModeNormal {
		return false
	}
	g.Mode = ModeBigWin
	g.BigWinStart = now
	g.Message = BigWinMessages[rng.IntN(len(BigWinMessages))]
	return true
}

// advance moves the hue along and ends the episode once it has run for
// longer than BigWinDurationMs. It reports whether the episode ended.
func (g *GameState) advance(now float64) bool {
	if g.Mode != ModeBigWin {
		return false
	}
	g.RainbowHue = hueAt(now)
	if now-g.BigWinStart > BigWinDurationMs {
		g.Mode = ModeNormal
		return true
	}
	return false
}

// hueAt maps an absolute time to a hue in [0, 1).
func hueAt(now float64) float64 {
	h := math.Mod(now/1000*HueRatePerSecond, 1)
	if h < 0 {
		h++
	}
	if h >= 1 {
		h = 0
	}
	return h
}
