package game

// Board and physics constants. Units are playfield pixels and frames; the
// browser and desktop front ends draw with the same numbers.

const (
	DefaultScreenWidth  = 800.0
	DefaultScreenHeight = 600.0

	BallRadius = 5.0
	PinRadius  = 4.0

	Gravity    = 0.5 // added to vy once per frame
	Elasticity = 0.7 // applied to reflected velocity on wall and pin hits

	// Staggered pin grid: odd rows shift right by half a column.
	PinRows     = 15
	PinCols     = 15
	PinOriginX  = 50.0
	PinOriginY  = 50.0
	PinSpacingX = 45.0
	PinSpacingY = 30.0

	NumPockets   = 5
	PocketWidth  = 80.0
	PocketHeight = 20.0
	PocketInset  = 50.0 // distance from the bottom edge to the pocket top

	SpawnSpeedX = 3.0 // spawn vx is uniform in [-SpawnSpeedX, SpawnSpeedX)

	BigWinDurationMs = 7000.0
	HueRatePerSecond = 0.1

	// Frames between automatic spawns.
	SpawnIntervalNormal = 30
	SpawnIntervalBigWin = 5
)

// BigWinMessages is the pool a big-win message is drawn from.
var BigWinMessages = []string{
	"yuki die",
	"sukisoudana",
	"nanisitennno",
	"LOSER",
	"CSC die",
}
