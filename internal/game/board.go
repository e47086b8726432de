package game

import "math"

// Pin is a fixed circular obstacle.
type Pin struct {
	ID       int     `json:"id"`
	Position Vec2    `json:"position"`
	Radius   float64 `json:"radius"`
}

// Pocket is an axis-aligned scoring rectangle anchored at its top-left corner.
type Pocket struct {
	ID     int     `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	BigWin bool    `json:"big_win"`
}

// Overlaps reports whether the ball's bounding square overlaps the pocket.
// Touching edges do not count.
func (p Pocket) Overlaps(b *Ball) bool {
	left := b.Position.X - b.Radius
	right := b.Position.X + b.Radius
	top := b.Position.Y - b.Radius
	bottom := b.Position.Y + b.Radius

	return left < p.X+p.Width &&
		right > p.X &&
		top < p.Y+p.Height &&
		bottom > p.Y
}

// Board holds the static playfield geometry. It is never mutated after
// NewBoard returns.
type Board struct {
	Width       float64  `json:"width"`
	Height      float64  `json:"height"`
	Pins        []Pin    `json:"pins"`
	Pockets     []Pocket `json:"pockets"`
	BigWinIndex int      `json:"big_win_index"`
}

// NewBoard lays out the pin grid and the pocket row for a width x height
// playfield. The pin grid does not depend on rng; rng only picks which
// pocket is the big-win pocket.
func NewBoard(width, height float64, rng Rand) *Board {
	bigWin := rng.IntN(NumPockets)
	return &Board{
		Width:       width,
		Height:      height,
		Pins:        pinGrid(),
		Pockets:     pocketRow(width, height, bigWin),
		BigWinIndex: bigWin,
	}
}

func pinGrid() []Pin {
	pins := make([]Pin, 0, PinRows*PinCols)
	for row := 0; row < PinRows; row++ {
		for col := 0; col < PinCols; col++ {
			x := PinOriginX + float64(col)*PinSpacingX + float64(row%2)*(PinSpacingX/2)
			y := PinOriginY + float64(row)*PinSpacingY
			pins = append(pins, Pin{
				ID:       len(pins),
				Position: NewVec2(x, y),
				Radius:   PinRadius,
			})
		}
	}
	return pins
}

func pocketRow(width, height float64, bigWin int) []Pocket {
	// Gaps are floored to whole pixels, so the row can fall short of the
	// right edge by a few pixels.
	spacing := math.Floor((width - PocketWidth*NumPockets) / (NumPockets + 1))

	pockets := make([]Pocket, NumPockets)
	for i := range pockets {
		pockets[i] = Pocket{
			ID:     i,
			X:      spacing*float64(i+1) + PocketWidth*float64(i),
			Y:      height - PocketInset,
			Width:  PocketWidth,
			Height: PocketHeight,
			BigWin: i == bigWin,
		}
	}
	return pockets
}
