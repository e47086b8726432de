// Package render holds the colours both front ends paint the board with.
package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/playmatatu/tinko/internal/game"
)

var (
	Black = color.RGBA{0, 0, 0, 255}
	White = color.RGBA{255, 255, 255, 255}
	Blue  = color.RGBA{0, 0, 255, 255}
	Red   = color.RGBA{255, 0, 0, 255}
	Green = color.RGBA{0, 255, 0, 255}
)

// Background is black in normal play and a fully saturated hue during a
// big win.
func Background(snap game.Snapshot) color.RGBA {
	if !snap.BigWin() {
		return Black
	}
	return Rainbow(snap.RainbowHue)
}

// Rainbow converts a hue in [0, 1) to an opaque RGB colour.
func Rainbow(hue float64) color.RGBA {
	c := colorful.Hsv(hue*360, 1, 1).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}

// PocketColor marks the big-win pocket green and the rest red.
func PocketColor(p game.Pocket) color.RGBA {
	if p.BigWin {
		return Green
	}
	return Red
}

// MessageColor is the big-win message colour; it sits on the rainbow.
func MessageColor() color.RGBA {
	return Black
}
