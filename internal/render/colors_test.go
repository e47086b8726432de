package render

import (
	"testing"

	"github.com/playmatatu/tinko/internal/game"
)

func TestRainbowPrimaries(t *testing.T) {
	cases := []struct {
		hue  float64
		want [3]uint8
	}{
		{0, [3]uint8{255, 0, 0}},
		{1.0 / 3, [3]uint8{0, 255, 0}},
		{2.0 / 3, [3]uint8{0, 0, 255}},
	}
	for _, tc := range cases {
		c := Rainbow(tc.hue)
		if c.R != tc.want[0] || c.G != tc.want[1] || c.B != tc.want[2] || c.A != 255 {
			t.Errorf("Rainbow(%.3f) = %v, want %v", tc.hue, c, tc.want)
		}
	}
}

func TestBackgroundFollowsMode(t *testing.T) {
	normal := game.Snapshot{Mode: game.ModeNormal, RainbowHue: 0.5}
	if Background(normal) != Black {
		t.Errorf("normal background = %v, want black", Background(normal))
	}

	bigWin := game.Snapshot{Mode: game.ModeBigWin, RainbowHue: 0}
	if Background(bigWin) != Red {
		t.Errorf("big-win background at hue 0 = %v, want red", Background(bigWin))
	}
}

func TestPocketColor(t *testing.T) {
	if PocketColor(game.Pocket{BigWin: true}) != Green {
		t.Error("big-win pocket not green")
	}
	if PocketColor(game.Pocket{}) != Red {
		t.Error("ordinary pocket not red")
	}
}
