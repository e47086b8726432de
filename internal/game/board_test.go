package game

import (
	"reflect"
	"testing"
)

func TestBoardDeterministicForSeed(t *testing.T) {
	a := NewBoard(DefaultScreenWidth, DefaultScreenHeight, NewRand(42))
	b := NewBoard(DefaultScreenWidth, DefaultScreenHeight, NewRand(42))

	if !reflect.DeepEqual(a, b) {
		t.Errorf("boards built from the same seed differ: big win %d vs %d", a.BigWinIndex, b.BigWinIndex)
	}
}

func TestPinGridIsStaggered(t *testing.T) {
	board := NewBoard(DefaultScreenWidth, DefaultScreenHeight, fixedRand{})

	if len(board.Pins) != PinRows*PinCols {
		t.Fatalf("pin count = %d, want %d", len(board.Pins), PinRows*PinCols)
	}

	first := board.Pins[0].Position
	if first.X != 50 || first.Y != 50 {
		t.Errorf("pin (0,0) at (%.1f,%.1f), want (50,50)", first.X, first.Y)
	}

	// Row 1, column 0 is shifted by half a column.
	shifted := board.Pins[PinCols].Position
	if shifted.X != 72.5 || shifted.Y != 80 {
		t.Errorf("pin (1,0) at (%.1f,%.1f), want (72.5,80)", shifted.X, shifted.Y)
	}

	last := board.Pins[len(board.Pins)-1].Position
	if last.X != 680 || last.Y != 470 {
		t.Errorf("pin (14,14) at (%.1f,%.1f), want (680,470)", last.X, last.Y)
	}

	for i, p := range board.Pins {
		if p.ID != i || p.Radius != PinRadius {
			t.Errorf("pin %d: id=%d radius=%.1f", i, p.ID, p.Radius)
		}
	}
}

func TestPocketRow(t *testing.T) {
	board := NewBoard(DefaultScreenWidth, DefaultScreenHeight, fixedRand{n: 3})

	wantX := []float64{66, 212, 358, 504, 650}
	if len(board.Pockets) != len(wantX) {
		t.Fatalf("pocket count = %d, want %d", len(board.Pockets), len(wantX))
	}

	bigWins := 0
	for i, p := range board.Pockets {
		if p.X != wantX[i] {
			t.Errorf("pocket %d x = %.1f, want %.1f", i, p.X, wantX[i])
		}
		if p.Y != 550 || p.Width != PocketWidth || p.Height != PocketHeight {
			t.Errorf("pocket %d geometry = %+v", i, p)
		}
		if p.BigWin {
			bigWins++
		}
	}

	if bigWins != 1 {
		t.Errorf("big-win pockets = %d, want exactly 1", bigWins)
	}
	if board.BigWinIndex != 3 || !board.Pockets[board.BigWinIndex].BigWin {
		t.Errorf("big-win index = %d, want 3", board.BigWinIndex)
	}
}

func TestPocketOverlapIsStrict(t *testing.T) {
	p := Pocket{X: 100, Y: 500, Width: 80, Height: 20}

	touching := &Ball{Position: NewVec2(95, 510), Radius: BallRadius}
	if p.Overlaps(touching) {
		t.Error("ball touching the left edge should not overlap")
	}

	inside := &Ball{Position: NewVec2(96, 510), Radius: BallRadius}
	if !p.Overlaps(inside) {
		t.Error("ball one unit inside the left edge should overlap")
	}

	above := &Ball{Position: NewVec2(140, 495), Radius: BallRadius}
	if p.Overlaps(above) {
		t.Error("ball resting on the top edge should not overlap")
	}
}
