package game

// Spawner decides when a front end should drop a ball automatically. It
// counts frames and fires every SpawnIntervalNormal frames, or every
// SpawnIntervalBigWin frames during a big win. Sessions never consult it.
type Spawner struct {
	frames int
}

// Tick counts one frame and reports whether a ball is due.
func (sp *Spawner) Tick(mode Mode) bool {
	sp.frames++
	interval := SpawnIntervalNormal
	if mode == ModeBigWin {
		interval = SpawnIntervalBigWin
	}
	if sp.frames >= interval {
		sp.frames = 0
		return true
	}
	return false
}

func (sp *Spawner) Reset() {
	sp.frames = 0
}
