package audio

import "time"

// Имена звуковых эффектов
const (
	CueSpawn        = "spawn"
	CueHit          = "hit"
	CueKill         = "kill"
	CueBreakthrough = "breakthrough"
	CuePlace        = "place"
	CueUpgrade      = "upgrade"
	CueSell         = "sell"
	CueShoot        = "shoot"
	CueLaser        = "laser"
	CueCoin         = "coin"
	CueWave         = "wave"
	CueVictory      = "victory"
	CueDefeat       = "defeat"
	CueError        = "error"
)

// cue описывает синтезированный звук и минимальный интервал между повторами.
type cue struct {
	freq, endFreq float64
	duration      time.Duration
	wave          WaveType
	volume        float64
	minGap        time.Duration
}

var cues = map[string]cue{
	CueSpawn:        {330, 300, 60 * time.Millisecond, WaveTriangle, 0.10, 150 * time.Millisecond},
	CueHit:          {220, 180, 40 * time.Millisecond, WaveSquare, 0.06, 50 * time.Millisecond},
	CueKill:         {660, 990, 90 * time.Millisecond, WaveSine, 0.15, 40 * time.Millisecond},
	CueBreakthrough: {160, 80, 300 * time.Millisecond, WaveSquare, 0.20, 0},
	CuePlace:        {440, 550, 80 * time.Millisecond, WaveTriangle, 0.15, 0},
	CueUpgrade:      {520, 1040, 150 * time.Millisecond, WaveSine, 0.15, 0},
	CueSell:         {550, 330, 120 * time.Millisecond, WaveTriangle, 0.15, 0},
	CueShoot:        {880, 700, 30 * time.Millisecond, WaveSquare, 0.04, 60 * time.Millisecond},
	CueLaser:        {1400, 600, 120 * time.Millisecond, WaveSine, 0.08, 60 * time.Millisecond},
	CueCoin:         {1200, 1600, 50 * time.Millisecond, WaveSine, 0.05, 200 * time.Millisecond},
	CueWave:         {392, 523, 250 * time.Millisecond, WaveTriangle, 0.18, 0},
	CueVictory:      {523, 1046, 600 * time.Millisecond, WaveSine, 0.20, 0},
	CueDefeat:       {300, 100, 800 * time.Millisecond, WaveSquare, 0.20, 0},
	CueError:        {120, 120, 150 * time.Millisecond, WaveSquare, 0.12, 100 * time.Millisecond},
}

// KnownCue сообщает, есть ли звук с таким именем.
func KnownCue(name string) bool {
	_, ok := cues[name]
	return ok
}
