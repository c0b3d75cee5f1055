package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// WaveType - форма сигнала осциллятора
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// tone - короткий синтезированный звук: частота скользит от freq до endFreq,
// громкость линейно затухает к концу.
type tone struct {
	freq, endFreq float64
	volume        float64
	wave          WaveType
	rate          beep.SampleRate
	phase         float64
	position      int
	duration      int
}

// NewTone создаёт конечный стример длительностью d.
func NewTone(freq, endFreq float64, d time.Duration, wave WaveType, volume float64, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		endFreq:  endFreq,
		volume:   volume,
		wave:     wave,
		rate:     rate,
		duration: rate.N(d),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, i > 0
		}
		progress := float64(t.position) / float64(t.duration)

		var val float64
		switch t.wave {
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveTriangle:
			val = 1 - 4*math.Abs(t.phase-0.5)
		default:
			val = math.Sin(2 * math.Pi * t.phase)
		}
		val *= t.volume * (1 - progress)

		samples[i][0] = val
		samples[i][1] = val

		freq := t.freq + (t.endFreq-t.freq)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
