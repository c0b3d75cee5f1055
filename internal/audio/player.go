package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"golang.org/x/time/rate"
)

const sampleRate = beep.SampleRate(44100)

// Player проигрывает именованные звуки. Ошибки проигрывания никогда не
// влияют на симуляцию, поэтому PlayEffect ничего не возвращает.
type Player interface {
	PlayEffect(name string)
}

// NopPlayer молча игнорирует все звуки (тесты, TD_MUTE, нет устройства).
type NopPlayer struct{}

func (NopPlayer) PlayEffect(string) {}

// BeepPlayer синтезирует звуки и микширует их через gopxl/beep.
type BeepPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	limiters    map[string]*rate.Limiter
	initialized bool
}

func NewBeepPlayer() *BeepPlayer {
	p := &BeepPlayer{
		mixer:    &beep.Mixer{},
		limiters: make(map[string]*rate.Limiter),
	}
	for name, c := range cues {
		if c.minGap > 0 {
			p.limiters[name] = rate.NewLimiter(rate.Every(c.minGap), 1)
		}
	}
	return p
}

// Initialize открывает аудиоустройство. Повторный вызов ничего не делает.
func (p *BeepPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// PlayEffect добавляет звук в микшер. Неизвестные имена и слишком частые
// повторы одного звука отбрасываются.
func (p *BeepPlayer) PlayEffect(name string) {
	c, ok := cues[name]
	if !ok {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	if limiter, ok := p.limiters[name]; ok && !limiter.Allow() {
		return
	}
	streamer := NewTone(c.freq, c.endFreq, c.duration, c.wave, c.volume, sampleRate)
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// Close останавливает все звуки
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}

// NewPlayer возвращает BeepPlayer, а при mute или недоступном устройстве -
// NopPlayer. Второе значение - ошибка инициализации, только для лога.
func NewPlayer(mute bool) (Player, error) {
	if mute {
		return NopPlayer{}, nil
	}
	p := NewBeepPlayer()
	if err := p.Initialize(); err != nil {
		return NopPlayer{}, err
	}
	return p, nil
}
