// Package audio plays short feedback sounds for simulation events.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	collisionFreq     = 880.0
	collisionDuration = 60 * time.Millisecond
)

// Blipper plays a short tone per collision burst.
type Blipper struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewBlipper() *Blipper {
	return &Blipper{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. Until it succeeds every Play call is a no-op.
func (b *Blipper) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Cleanup silences queued tones and closes the speaker.
func (b *Blipper) Cleanup() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	b.initialized = false
}

// PlayCollision queues one collision blip.
func (b *Blipper) PlayCollision() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}

	streamer := beep.Take(sampleRate.N(collisionDuration), NewBlipGenerator(sampleRate, collisionFreq, collisionDuration))
	speaker.Lock()
	b.mixer.Add(streamer)
	speaker.Unlock()
}

// BlipGenerator is a sine tone with a linear fade out over its duration.
type BlipGenerator struct {
	sr       beep.SampleRate
	freq     float64
	duration time.Duration
	pos      int
}

func NewBlipGenerator(sr beep.SampleRate, freq float64, duration time.Duration) *BlipGenerator {
	return &BlipGenerator{
		sr:       sr,
		freq:     freq,
		duration: duration,
	}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	total := float64(g.sr.N(g.duration))
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := 1.0
		if total > 0 {
			envelope = math.Max(0, 1-float64(g.pos)/total)
		}
		sample := 0.25 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error {
	return nil
}
