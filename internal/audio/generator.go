package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ChompGenerator is a short pitch drop between two tones, alternating high
// and low on successive dots.
type ChompGenerator struct {
	sr       beep.SampleRate
	pos      int
	from, to float64 // Hz
	length   int
}

// NewChompGenerator creates a chomp generator.
func NewChompGenerator(sr beep.SampleRate, high bool) *ChompGenerator {
	g := &ChompGenerator{
		sr:     sr,
		from:   480,
		to:     240,
		length: sr.N(chompLength),
	}
	if !high {
		g.from, g.to = 360, 180
	}
	return g
}

func (g *ChompGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := math.Min(float64(g.pos)/float64(g.length), 1)
		freq := g.from + (g.to-g.from)*progress

		// Square-ish wave from odd harmonics
		phase := 2 * math.Pi * freq * t
		sample := 0.5*math.Sin(phase) + 0.17*math.Sin(3*phase) + 0.1*math.Sin(5*phase)
		sample *= 0.15 * (1 - progress)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChompGenerator) Err() error {
	return nil
}

// DeathGenerator is a descending warble that fades out.
type DeathGenerator struct {
	sr     beep.SampleRate
	pos    int
	length int
}

// NewDeathGenerator creates a death tune generator.
func NewDeathGenerator(sr beep.SampleRate) *DeathGenerator {
	return &DeathGenerator{
		sr:     sr,
		length: sr.N(deathLength),
	}
}

func (g *DeathGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	wobble := g.sr.N(90 * time.Millisecond)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := math.Min(float64(g.pos)/float64(g.length), 1)

		// 900Hz down to 100Hz, with a saw wobble every 90ms
		base := 900 - 800*progress
		step := float64(g.pos%wobble) / float64(wobble)
		freq := base * (1 + 0.25*(1-step))

		sample := 0.2 * math.Exp(-2*progress) * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *DeathGenerator) Err() error {
	return nil
}
