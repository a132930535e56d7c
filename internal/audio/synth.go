// Package audio renders simulation cues as short synthesized sounds.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-arena/internal/arena"
)

// SampleRate is the output rate used for playback.
const SampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Tone is one note of a cue.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
}

// cueVolumes is the relative loudness of each cue.
var cueVolumes = map[arena.Cue]float64{
	arena.CueHealthPickup:           0.7,
	arena.CuePowerupPickup:          0.7,
	arena.CueEnemyCollisionDamage:   0.7,
	arena.CueEnemyCollisionKillMode: 0.3,
	arena.CueDeath:                  1.0,
	arena.CueGameStart:              0.2,
}

var cueTones = map[arena.Cue][]Tone{
	arena.CueHealthPickup: {
		{660, 70 * time.Millisecond, WaveSine},
		{880, 90 * time.Millisecond, WaveSine},
	},
	arena.CuePowerupPickup: {
		{440, 60 * time.Millisecond, WaveSquare},
		{660, 60 * time.Millisecond, WaveSquare},
		{990, 120 * time.Millisecond, WaveSquare},
	},
	arena.CueEnemyCollisionDamage: {
		{0, 90 * time.Millisecond, WaveNoise},
		{110, 80 * time.Millisecond, WaveSquare},
	},
	arena.CueEnemyCollisionKillMode: {
		{1320, 50 * time.Millisecond, WaveSquare},
	},
	arena.CueDeath: {
		{440, 180 * time.Millisecond, WaveSaw},
		{330, 180 * time.Millisecond, WaveSaw},
		{220, 400 * time.Millisecond, WaveSaw},
	},
	arena.CueGameStart: {
		{523.25, 80 * time.Millisecond, WaveSine},
		{659.25, 80 * time.Millisecond, WaveSine},
		{783.99, 140 * time.Millisecond, WaveSine},
	},
}

// Volume returns the relative loudness of a cue.
func Volume(cue arena.Cue) float64 {
	return cueVolumes[cue]
}

// Tones returns the notes that make up a cue.
func Tones(cue arena.Cue) []Tone {
	return cueTones[cue]
}

// SampleCount returns how many samples a cue renders to at rate.
func SampleCount(cue arena.Cue, rate beep.SampleRate) int {
	n := 0
	for _, t := range cueTones[cue] {
		n += rate.N(t.Duration)
	}
	return n
}

// Synthesize builds the streamer for a cue, scaled by master volume.
// Unknown cues return nil.
func Synthesize(cue arena.Cue, rate beep.SampleRate, master float64) beep.Streamer {
	tones, ok := cueTones[cue]
	if !ok {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(tones))
	for i, t := range tones {
		osc := newOscillator(t.Freq, t.Duration, t.Wave, rate, int64(cue)*16+int64(i))
		parts = append(parts, newEnvelope(osc, t.Duration, 5*time.Millisecond, t.Duration/3, rate))
	}

	return newVolume(beep.Seq(parts...), cueVolumes[cue]*master)
}

// oscillator generates a fixed-length raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
	noise    *rand.Rand
}

func newOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate, seed int64) *oscillator {
	return &oscillator{
		freq:     freq,
		duration: rate.N(d),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(seed)), //#nosec G404 -- audio noise
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := range n {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear volume; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
