package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/folio-arcade/constants"
	"github.com/lixenwraith/folio-arcade/game"
	"github.com/lixenwraith/folio-arcade/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// at returns the wave value in [-1, 1] for a phase in [0, 1)
func (w WaveType) at(phase float64, rng *vmath.FastRand) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*phase - 1
	case WaveNoise:
		return float64(rng.Intn(1<<16))/(1<<15) - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Voice is one note: a wave under a linear attack and release ramp
// Zero Attack and Release give a flat gain
type Voice struct {
	Freq    float64
	Wave    WaveType
	Length  time.Duration
	Attack  time.Duration
	Release time.Duration
}

// note builds a voice with the ramp used by every cue
func note(freq float64, wave WaveType, d time.Duration) Voice {
	return Voice{Freq: freq, Wave: wave, Length: d, Attack: d / 10, Release: d / 3}
}

// Streamer renders the voice at rate
func (v Voice) Streamer(rate beep.SampleRate) beep.Streamer {
	return &voiceStream{
		wave:    v.Wave,
		step:    v.Freq / float64(rate),
		total:   rate.N(v.Length),
		attack:  rate.N(v.Attack),
		release: rate.N(v.Release),
		rng:     vmath.NewFastRand(uint64(v.Freq*1000) + 1),
	}
}

type voiceStream struct {
	wave    WaveType
	step    float64
	phase   float64
	pos     int
	total   int
	attack  int
	release int
	rng     *vmath.FastRand
}

func (s *voiceStream) Stream(samples [][2]float64) (int, bool) {
	n := min(len(samples), s.total-s.pos)
	if n <= 0 {
		return 0, false
	}
	for i := range n {
		val := s.wave.at(s.phase, s.rng) * ramp(s.pos, s.total, s.attack, s.release)
		samples[i] = [2]float64{val, val}
		s.phase = math.Mod(s.phase+s.step, 1)
		s.pos++
	}
	return n, true
}

func (s *voiceStream) Err() error { return nil }

// ramp is the gain at sample pos of a note total samples long
func ramp(pos, total, attack, release int) float64 {
	gain := 1.0
	if attack > 0 && pos < attack {
		gain = float64(pos) / float64(attack)
	}
	if release > 0 && pos >= total-release {
		gain = min(gain, float64(total-pos)/float64(release))
	}
	return max(gain, 0)
}

// math.Log2(0) is -Inf, so 0 volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// cueShape describes a cue as notes played back to back over d
type cueShape struct {
	notes []float64
	wave  WaveType
	d     time.Duration
	noise float64 // gain of a noise bed under the notes, 0 for none
}

var cueShapes = map[game.Cue]cueShape{
	game.CuePickup:   {notes: []float64{1320}, wave: WaveSine, d: constants.PickupSoundDuration},
	game.CueHit:      {notes: []float64{440}, wave: WaveSquare, d: constants.HitSoundDuration},
	game.CueMatch:    {notes: []float64{660, 990}, wave: WaveSine, d: constants.MatchSoundDuration},
	game.CueMiss:     {notes: []float64{110}, wave: WaveSaw, d: constants.MissSoundDuration},
	game.CueGameOver: {notes: []float64{392, 330, 262}, wave: WaveSine, d: constants.GameOverSoundDuration, noise: 0.15},
	game.CueWin:      {notes: []float64{523, 659, 784, 1047}, wave: WaveSine, d: constants.WinSoundDuration},
	game.CueLevelUp:  {notes: []float64{440, 554, 659, 880, 1109}, wave: WaveSine, d: constants.LevelUpSoundDuration},
}

// CreateCueSound builds the streamer for one cue, nil for an unknown cue
func CreateCueSound(cue game.Cue, rate beep.SampleRate, master float64) beep.Streamer {
	shape, ok := cueShapes[cue]
	if !ok {
		return nil
	}

	step := shape.d / time.Duration(len(shape.notes))
	parts := make([]beep.Streamer, len(shape.notes))
	for i, f := range shape.notes {
		parts[i] = note(f, shape.wave, step).Streamer(rate)
	}
	s := beep.Seq(parts...)

	if shape.noise > 0 {
		bed := note(0, WaveNoise, shape.d).Streamer(rate)
		s = beep.Mix(s, newVolume(bed, shape.noise))
	}
	return newVolume(s, master)
}
