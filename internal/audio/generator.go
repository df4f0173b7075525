package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-platformer/internal/game"
)

// Effect tuning.
const (
	jumpDuration  = 180 * time.Millisecond
	jumpStartHz   = 220.0
	jumpEndHz     = 440.0
	jumpAmplitude = 0.35

	shineNoteDuration = 90 * time.Millisecond
	shineLowHz        = 987.77  // B5
	shineHighHz       = 1318.51 // E6
	shineAmplitude    = 0.3

	noteGap = 0.15 // Silent tail of every music note, as a share of its length
)

// Note is one step of a melody. Hz 0 is a rest.
type Note struct {
	Hz    float64
	Beats float64
}

// Track is a looping melody.
type Track struct {
	BPM       float64
	Amplitude float64
	Notes     []Note
}

// Melodies for the start and end screens.
var (
	menuTrack = Track{
		BPM:       132,
		Amplitude: 0.25,
		Notes: []Note{
			{261.63, 0.5}, {329.63, 0.5}, {392.00, 0.5}, {523.25, 0.5},
			{392.00, 0.5}, {329.63, 0.5}, {293.66, 1},
			{246.94, 0.5}, {293.66, 0.5}, {392.00, 0.5}, {493.88, 0.5},
			{392.00, 0.5}, {293.66, 0.5}, {261.63, 1},
		},
	}

	endTrack = Track{
		BPM:       84,
		Amplitude: 0.25,
		Notes: []Note{
			{392.00, 1}, {349.23, 1}, {329.63, 1}, {293.66, 1},
			{261.63, 2}, {0, 1}, {196.00, 1},
			{261.63, 3}, {0, 1},
		},
	}
)

// trackFor returns the melody of a music id.
func trackFor(m game.MusicID) Track {
	if m == game.MusicEnd {
		return endTrack
	}
	return menuTrack
}

// soundEffect builds a fresh, finite streamer for s.
func soundEffect(s game.SoundID) beep.Streamer {
	switch s {
	case game.SoundJump:
		return beep.Take(sampleRate.N(jumpDuration), NewSweepGenerator(sampleRate, jumpStartHz, jumpEndHz, jumpDuration, jumpAmplitude))
	case game.SoundShine:
		low := beep.Take(sampleRate.N(shineNoteDuration), NewChimeGenerator(sampleRate, shineLowHz, shineNoteDuration, shineAmplitude))
		high := beep.Take(sampleRate.N(2*shineNoteDuration), NewChimeGenerator(sampleRate, shineHighHz, 2*shineNoteDuration, shineAmplitude))
		return beep.Seq(low, high)
	default:
		return nil
	}
}

// newTrack builds an endless streamer for m.
func newTrack(m game.MusicID) beep.Streamer {
	return NewMelodyGenerator(sampleRate, trackFor(m))
}

// SweepGenerator glides a sine from one frequency to another.
type SweepGenerator struct {
	sr        beep.SampleRate
	from, to  float64
	length    int
	amplitude float64
	phase     float64
	pos       int
}

// NewSweepGenerator creates a sweep lasting d.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration, amplitude float64) *SweepGenerator {
	return &SweepGenerator{
		sr:        sr,
		from:      from,
		to:        to,
		length:    max(sr.N(d), 1),
		amplitude: amplitude,
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.length), 1)
		freq := g.from + (g.to-g.from)*progress

		// Accumulate phase so the glide has no clicks
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		sample := g.amplitude * (1 - progress) * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// ChimeGenerator is a sine with its octave and an exponential decay.
type ChimeGenerator struct {
	sr        beep.SampleRate
	freq      float64
	decay     float64
	amplitude float64
	pos       int
}

// NewChimeGenerator creates a chime that fades out over roughly d.
func NewChimeGenerator(sr beep.SampleRate, freq float64, d time.Duration, amplitude float64) *ChimeGenerator {
	return &ChimeGenerator{
		sr:        sr,
		freq:      freq,
		decay:     4 / d.Seconds(),
		amplitude: amplitude,
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-t * g.decay)

		sample := 0.7*math.Sin(2*math.Pi*g.freq*t) + 0.3*math.Sin(4*math.Pi*g.freq*t)
		sample *= g.amplitude * env

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// MelodyGenerator plays a track as a soft square wave, forever.
type MelodyGenerator struct {
	sr        beep.SampleRate
	notes     []Note
	lengths   []int // Samples per note
	amplitude float64

	note int
	pos  int // Position inside the current note
}

// NewMelodyGenerator creates a looping generator for track.
func NewMelodyGenerator(sr beep.SampleRate, track Track) *MelodyGenerator {
	beat := time.Duration(float64(time.Minute) / track.BPM)
	g := &MelodyGenerator{
		sr:        sr,
		notes:     track.Notes,
		lengths:   make([]int, len(track.Notes)),
		amplitude: track.Amplitude,
	}
	for i, n := range track.Notes {
		g.lengths[i] = max(sr.N(time.Duration(n.Beats*float64(beat))), 1)
	}
	return g
}

func (g *MelodyGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if len(g.notes) == 0 {
		clear(samples)
		return len(samples), true
	}

	for i := range samples {
		note := g.notes[g.note]
		length := g.lengths[g.note]

		sample := 0.0
		if note.Hz > 0 && float64(g.pos) < float64(length)*(1-noteGap) {
			t := float64(g.pos) / float64(g.sr)
			// Odd harmonics only: a mellow square
			sample = math.Sin(2*math.Pi*note.Hz*t) + math.Sin(6*math.Pi*note.Hz*t)/3
			sample *= g.amplitude * 0.75
		}

		samples[i][0] = sample
		samples[i][1] = sample

		g.pos++
		if g.pos >= length {
			g.pos = 0
			g.note = (g.note + 1) % len(g.notes)
		}
	}
	return len(samples), true
}

func (g *MelodyGenerator) Err() error {
	return nil
}
