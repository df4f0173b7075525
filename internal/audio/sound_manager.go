// Package audio plays the game's sound effects and music through the local
// speaker. All sounds are synthesized; no asset files are needed.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)

	speakerBufferDuration = 100 * time.Millisecond

	musicLevel = 0.35 // Music sits under the effects
)

// SoundManager implements game.Audio on top of the beep speaker.
// Every method is a no-op until Initialize succeeds, so a machine without
// an audio device still runs the game silently.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	track       game.MusicID
	volume      float64 // Master volume in [0, 1]
	initialized bool
}

var _ game.Audio = (*SoundManager)(nil)

// NewSoundManager creates a sound manager with the given master volume.
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: clampVolume(volume),
	}
}

// Initialize opens the speaker. Calling it again is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(speakerBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops everything that is playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	sm.music = nil
	sm.initialized = false
}

// PlaySound plays a one-shot effect at volume in [0, 1].
func (sm *SoundManager) PlaySound(s game.SoundID, volume float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := soundEffect(s)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(newVolume(streamer, clampVolume(volume)*sm.volume))
	speaker.Unlock()
}

// PlayMusic starts looping a track, replacing the current one.
func (sm *SoundManager) PlayMusic(m game.MusicID) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	ctrl := &beep.Ctrl{Streamer: newVolume(newTrack(m), musicLevel*sm.volume)}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
		sm.music.Streamer = nil
	}
	sm.mixer.Add(ctrl)
	speaker.Unlock()

	sm.music = ctrl
	sm.track = m
}

// StopMusic stops the current track.
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}

	speaker.Lock()
	sm.music.Paused = true
	// A Ctrl without a streamer drains out of the mixer
	sm.music.Streamer = nil
	speaker.Unlock()

	sm.music = nil
}

// IsMusicPlaying reports whether m is the current track.
func (sm *SoundManager) IsMusicPlaying(m game.MusicID) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.music != nil && sm.track == m
}

// newVolume wraps s with a linear volume. math.Log2(0) is -Inf, so zero
// volume maps to a silent effect.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func clampVolume(v float64) float64 {
	return core.ClampF(v, 0, 1)
}
