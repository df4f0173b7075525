package game

// SoundID identifies a one-shot sound effect.
type SoundID int

const (
	SoundJump  SoundID = iota // Player leaves the ground
	SoundShine                // Item collected
)

// String returns the asset identifier of the sound.
func (s SoundID) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundShine:
		return "shine"
	default:
		return "unknown"
	}
}

// MusicID identifies a looping music track.
type MusicID int

const (
	MusicMenu MusicID = iota // Start screen loop
	MusicEnd                 // End screen loop
)

// String returns the asset identifier of the track.
func (m MusicID) String() string {
	switch m {
	case MusicMenu:
		return "bgm"
	case MusicEnd:
		return "fm"
	default:
		return "unknown"
	}
}

// Audio is the sound collaborator the controller drives.
// The controller only calls it while sound is enabled, except StopMusic
// on a sound toggle.
type Audio interface {
	// PlaySound plays a one-shot effect at volume in [0, 1].
	PlaySound(s SoundID, volume float64)

	// PlayMusic starts looping a track, replacing any current track.
	PlayMusic(m MusicID)

	// StopMusic stops the current track, if any.
	StopMusic()

	// IsMusicPlaying reports whether the given track is playing.
	IsMusicPlaying(m MusicID) bool
}

// NopAudio is a silent Audio.
type NopAudio struct{}

func (NopAudio) PlaySound(SoundID, float64) {}

func (NopAudio) PlayMusic(MusicID) {}

func (NopAudio) StopMusic() {}

func (NopAudio) IsMusicPlaying(MusicID) bool { return false }

var _ Audio = NopAudio{}
