package config

// SoundID represents a logical sound cue. The engine triggers cues by name;
// waveform synthesis lives in the audio system.
type SoundID int

const (
	SoundNone SoundID = iota
	// Gameplay sounds
	SoundJump
	SoundCoin
	SoundGem
	SoundStar
	SoundPowerUp
	SoundStomp
	SoundHurt
	SoundBreak
	SoundLevelComplete
	SoundGameOver
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// ToneConfig describes a synthesized cue: a short sequence of notes.
type ToneConfig struct {
	Frequencies []float64 // Hz, played in order
	NoteSeconds float64   // duration of each note
	Volume      float64   // relative volume multiplier
}

var Audio AudioConfig

// Tones maps sound IDs to their synthesis parameters.
var Tones map[SoundID]ToneConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Tones = map[SoundID]ToneConfig{
		SoundJump:          {Frequencies: []float64{330, 440}, NoteSeconds: 0.06, Volume: 0.6},
		SoundCoin:          {Frequencies: []float64{988, 1319}, NoteSeconds: 0.07, Volume: 0.5},
		SoundGem:           {Frequencies: []float64{1175, 1568}, NoteSeconds: 0.07, Volume: 0.5},
		SoundStar:          {Frequencies: []float64{1047, 1319, 1568}, NoteSeconds: 0.08, Volume: 0.55},
		SoundPowerUp:       {Frequencies: []float64{523, 659, 784, 1047}, NoteSeconds: 0.07, Volume: 0.6},
		SoundStomp:         {Frequencies: []float64{220, 165}, NoteSeconds: 0.05, Volume: 0.7},
		SoundHurt:          {Frequencies: []float64{196, 131}, NoteSeconds: 0.1, Volume: 0.7},
		SoundBreak:         {Frequencies: []float64{147, 110}, NoteSeconds: 0.06, Volume: 0.6},
		SoundLevelComplete: {Frequencies: []float64{523, 659, 784, 1047, 1319}, NoteSeconds: 0.1, Volume: 0.7},
		SoundGameOver:      {Frequencies: []float64{392, 330, 262, 196}, NoteSeconds: 0.15, Volume: 0.7},
		SoundMenuNavigate:  {Frequencies: []float64{440}, NoteSeconds: 0.04, Volume: 0.4},
		SoundMenuSelect:    {Frequencies: []float64{660, 880}, NoteSeconds: 0.05, Volume: 0.5},
	}
}
