package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/dashware/skyhopper/config"
)

// AudioData queues named sound cues for the audio system (singleton).
// The engine only ever appends cue IDs; synthesis and playback are the audio
// system's concern and failures there never reach the simulation.
type AudioData struct {
	PendingSFX   []cfg.SoundID
	MasterVolume float64
	SFXVolume    float64
	Muted        bool
}

var Audio = donburi.NewComponentType[AudioData]()
