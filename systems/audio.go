package systems

import (
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"

	"github.com/dashware/skyhopper/components"
	cfg "github.com/dashware/skyhopper/config"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	toneCache          = make(map[cfg.SoundID][]byte)
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// PreloadAllSFX synthesizes every cue's PCM buffer up front so the first play
// of each sound has no synthesis hitch.
func PreloadAllSFX() {
	initGlobalAudio()
	for id := range cfg.Tones {
		if _, ok := toneCache[id]; !ok {
			toneCache[id] = synthesizeTone(cfg.Tones[id])
		}
	}
}

// QueueSound enqueues a cue for playback at the end of the frame.
func QueueSound(e *ecs.ECS, id cfg.SoundID) {
	audioData := components.Audio.Get(session(e))
	audioData.PendingSFX = append(audioData.PendingSFX, id)
}

// UpdateAudio plays the frame's pending cues and clears the queue. Muted or
// zero-volume sessions still drain the queue so it cannot grow unbounded.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	audioData := components.Audio.Get(session(e))
	pending := audioData.PendingSFX
	audioData.PendingSFX = audioData.PendingSFX[:0]

	if audioData.Muted {
		return
	}
	volume := audioData.MasterVolume * audioData.SFXVolume
	if volume <= 0 {
		return
	}

	for _, id := range pending {
		playSFX(id, volume)
	}
}

func playSFX(id cfg.SoundID, volume float64) {
	tone, ok := cfg.Tones[id]
	if !ok {
		return
	}
	pcm, ok := toneCache[id]
	if !ok {
		pcm = synthesizeTone(tone)
		toneCache[id] = pcm
	}

	player := globalAudioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(volume * tone.Volume)
	player.Play()
}

// synthesizeTone renders a note sequence as 16-bit little-endian stereo PCM.
// Square waves with a short linear decay per note keep the chip-tune feel.
func synthesizeTone(tone cfg.ToneConfig) []byte {
	sampleRate := float64(cfg.Audio.SampleRate)
	noteSamples := int(sampleRate * tone.NoteSeconds)
	buf := make([]byte, 0, len(tone.Frequencies)*noteSamples*4)

	for _, freq := range tone.Frequencies {
		for i := 0; i < noteSamples; i++ {
			t := float64(i) / sampleRate
			v := 1.0
			if math.Sin(2*math.Pi*freq*t) < 0 {
				v = -1.0
			}
			// Linear decay over the note avoids clicks at note boundaries.
			envelope := 1.0 - float64(i)/float64(noteSamples)
			sample := int16(v * envelope * 0.3 * math.MaxInt16)

			lo := byte(sample)
			hi := byte(sample >> 8)
			buf = append(buf, lo, hi, lo, hi)
		}
	}
	return buf
}

// SetMuted toggles audio for the session.
func SetMuted(e *ecs.ECS, muted bool) {
	components.Audio.Get(session(e)).Muted = muted
}

// PlayUISound plays a menu cue immediately, outside any ECS frame queue.
func PlayUISound(id cfg.SoundID, volume float64) {
	initGlobalAudio()
	if volume <= 0 {
		return
	}
	playSFX(id, volume)
}
