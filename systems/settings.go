package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/dashware/skyhopper/components"
	cfg "github.com/dashware/skyhopper/config"
)

// ApplySettings swaps the session's settings in place: volumes, mute state
// and haptic enablement take effect immediately, no teardown.
func ApplySettings(e *ecs.ECS, settings cfg.Settings) {
	s := session(e)
	engine(e).Settings = settings

	audioData := components.Audio.Get(s)
	audioData.MasterVolume = settings.Audio.MasterVolume
	audioData.SFXVolume = settings.Audio.SFXVolume
	audioData.Muted = settings.Audio.Muted

	h := components.Haptics.Get(s)
	h.Enabled = settings.Controls.HapticFeedback
	if !h.Enabled {
		h.Pending = h.Pending[:0]
	}
}

// ApplyPlatform swaps the platform descriptor in place. Haptic support and
// the mobile quality ratchet eligibility follow the new descriptor; the
// quality level itself is untouched.
func ApplyPlatform(e *ecs.ECS, platform cfg.PlatformDescriptor) {
	s := session(e)
	engine(e).Platform = platform

	h := components.Haptics.Get(s)
	h.Supported = platform.SupportsHaptics
	if !h.Supported {
		h.Pending = h.Pending[:0]
	}
}

// SessionState returns a copy of the run's final counters, for handoff to the
// game-over screen after teardown.
func SessionState(e *ecs.ECS) components.GameStateData {
	gs := *gameState(e)
	gs.Achievements = append([]string(nil), gs.Achievements...)
	return gs
}
