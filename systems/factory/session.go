package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/dashware/skyhopper/archetypes"
	"github.com/dashware/skyhopper/components"
	cfg "github.com/dashware/skyhopper/config"
)

// CreateSession spawns the run singleton carrying game state, input buffers,
// audio/haptic queues, the frame clock and the engine bridge.
func CreateSession(ecs *ecs.ECS, settings cfg.Settings, platform cfg.PlatformDescriptor, callbacks components.EngineCallbacks) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)

	components.GameState.SetValue(session, components.GameStateData{
		Lives:        cfg.Player.StartingLives,
		CurrentLevel: 1,
	})
	components.Audio.SetValue(session, components.AudioData{
		MasterVolume: settings.Audio.MasterVolume,
		SFXVolume:    settings.Audio.SFXVolume,
		Muted:        settings.Audio.Muted,
	})
	components.Haptics.SetValue(session, components.HapticsData{
		Enabled:   settings.Controls.HapticFeedback,
		Supported: platform.SupportsHaptics,
	})
	components.Clock.SetValue(session, components.ClockData{DT: 1.0 / 60.0})
	components.Engine.SetValue(session, components.EngineData{
		Callbacks:   callbacks,
		Platform:    platform,
		Settings:    settings,
		QualityStep: cfg.Particles.QualitySteps[0],
	})
	return session
}
