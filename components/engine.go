package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/dashware/skyhopper/config"
)

// EngineCallbacks let the hosting shell observe simulation milestones.
// All fields are optional; nil callbacks are skipped.
type EngineCallbacks struct {
	OnScoreChange func(score int)
	OnLivesChange func(lives int)
	OnLevelChange func(level int)
	OnGameOver    func(finalScore int)
	OnAchievement func(id string)
}

// EngineData is the per-session singleton tying the simulation to the outside
// world: host callbacks, the detected platform, applied settings, and the
// adaptive-quality state.
type EngineData struct {
	Callbacks EngineCallbacks
	Platform  cfg.PlatformDescriptor
	Settings  cfg.Settings
	Paused    bool
	GameOver  bool

	// Session play time in seconds, excluding pauses. PlayTimeSaved marks the
	// portion already folded into the on-disk record.
	PlayTime      float64
	PlayTimeSaved float64

	// Adaptive particle quality. QualityStep indexes cfg.Particles.QualitySteps
	// and only ever moves forward (quality never recovers mid-session).
	QualityStep float64
	QualityIdx  int
	FPSAccum    float64
	FPSSamples  int
	FPSTimer    float64
}

// Quality returns the current particle quality multiplier.
func (e *EngineData) Quality() float64 {
	if e.QualityStep == 0 {
		return 1.0
	}
	return e.QualityStep
}

var Engine = donburi.NewComponentType[EngineData]()
