package systems

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/dashware/skyhopper/config"
)

// UpdatePerformance samples the actual frame rate and ratchets the particle
// quality down one step when a mobile session runs under the acceptable
// fraction of its target FPS for a whole window. Quality never moves back up
// within a session.
func UpdatePerformance(e *ecs.ECS) {
	eng := engine(e)
	if !eng.Platform.Mobile {
		return
	}

	dt := delta(e)
	eng.FPSAccum += ebiten.ActualFPS()
	eng.FPSSamples++
	eng.FPSTimer += dt
	if eng.FPSTimer < cfg.Particles.FPSWindow {
		return
	}

	avg := eng.FPSAccum / float64(eng.FPSSamples)
	eng.FPSTimer = 0
	eng.FPSAccum = 0
	eng.FPSSamples = 0

	target := float64(eng.Settings.Graphics.TargetFPS)
	if target <= 0 {
		target = 60
	}
	if avg >= target*cfg.Particles.FPSThreshold {
		return
	}

	steps := cfg.Particles.QualitySteps
	if eng.QualityIdx+1 < len(steps) {
		eng.QualityIdx++
		eng.QualityStep = steps[eng.QualityIdx]
		log.Printf("Warning: frame rate %.1f below target %v, particle quality reduced to %.2f", avg, target, eng.QualityStep)
	}
}
