package components

import (
	"github.com/yohamta/donburi"

	"github.com/dashware/skyhopper/gamemath"
)

type CameraData struct {
	Position gamemath.Vec2
	// Shake intensity in pixels; decays geometrically toward zero each frame.
	Shake      float64
	ShakePhase float64
}

var Camera = donburi.NewComponentType[CameraData]()
