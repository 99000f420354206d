package components

import (
	"github.com/yohamta/donburi"

	"github.com/dashware/skyhopper/gamemath"
)

type PhysicsData struct {
	Velocity gamemath.Vec2
	Gravity  float64
	MaxSpeed float64
	// Grounded is recomputed from scratch every frame: false unless this
	// frame's collision resolution snapped the entity onto a platform top.
	Grounded bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
