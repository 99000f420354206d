package components

import (
	"image/color"

	"github.com/yohamta/donburi"

	"github.com/dashware/skyhopper/gamemath"
)

// ParticleKind identifies a transient visual effect variant.
type ParticleKind int

const (
	ParticleExplosion ParticleKind = iota
	ParticleSparkle
	ParticleBurst
	ParticleTrail
)

type ParticleData struct {
	Kind     ParticleKind
	Position gamemath.Vec2
	Velocity gamemath.Vec2
	Life     float64 // seconds remaining
	MaxLife  float64
	Size     float64
	Color    color.RGBA
	Gravity  bool // explosion debris falls; sparkles float
}

var Particle = donburi.NewComponentType[ParticleData]()
