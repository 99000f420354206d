package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/dashware/skyhopper/config"
)

// PowerUpTimer is one active power-up effect. The list is processed once per
// tick; kinds are unique within it.
type PowerUpTimer struct {
	Kind      cfg.PowerUpKind
	Remaining float64 // seconds
}

type PlayerData struct {
	Facing      float64 // cfg.DirectionLeft or cfg.DirectionRight
	InvulnTimer float64 // seconds remaining; 0 = vulnerable

	// Active power-up timers. Expiry restores from the stored base values
	// below, never from the current (possibly modified) stats.
	PowerUps []PowerUpTimer

	BaseMaxSpeed  float64
	BaseJumpPower float64
	BaseWidth     float64
	BaseHeight    float64

	// Effective jump power; modified by the jump power-up.
	JumpPower float64

	AnimFrame  int
	AnimTimer  float64
	TrailTimer float64
	JumpHeld   bool
}

// PowerUpIndex returns the index of kind in the timer list, or -1.
func (p *PlayerData) PowerUpIndex(kind cfg.PowerUpKind) int {
	for i := range p.PowerUps {
		if p.PowerUps[i].Kind == kind {
			return i
		}
	}
	return -1
}

// HasPowerUp reports whether kind is currently active.
func (p *PlayerData) HasPowerUp(kind cfg.PowerUpKind) bool {
	return p.PowerUpIndex(kind) >= 0
}

var Player = donburi.NewComponentType[PlayerData]()
