package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/dashware/skyhopper/config"
)

type EnemyData struct {
	Kind       cfg.EnemyKind
	TypeConfig *cfg.EnemyTypeConfig // cached reference to type configuration
	Direction  float64              // +1 or -1
	Health     int                  // 0 means removed by the level sweep

	// Flying kind motion state
	BobPhase float64
	AnchorY  float64 // vertical center the bob oscillates around
}

// Alive reports whether the enemy should stay in the level's live set.
func (e *EnemyData) Alive() bool {
	return e.Health > 0
}

var Enemy = donburi.NewComponentType[EnemyData]()
