package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/dashware/skyhopper/config"
)

// LevelData describes the current stage. The entity collections themselves
// live in the world; the level entity carries the stage parameters. Stages are
// regenerated wholesale on every transition; only the player entity persists.
type LevelData struct {
	Number int
	Width  float64
	Height float64
	Theme  cfg.Theme
}

var Level = donburi.NewComponentType[LevelData]()
