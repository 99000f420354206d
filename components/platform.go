package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"

	cfg "github.com/dashware/skyhopper/config"
)

type PlatformData struct {
	Kind    cfg.PlatformKind
	AnchorX float64 // origin for moving platforms

	// Breakable state
	Crumbling    bool
	CrumbleTimer float64 // seconds until removal once crumbling
}

var Platform = donburi.NewComponentType[PlatformData]()

// Tween drives moving-platform oscillation as a looping gween sequence.
var Tween = donburi.NewComponentType[gween.Sequence]()
