package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/dashware/skyhopper/config"
)

type CollectibleData struct {
	Kind       cfg.CollectibleKind
	TypeConfig *cfg.CollectibleTypeConfig
	BaseY      float64 // resting Y; the bob offset is folded into the object Y
	Phase      float64 // drives rotation and bob
}

var Collectible = donburi.NewComponentType[CollectibleData]()

type PowerUpData struct {
	Kind       cfg.PowerUpKind
	TypeConfig *cfg.PowerUpTypeConfig
	Phase      float64 // drives pulse and rotation
}

var PowerUp = donburi.NewComponentType[PowerUpData]()
