package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/dashware/skyhopper/gamemath"
)

type ObjectData struct {
	*resolv.Object
}

// Rect builds the entity's current bounding box as a fresh value.
func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.NewRect(o.X, o.Y, o.W, o.H)
}

var Object = donburi.NewComponentType[ObjectData]()
