package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/dashware/skyhopper/components"
	"github.com/dashware/skyhopper/tags"
)

// UpdatePickups animates collectibles (bob + spin) and power-ups (pulse).
// Pure presentation; pickup collision reads the bobbed position.
func UpdatePickups(e *ecs.ECS) {
	dt := delta(e)

	tags.Collectible.Each(e.World, func(entry *donburi.Entry) {
		c := components.Collectible.Get(entry)
		obj := components.Object.Get(entry)
		c.Phase += c.TypeConfig.BobFrequency * dt
		obj.Y = c.BaseY + math.Sin(c.Phase)*c.TypeConfig.BobAmplitude
		obj.Update()
	})

	tags.PowerUp.Each(e.World, func(entry *donburi.Entry) {
		p := components.PowerUp.Get(entry)
		p.Phase += 3.0 * dt
	})
}
