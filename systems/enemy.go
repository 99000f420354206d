package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/dashware/skyhopper/components"
	cfg "github.com/dashware/skyhopper/config"
	"github.com/dashware/skyhopper/tags"
)

// UpdateEnemy advances enemy patrol movement. Walkers reverse at walls and
// ledges; flyers bob around their anchor height and reverse at stage edges.
func UpdateEnemy(e *ecs.ECS) {
	dt := delta(e)
	lv := level(e)

	var dead []*donburi.Entry
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		phys := components.Physics.Get(entry)
		obj := components.Object.Get(entry)

		if !enemy.Alive() {
			dead = append(dead, entry)
			return
		}

		if enemy.Kind == cfg.EnemyFlying {
			updateFlyingEnemy(enemy, phys, obj, lv, dt)
			return
		}

		phys.Velocity.X = enemy.Direction * enemy.TypeConfig.Speed
		phys.Velocity.Y += phys.Gravity * dt

		wasGrounded := phys.Grounded
		moveAndResolve(obj, phys, dt)

		if phys.Velocity.X == 0 && enemy.Direction != 0 {
			// Resolution zeroed the horizontal push: hit a wall.
			enemy.Direction = -enemy.Direction
		} else if wasGrounded && phys.Grounded && atLedge(obj, enemy.Direction) {
			enemy.Direction = -enemy.Direction
		}

		if lv != nil && obj.Y > lv.Height+cfg.Player.FallOutMargin {
			dead = append(dead, entry)
		}
	})

	for _, entry := range dead {
		explodeEnemy(e, entry)
	}
}

func updateFlyingEnemy(enemy *components.EnemyData, phys *components.PhysicsData, obj *components.ObjectData, lv *components.LevelData, dt float64) {
	enemy.BobPhase += enemy.TypeConfig.BobFrequency * dt
	obj.X += enemy.Direction * enemy.TypeConfig.Speed * dt
	obj.Y = enemy.AnchorY + math.Sin(enemy.BobPhase)*enemy.TypeConfig.BobAmplitude
	obj.Update()

	if lv != nil && (obj.X < 0 || obj.X+obj.W > lv.Width) {
		enemy.Direction = -enemy.Direction
	}
	phys.Velocity.X = enemy.Direction * enemy.TypeConfig.Speed
}

// atLedge probes one step ahead and below the leading edge; no platform there
// means the walker is about to step off.
func atLedge(obj *components.ObjectData, direction float64) bool {
	probeX := direction * (obj.W/2 + 4)
	return obj.Check(probeX, 8, tags.ResolvPlatform) == nil
}

// explodeEnemy removes a dead or fallen enemy with its death effects.
func explodeEnemy(e *ecs.ECS, entry *donburi.Entry) {
	enemy := components.Enemy.Get(entry)
	obj := components.Object.Get(entry)
	SpawnExplosion(e, obj.X+obj.W/2, obj.Y+obj.H/2, enemy.TypeConfig.Color)
	removeEntity(e, entry)
}
