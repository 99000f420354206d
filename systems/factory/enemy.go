package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/dashware/skyhopper/archetypes"
	"github.com/dashware/skyhopper/components"
	cfg "github.com/dashware/skyhopper/config"
	"github.com/dashware/skyhopper/tags"
)

func CreateEnemy(ecs *ecs.ECS, space *resolv.Space, kind cfg.EnemyKind, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)
	tc := cfg.Enemy.Types[kind]

	obj := resolv.NewObject(x, y, tc.Width, tc.Height)
	obj.AddTags(tags.ResolvEnemy)
	obj.Data = enemy
	space.Add(obj)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:       kind,
		TypeConfig: &tc,
		Direction:  cfg.DirectionLeft,
		Health:     tc.Health,
		AnchorY:    y,
	})

	gravity := cfg.Enemy.Gravity
	if kind == cfg.EnemyFlying {
		// Flying enemies hold altitude; vertical motion is the bob offset.
		gravity = 0
	}
	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity:  gravity,
		MaxSpeed: tc.Speed,
	})

	return enemy
}
