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

func CreatePlayer(ecs *ecs.ECS, space *resolv.Space, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Player.Width, cfg.Player.Height)
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	space.Add(obj)
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Facing:        cfg.DirectionRight,
		BaseMaxSpeed:  cfg.Player.MaxSpeed,
		BaseJumpPower: cfg.Player.JumpPower,
		BaseWidth:     cfg.Player.Width,
		BaseHeight:    cfg.Player.Height,
		JumpPower:     cfg.Player.JumpPower,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:  cfg.Player.Gravity,
		MaxSpeed: cfg.Player.MaxSpeed,
	})

	return player
}
