package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/dashware/skyhopper/archetypes"
	"github.com/dashware/skyhopper/components"
	cfg "github.com/dashware/skyhopper/config"
)

func CreateCollectible(ecs *ecs.ECS, space *resolv.Space, kind cfg.CollectibleKind, x, y, phase float64) *donburi.Entry {
	collectible := archetypes.Collectible.Spawn(ecs)
	tc := cfg.Collectibles[kind]

	obj := resolv.NewObject(x, y, tc.Size, tc.Size)
	obj.Data = collectible
	space.Add(obj)
	components.Object.SetValue(collectible, components.ObjectData{Object: obj})

	components.Collectible.SetValue(collectible, components.CollectibleData{
		Kind:       kind,
		TypeConfig: &tc,
		BaseY:      y,
		Phase:      phase,
	})
	return collectible
}

func CreatePowerUp(ecs *ecs.ECS, space *resolv.Space, kind cfg.PowerUpKind, x, y float64) *donburi.Entry {
	powerUp := archetypes.PowerUp.Spawn(ecs)
	tc := cfg.PowerUps[kind]

	obj := resolv.NewObject(x, y, tc.Size, tc.Size)
	obj.Data = powerUp
	space.Add(obj)
	components.Object.SetValue(powerUp, components.ObjectData{Object: obj})

	components.PowerUp.SetValue(powerUp, components.PowerUpData{
		Kind:       kind,
		TypeConfig: &tc,
	})
	return powerUp
}
