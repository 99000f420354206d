package factory

import (
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/dashware/skyhopper/archetypes"
	"github.com/dashware/skyhopper/components"
	cfg "github.com/dashware/skyhopper/config"
	"github.com/dashware/skyhopper/tags"
)

func createPlatform(ecs *ecs.ECS, space *resolv.Space, kind cfg.PlatformKind, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h)
	obj.AddTags(tags.ResolvPlatform)
	obj.Data = platform
	space.Add(obj)
	components.Object.SetValue(platform, components.ObjectData{Object: obj})

	components.Platform.SetValue(platform, components.PlatformData{
		Kind:    kind,
		AnchorX: x,
	})
	return platform
}

func CreateGroundTile(ecs *ecs.ECS, space *resolv.Space, x, y, w, h float64) *donburi.Entry {
	return createPlatform(ecs, space, cfg.PlatformGround, x, y, w, h)
}

func CreateFloatingPlatform(ecs *ecs.ECS, space *resolv.Space, x, y float64) *donburi.Entry {
	return createPlatform(ecs, space, cfg.PlatformFloating, x, y,
		cfg.Platform.FloatingWidth, cfg.Platform.FloatingHeight)
}

func CreateBreakablePlatform(ecs *ecs.ECS, space *resolv.Space, x, y float64) *donburi.Entry {
	return createPlatform(ecs, space, cfg.PlatformBreakable, x, y,
		cfg.Platform.FloatingWidth, cfg.Platform.FloatingHeight)
}

// CreateMovingPlatform builds a platform that patrols horizontally around its
// anchor using a ping-pong tween sequence.
func CreateMovingPlatform(ecs *ecs.ECS, space *resolv.Space, x, y float64) *donburi.Entry {
	platform := createPlatform(ecs, space, cfg.PlatformMoving, x, y,
		cfg.Platform.MovingWidth, cfg.Platform.MovingHeight)

	half := float32(cfg.Platform.MovingPeriod / 2)
	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(x), float32(x+cfg.Platform.MovingRange), half, ease.InOutSine),
		gween.New(float32(x+cfg.Platform.MovingRange), float32(x-cfg.Platform.MovingRange), float32(cfg.Platform.MovingPeriod), ease.InOutSine),
		gween.New(float32(x-cfg.Platform.MovingRange), float32(x), half, ease.InOutSine),
	)
	tw.SetLoop(-1)
	platform.AddComponent(components.Tween)
	components.Tween.Set(platform, tw)

	return platform
}
