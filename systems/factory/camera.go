package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/dashware/skyhopper/archetypes"
	"github.com/dashware/skyhopper/components"
	cfg "github.com/dashware/skyhopper/config"
	"github.com/dashware/skyhopper/gamemath"
)

func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position: gamemath.Vec2{
			X: x - float64(cfg.C.Width)/2,
			Y: y - float64(cfg.C.Height)/2,
		},
	})
	return camera
}
