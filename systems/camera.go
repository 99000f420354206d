package systems

import (
	"math"

	"github.com/yohamta/donburi/ecs"

	"github.com/dashware/skyhopper/components"
	cfg "github.com/dashware/skyhopper/config"
	"github.com/dashware/skyhopper/gamemath"
	"github.com/dashware/skyhopper/tags"
)

// UpdateCamera eases the view toward the player and decays any active shake.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)
	lv := level(e)
	if lv == nil {
		return
	}

	screenW := float64(cfg.C.Width)
	screenH := float64(cfg.C.Height)

	targetX := playerObj.X + playerObj.W/2 - screenW/2
	targetY := playerObj.Y + playerObj.H/2 - screenH/2

	// Keep the view inside the stage.
	targetX = gamemath.Clamp(targetX, 0, lv.Width-screenW)
	targetY = gamemath.Clamp(targetY, 0, lv.Height-screenH)

	camera.Position.X = gamemath.Lerp(camera.Position.X, targetX, cfg.Camera.FollowSmoothing)
	camera.Position.Y = gamemath.Lerp(camera.Position.Y, targetY, cfg.Camera.FollowSmoothing)

	if camera.Shake > 0 {
		camera.ShakePhase += 1.0
		camera.Shake *= cfg.Camera.ShakeDecay
		if camera.Shake < cfg.Camera.ShakeMin {
			camera.Shake = 0
		}
	}
}

// ShakeCamera kicks the shake intensity up to at least the given amount.
func ShakeCamera(e *ecs.ECS, intensity float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	if intensity > camera.Shake {
		camera.Shake = intensity
	}
}

// CameraOffset returns the world-to-screen translation including shake.
func CameraOffset(e *ecs.ECS) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	ox := -camera.Position.X
	oy := -camera.Position.Y
	if camera.Shake > 0 {
		ox += math.Sin(camera.ShakePhase*1.1) * camera.Shake
		oy += math.Cos(camera.ShakePhase*1.3) * camera.Shake
	}
	return ox, oy
}
