package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/dashware/skyhopper/components"
	cfg "github.com/dashware/skyhopper/config"
)

// WhenRunning wraps a gameplay system so it only runs while the session is
// neither paused nor over.
func WhenRunning(fn func(*ecs.ECS)) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		eng := engine(e)
		if eng.Paused || eng.GameOver {
			return
		}
		fn(e)
	}
}

// UpdatePause toggles the pause state from input. Pausing cancels any
// scheduled haptic events.
func UpdatePause(e *ecs.ECS) {
	eng := engine(e)
	if eng.GameOver {
		return
	}
	input := components.Input.Get(session(e))
	if !input.Action(cfg.ActionPause).JustPressed {
		return
	}
	if eng.Paused {
		Resume(e)
	} else {
		Pause(e)
	}
}

// Pause suspends the simulation and cancels pending rumbles.
func Pause(e *ecs.ECS) {
	eng := engine(e)
	if eng.Paused {
		return
	}
	eng.Paused = true
	CancelHaptics(e)
}

// Resume continues a paused session.
func Resume(e *ecs.ECS) {
	engine(e).Paused = false
}

// DrawPause dims the screen and shows the pause banner.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	if !engine(e).Paused {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), cfg.BlackOverlay, false)

	face := HUDFace()
	drawLabel(screen, face, "PAUSED", float64(w)/2-30, float64(h)/2-20)
	drawLabel(screen, face, "press ESC to resume", float64(w)/2-75, float64(h)/2+8)
}
