package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/dashware/skyhopper/components"
)

// session returns the run singleton entry. It exists for the lifetime of the
// game scene; systems assume it is present.
func session(e *ecs.ECS) *donburi.Entry {
	entry, _ := components.Engine.First(e.World)
	return entry
}

// delta returns the current frame's delta time in seconds.
func delta(e *ecs.ECS) float64 {
	return components.Clock.Get(session(e)).DT
}

// SetDelta records the frame's delta time. The scene calls this once per tick
// before any system runs; dt is capped at 1/60 so a stalled frame cannot
// teleport entities through geometry.
func SetDelta(e *ecs.ECS, dt float64) {
	if dt > 1.0/60.0 {
		dt = 1.0 / 60.0
	}
	components.Clock.Get(session(e)).DT = dt

	if eng := engine(e); !eng.Paused && !eng.GameOver {
		eng.PlayTime += dt
	}
}

func gameState(e *ecs.ECS) *components.GameStateData {
	return components.GameState.Get(session(e))
}

func engine(e *ecs.ECS) *components.EngineData {
	return components.Engine.Get(session(e))
}

func space(e *ecs.ECS) *resolv.Space {
	entry, _ := components.Space.First(e.World)
	return components.Space.Get(entry)
}

func level(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

// removeEntity takes the entity's collision object out of the space before
// removing the entity itself.
func removeEntity(e *ecs.ECS, entry *donburi.Entry) {
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	e.World.Remove(entry.Entity())
}
