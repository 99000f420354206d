package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/dashware/skyhopper/components"
	cfg "github.com/dashware/skyhopper/config"
	"github.com/dashware/skyhopper/tags"
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(e *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	entry := e.World.Entry(e.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return entry
}

var (
	Player = newArchetype(
		tags.Player,
		components.Object,
		components.Physics,
		components.Player,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Object,
		components.Physics,
		components.Enemy,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Object,
		components.Platform,
	)
	Collectible = newArchetype(
		tags.Collectible,
		components.Object,
		components.Collectible,
	)
	PowerUp = newArchetype(
		tags.PowerUp,
		components.Object,
		components.PowerUp,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Level = newArchetype(
		components.Level,
	)
	// Session is the per-run singleton entity: game state, input buffers,
	// feedback queues, the frame clock and the engine bridge.
	Session = newArchetype(
		components.GameState,
		components.Input,
		components.Audio,
		components.Haptics,
		components.Clock,
		components.Engine,
	)
)
