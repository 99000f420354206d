package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/dashware/skyhopper/components"
	cfg "github.com/dashware/skyhopper/config"
	"github.com/dashware/skyhopper/tags"
)

// UpdatePlatforms drives moving platforms along their tween and ticks
// crumbling breakables down to removal. Riders standing on a moving platform
// are carried by its horizontal delta.
func UpdatePlatforms(e *ecs.ECS) {
	dt := delta(e)

	var crumbled []*donburi.Entry
	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		pd := components.Platform.Get(entry)
		obj := components.Object.Get(entry)

		if pd.Kind == cfg.PlatformMoving && entry.HasComponent(components.Tween) {
			tw := components.Tween.Get(entry)
			x, _, seqDone := tw.Update(float32(dt))
			if seqDone {
				tw.Reset()
			}
			dx := float64(x) - obj.X
			obj.X = float64(x)
			obj.Update()
			carryRiders(e, obj, dx)
		}

		if pd.Crumbling {
			pd.CrumbleTimer -= dt
			if pd.CrumbleTimer <= 0 {
				crumbled = append(crumbled, entry)
			}
		}
	})

	for _, entry := range crumbled {
		obj := components.Object.Get(entry)
		SpawnExplosion(e, obj.X+obj.W/2, obj.Y+obj.H/2, cfg.SlateGray)
		QueueSound(e, cfg.SoundBreak)
		removeEntity(e, entry)
	}
}

// carryRiders shifts any grounded entity standing on top of the platform by
// the platform's horizontal movement.
func carryRiders(e *ecs.ECS, platformObj *components.ObjectData, dx float64) {
	if dx == 0 {
		return
	}
	check := platformObj.Check(0, -4, tags.ResolvPlayer, tags.ResolvEnemy)
	if check == nil {
		return
	}
	for _, riderObj := range check.Objects {
		entry, ok := riderObj.Data.(*donburi.Entry)
		if !ok || !entry.HasComponent(components.Physics) {
			continue
		}
		if components.Physics.Get(entry).Grounded {
			riderObj.X += dx
			riderObj.Update()
		}
	}
}
