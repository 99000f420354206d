package systems

import (
	"math/rand"
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/dashware/skyhopper/components"
	cfg "github.com/dashware/skyhopper/config"
	"github.com/dashware/skyhopper/gamemath"
	"github.com/dashware/skyhopper/systems/factory"
	"github.com/dashware/skyhopper/tags"
)

// UpdateLevelProgress advances to the next level once the player crosses the
// completion line at the right edge of the stage.
func UpdateLevelProgress(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	lv := level(e)
	if lv == nil {
		return
	}
	obj := components.Object.Get(playerEntry)
	if obj.X <= lv.Width-cfg.LevelGen.CompleteMargin {
		return
	}
	AdvanceLevel(e)
}

// AdvanceLevel tears down the current stage, awards the completion bonus and
// generates the next one. The player entity persists across levels; only its
// position and velocity reset.
func AdvanceLevel(e *ecs.ECS) {
	gs := gameState(e)
	newLevel := gs.CurrentLevel + 1
	gs.CurrentLevel = newLevel

	awardScore(e, cfg.Score.LevelBonusBase*newLevel)
	QueueSound(e, cfg.SoundLevelComplete)
	ScheduleImpactHaptics(e)
	checkLevelAchievements(e)

	if cb := engine(e).Callbacks.OnLevelChange; cb != nil {
		cb(newLevel)
	}

	clearStage(e)
	GenerateStage(e, newLevel)

	if playerEntry, ok := tags.Player.First(e.World); ok {
		player := components.Player.Get(playerEntry)
		phys := components.Physics.Get(playerEntry)
		obj := components.Object.Get(playerEntry)
		obj.X = cfg.Player.SpawnX
		obj.Y = cfg.Player.SpawnY
		obj.Update()
		phys.Velocity = gamemath.Vec2{}
		player.InvulnTimer = 0
	}

	SaveProgress(e)
}

// GenerateStage builds the entities for the given level number.
func GenerateStage(e *ecs.ECS, number int) {
	factory.GenerateLevel(e, space(e), number, stageRand)
}

// clearStage removes every per-level entity: platforms, enemies, pickups,
// particles and the level record itself.
func clearStage(e *ecs.ECS) {
	var doomed []*donburi.Entry
	collect := func(entry *donburi.Entry) { doomed = append(doomed, entry) }
	tags.Platform.Each(e.World, collect)
	tags.Enemy.Each(e.World, collect)
	tags.Collectible.Each(e.World, collect)
	tags.PowerUp.Each(e.World, collect)
	tags.Particle.Each(e.World, collect)
	components.Level.Each(e.World, collect)
	for _, entry := range doomed {
		removeEntity(e, entry)
	}
}

// stageRand feeds all stage layout randomness.
var stageRand = rand.New(rand.NewSource(time.Now().UnixNano()))
