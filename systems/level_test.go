package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/yohamta/donburi"

	"github.com/dashware/skyhopper/components"
	cfg "github.com/dashware/skyhopper/config"
	"github.com/dashware/skyhopper/gamemath"
	"github.com/dashware/skyhopper/systems/factory"
	"github.com/dashware/skyhopper/tags"
)

func TestLevelCompletionAdvancesAndResetsPlayer(t *testing.T) {
	e, sp, playerEntry := newTestWorld(t)
	factory.GenerateLevel(e, sp, 1, rand.New(rand.NewSource(11)))

	obj := components.Object.Get(playerEntry)
	phys := components.Physics.Get(playerEntry)

	// Just short of the line: nothing happens.
	obj.X = cfg.LevelGen.Width - cfg.LevelGen.CompleteMargin - 1
	obj.Update()
	UpdateLevelProgress(e)
	if gs := gameState(e); gs.CurrentLevel != 1 {
		t.Fatalf("level advanced before the completion line: %d", gs.CurrentLevel)
	}

	obj.X = cfg.LevelGen.Width - cfg.LevelGen.CompleteMargin + 1
	obj.Update()
	phys.Velocity = gamemath.Vec2{X: 250, Y: -40}

	UpdateLevelProgress(e)

	gs := gameState(e)
	if gs.CurrentLevel != 2 {
		t.Errorf("level = %d, want 2", gs.CurrentLevel)
	}
	if want := cfg.Score.LevelBonusBase * 2; gs.Score != want {
		t.Errorf("score = %d, want completion bonus %d", gs.Score, want)
	}
	if obj.X != cfg.Player.SpawnX || obj.Y != cfg.Player.SpawnY {
		t.Errorf("player at (%v, %v), want spawn (%v, %v)", obj.X, obj.Y, cfg.Player.SpawnX, cfg.Player.SpawnY)
	}
	if phys.Velocity.X != 0 || phys.Velocity.Y != 0 {
		t.Errorf("velocity = %+v, want zeroed", phys.Velocity)
	}
	if lv := level(e); lv == nil || lv.Number != 2 {
		t.Errorf("regenerated level data = %+v, want number 2", lv)
	}

	// The new stage is fully populated.
	enemies := 0
	tags.Enemy.Each(e.World, func(*donburi.Entry) { enemies++ })
	if enemies != factory.EnemyCount(2) {
		t.Errorf("enemy count after advance = %d, want %d", enemies, factory.EnemyCount(2))
	}
}

func TestPlayerAtRestOnGroundHoldsPosition(t *testing.T) {
	e, sp, playerEntry := newTestWorld(t)
	factory.CreateGroundTile(e, sp, 0, 500, 600, 50)

	obj := components.Object.Get(playerEntry)
	phys := components.Physics.Get(playerEntry)

	restY := 500 - obj.H
	obj.X, obj.Y = 100, restY
	obj.Update()
	phys.Velocity = gamemath.Vec2{}

	SetDelta(e, 1.0/60.0)
	for i := 0; i < 60; i++ {
		UpdatePlayer(e)
		if !phys.Grounded {
			t.Fatalf("frame %d: player not grounded at rest", i)
		}
	}

	if math.Abs(obj.Y-restY) > 1e-6 {
		t.Errorf("resting Y drifted to %v, want %v", obj.Y, restY)
	}
	if phys.Velocity.X != 0 {
		t.Errorf("resting velocity X = %v, want 0", phys.Velocity.X)
	}
	if phys.Velocity.Y != 0 {
		t.Errorf("resting velocity Y = %v, want 0 after resolution", phys.Velocity.Y)
	}
}
