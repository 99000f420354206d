package factory

import (
	"math/rand"
	"testing"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/dashware/skyhopper/components"
	cfg "github.com/dashware/skyhopper/config"
	"github.com/dashware/skyhopper/tags"
)

func TestFloatingPlatformCount(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 10},
		{2, 12},
		{3, 14},
		{5, 18},
		{6, 18},  // capped
		{50, 18}, // capped
	}
	for _, tt := range tests {
		if got := FloatingPlatformCount(tt.level); got != tt.want {
			t.Errorf("FloatingPlatformCount(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestMovingPlatformCount(t *testing.T) {
	if got := MovingPlatformCount(2); got != 0 {
		t.Errorf("MovingPlatformCount(2) = %d, want 0", got)
	}
	if got := MovingPlatformCount(3); got != 2 {
		t.Errorf("MovingPlatformCount(3) = %d, want 2", got)
	}
	if got := MovingPlatformCount(10); got != 2 {
		t.Errorf("MovingPlatformCount(10) = %d, want 2", got)
	}
}

func TestEntityCounts(t *testing.T) {
	tests := []struct {
		level            int
		wantEnemies      int
		wantCollectibles int
		wantPowerUps     int
	}{
		{1, 4, 18, 2},
		{2, 5, 21, 3},
		{5, 8, 30, 4},
	}
	for _, tt := range tests {
		if got := EnemyCount(tt.level); got != tt.wantEnemies {
			t.Errorf("EnemyCount(%d) = %d, want %d", tt.level, got, tt.wantEnemies)
		}
		if got := CollectibleCount(tt.level); got != tt.wantCollectibles {
			t.Errorf("CollectibleCount(%d) = %d, want %d", tt.level, got, tt.wantCollectibles)
		}
		if got := PowerUpCount(tt.level); got != tt.wantPowerUps {
			t.Errorf("PowerUpCount(%d) = %d, want %d", tt.level, got, tt.wantPowerUps)
		}
	}
}

func TestUnlockedEnemyKinds(t *testing.T) {
	tests := []struct {
		level int
		want  []cfg.EnemyKind
	}{
		{1, []cfg.EnemyKind{cfg.EnemyGoomba, cfg.EnemyKoopa}},
		{2, []cfg.EnemyKind{cfg.EnemyGoomba, cfg.EnemyKoopa, cfg.EnemySpiky}},
		{3, []cfg.EnemyKind{cfg.EnemyGoomba, cfg.EnemyKoopa, cfg.EnemySpiky}},
		{4, []cfg.EnemyKind{cfg.EnemyGoomba, cfg.EnemyKoopa, cfg.EnemySpiky, cfg.EnemyFlying}},
	}
	for _, tt := range tests {
		got := UnlockedEnemyKinds(tt.level)
		if len(got) != len(tt.want) {
			t.Errorf("UnlockedEnemyKinds(%d) = %v, want %v", tt.level, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("UnlockedEnemyKinds(%d)[%d] = %v, want %v", tt.level, i, got[i], tt.want[i])
			}
		}
	}
}

func TestLevelThemeCycles(t *testing.T) {
	n := len(cfg.LevelGen.Themes)
	for level := 1; level <= 2*n; level++ {
		want := cfg.LevelGen.Themes[level%n]
		if got := LevelTheme(level); got != want {
			t.Errorf("LevelTheme(%d) = %v, want %v", level, got, want)
		}
	}
}

func TestGenerateLevelPopulatesWorld(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	space := resolv.NewSpace(int(cfg.LevelGen.Width), int(cfg.LevelGen.Height)+256, 16, 16)
	rng := rand.New(rand.NewSource(42))

	levelEntry := GenerateLevel(e, space, 1, rng)

	lv := components.Level.Get(levelEntry)
	if lv.Number != 1 || lv.Width != cfg.LevelGen.Width || lv.Height != cfg.LevelGen.Height {
		t.Errorf("level data = %+v", lv)
	}

	count := func(tag *donburi.ComponentType[donburi.Tag]) int {
		n := 0
		tag.Each(e.World, func(*donburi.Entry) { n++ })
		return n
	}

	if got := count(tags.Enemy); got != EnemyCount(1) {
		t.Errorf("enemy count = %d, want %d", got, EnemyCount(1))
	}
	// Collectibles inside platforms are skipped, never retried: the count can
	// only come in at or under the target.
	if got := count(tags.Collectible); got > CollectibleCount(1) || got == 0 {
		t.Errorf("collectible count = %d, want 1..%d", got, CollectibleCount(1))
	}
	// Power-ups have no position-validity gate: every roll places one.
	if got := count(tags.PowerUp); got != PowerUpCount(1) {
		t.Errorf("power-up count = %d, want exactly %d", got, PowerUpCount(1))
	}

	// Level 1 has no moving platforms; floating count plus the ground tiles.
	groundTiles := int(cfg.LevelGen.Width / cfg.Platform.GroundTileWidth)
	wantPlatforms := groundTiles + FloatingPlatformCount(1)
	if got := count(tags.Platform); got != wantPlatforms {
		t.Errorf("platform count = %d, want %d", got, wantPlatforms)
	}
}

func TestGenerateLevelDeterministic(t *testing.T) {
	layout := func() []float64 {
		e := ecs.NewECS(donburi.NewWorld())
		space := resolv.NewSpace(int(cfg.LevelGen.Width), int(cfg.LevelGen.Height)+256, 16, 16)
		GenerateLevel(e, space, 3, rand.New(rand.NewSource(7)))

		var xs []float64
		tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
			xs = append(xs, components.Object.Get(entry).X)
		})
		return xs
	}

	a, b := layout(), layout()
	if len(a) != len(b) {
		t.Fatalf("runs differ in enemy count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("enemy %d at %v vs %v, same seed should reproduce the stage", i, a[i], b[i])
		}
	}
}
