package factory

import (
	"math"
	"math/rand"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/dashware/skyhopper/archetypes"
	"github.com/dashware/skyhopper/components"
	cfg "github.com/dashware/skyhopper/config"
	"github.com/dashware/skyhopper/gamemath"
)

// FloatingPlatformCount returns how many floating platforms level n gets.
func FloatingPlatformCount(n int) int {
	capped := n
	if capped > cfg.LevelGen.FloatingLevelCap {
		capped = cfg.LevelGen.FloatingLevelCap
	}
	return cfg.LevelGen.FloatingBase + cfg.LevelGen.FloatingPerLevel*capped
}

// MovingPlatformCount returns how many moving platforms level n gets.
func MovingPlatformCount(n int) int {
	if n < cfg.LevelGen.MovingUnlockLevel {
		return 0
	}
	return cfg.LevelGen.MovingCount
}

// BreakablePlatformCount returns how many breakable platforms level n gets.
func BreakablePlatformCount(n int) int {
	if n < cfg.LevelGen.BreakableUnlockLevel {
		return 0
	}
	c := n - 1
	if c > cfg.LevelGen.BreakableMax {
		c = cfg.LevelGen.BreakableMax
	}
	return c
}

// EnemyCount returns how many enemies level n gets.
func EnemyCount(n int) int {
	return cfg.LevelGen.EnemyBase + n
}

// CollectibleCount returns how many collectible placements level n attempts.
func CollectibleCount(n int) int {
	return cfg.LevelGen.CollectibleBase + cfg.LevelGen.CollectiblePer*n
}

// PowerUpCount returns how many power-ups level n gets.
func PowerUpCount(n int) int {
	return cfg.LevelGen.PowerUpBase + n/2
}

// UnlockedEnemyKinds lists the enemy kinds eligible at level n, in kind order.
func UnlockedEnemyKinds(n int) []cfg.EnemyKind {
	var kinds []cfg.EnemyKind
	for k := cfg.EnemyKind(0); k < cfg.EnemyKindCount; k++ {
		if n >= cfg.Enemy.UnlockLevel[k] {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// LevelTheme picks the background theme for level n.
func LevelTheme(n int) cfg.Theme {
	themes := cfg.LevelGen.Themes
	return themes[n%len(themes)]
}

// GenerateLevel builds the whole stage for level number: ground, platform
// scatter, enemies, collectibles and power-ups. All placement randomness comes
// from rng so a seeded generator reproduces the same stage.
func GenerateLevel(e *ecs.ECS, space *resolv.Space, number int, rng *rand.Rand) *donburi.Entry {
	width := cfg.LevelGen.Width
	height := cfg.LevelGen.Height

	level := archetypes.Level.Spawn(e)
	components.Level.SetValue(level, components.LevelData{
		Number: number,
		Width:  width,
		Height: height,
		Theme:  LevelTheme(number),
	})

	// Solid floor across the whole stage, tiled so individual segments stay
	// small in the collision space.
	floorY := height - cfg.Platform.FloorHeight
	for x := 0.0; x < width; x += cfg.Platform.GroundTileWidth {
		w := cfg.Platform.GroundTileWidth
		if x+w > width {
			w = width - x
		}
		CreateGroundTile(e, space, x, floorY, w, cfg.Platform.FloorHeight)
	}

	// Floating platforms follow a sine wave across the stage with vertical
	// jitter, spread evenly in x.
	var platformRects []gamemath.Rect
	record := func(entry *donburi.Entry) {
		platformRects = append(platformRects, components.Object.Get(entry).Rect())
	}

	floatCount := FloatingPlatformCount(number)
	for i := 0; i < floatCount; i++ {
		t := float64(i) / float64(floatCount)
		x := 200 + t*(width-500)
		y := cfg.LevelGen.FloatingMinY +
			cfg.LevelGen.FloatingWaveAmp*(1+math.Sin(t*math.Pi*4))/2 +
			rng.Float64()*cfg.LevelGen.FloatingJitterY
		record(CreateFloatingPlatform(e, space, x, y))
	}

	for i := 0; i < BreakablePlatformCount(number); i++ {
		x := 300 + rng.Float64()*(width-700)
		y := cfg.LevelGen.FloatingMinY + rng.Float64()*(floorY-cfg.LevelGen.FloatingMinY-150)
		record(CreateBreakablePlatform(e, space, x, y))
	}

	movingCount := MovingPlatformCount(number)
	for i := 0; i < movingCount; i++ {
		x := width * float64(i+1) / float64(movingCount+1)
		y := cfg.LevelGen.FloatingMinY + 100 + rng.Float64()*120
		record(CreateMovingPlatform(e, space, x, y))
	}

	// Enemies patrol the floor, spread across the stage past the spawn area.
	kinds := UnlockedEnemyKinds(number)
	enemyCount := EnemyCount(number)
	for i := 0; i < enemyCount; i++ {
		kind := kinds[rng.Intn(len(kinds))]
		tc := cfg.Enemy.Types[kind]
		x := 400 + rng.Float64()*(width-800)
		y := floorY - tc.Height
		if kind == cfg.EnemyFlying {
			y = cfg.LevelGen.FloatingMinY + rng.Float64()*150
		}
		CreateEnemy(e, space, kind, x, y)
	}

	// Collectible placements that land inside a platform are skipped rather
	// than retried, so the actual count can come in under the target.
	for i := 0; i < CollectibleCount(number); i++ {
		kind := rollCollectibleKind(rng)
		tc := cfg.Collectibles[kind]
		x := 150 + rng.Float64()*(width-300)
		y := cfg.LevelGen.FloatingMinY - 60 + rng.Float64()*(floorY-cfg.LevelGen.FloatingMinY)
		candidate := gamemath.NewRect(x, y, tc.Size, tc.Size)
		if intersectsAny(candidate, platformRects) {
			continue
		}
		CreateCollectible(e, space, kind, x, y, rng.Float64()*math.Pi*2)
	}

	// Power-ups are placed exactly as rolled, even when the position overlaps
	// a platform; only collectibles get the overlap gate.
	for i := 0; i < PowerUpCount(number); i++ {
		kind := cfg.PowerUpKind(rng.Intn(int(cfg.PowerUpKindCount)))
		x := 300 + rng.Float64()*(width-600)
		y := cfg.LevelGen.FloatingMinY - 40 + rng.Float64()*(floorY-cfg.LevelGen.FloatingMinY-60)
		CreatePowerUp(e, space, kind, x, y)
	}

	return level
}

// rollCollectibleKind weights coins heaviest, stars rarest.
func rollCollectibleKind(rng *rand.Rand) cfg.CollectibleKind {
	r := rng.Float64()
	switch {
	case r < 0.70:
		return cfg.CollectibleCoin
	case r < 0.93:
		return cfg.CollectibleGem
	default:
		return cfg.CollectibleStar
	}
}

func intersectsAny(r gamemath.Rect, rects []gamemath.Rect) bool {
	for _, other := range rects {
		if r.Intersects(other) {
			return true
		}
	}
	return false
}
