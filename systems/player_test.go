package systems

import (
	"math"
	"testing"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/dashware/skyhopper/components"
	cfg "github.com/dashware/skyhopper/config"
	"github.com/dashware/skyhopper/systems/factory"
	"github.com/dashware/skyhopper/tags"
)

// newTestWorld builds an ECS with a session, a collision space and a player,
// ready for driving individual systems by hand.
func newTestWorld(t *testing.T) (*ecs.ECS, *resolv.Space, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSession(e, cfg.DefaultSettings(), cfg.PlatformDescriptor{}, components.EngineCallbacks{})
	spaceEntry := factory.CreateSpace(e, int(cfg.LevelGen.Width), int(cfg.LevelGen.Height)+256, 16, 16)
	sp := components.Space.Get(spaceEntry)
	player := factory.CreatePlayer(e, sp, cfg.Player.SpawnX, cfg.Player.SpawnY)
	return e, sp, player
}

func TestMoveAndResolveLandsOnPlatform(t *testing.T) {
	e, sp, playerEntry := newTestWorld(t)
	_ = e

	platform := factory.CreateGroundTile(e, sp, 0, 500, 400, 50)
	_ = platform

	obj := components.Object.Get(playerEntry)
	phys := components.Physics.Get(playerEntry)

	// Drop the player straight down into the platform.
	obj.X, obj.Y = 100, 440
	obj.Update()
	phys.Velocity.Y = 300

	landed := moveAndResolve(obj, phys, 0.1)

	if !phys.Grounded {
		t.Fatal("player not grounded after landing")
	}
	if phys.Velocity.Y != 0 {
		t.Errorf("vertical velocity = %v, want 0", phys.Velocity.Y)
	}
	if got := obj.Y + obj.H; math.Abs(got-500) > 1e-9 {
		t.Errorf("player bottom = %v, want flush at 500", got)
	}
	if len(landed) != 1 {
		t.Errorf("landed on %d platforms, want 1", len(landed))
	}
}

func TestMoveAndResolvePushesOutHorizontally(t *testing.T) {
	e, sp, playerEntry := newTestWorld(t)
	_ = e

	// Tall wall to the right; horizontal overlap is the smaller axis.
	factory.CreateGroundTile(e, sp, 300, 0, 50, 400)

	obj := components.Object.Get(playerEntry)
	phys := components.Physics.Get(playerEntry)

	obj.X, obj.Y = 260, 100
	obj.Update()
	phys.Velocity.X = 200
	phys.Velocity.Y = 0

	moveAndResolve(obj, phys, 0.1)

	if phys.Velocity.X != 0 {
		t.Errorf("horizontal velocity = %v, want 0 after hitting wall", phys.Velocity.X)
	}
	if got := obj.X + obj.W; got > 300+1e-9 {
		t.Errorf("player right edge = %v, want <= 300", got)
	}
	if phys.Grounded {
		t.Error("wall hit should not set grounded")
	}
}

func TestPowerUpExpiryRestoresBaseValues(t *testing.T) {
	e, _, playerEntry := newTestWorld(t)

	player := components.Player.Get(playerEntry)
	phys := components.Physics.Get(playerEntry)

	// Speed boost active with almost no time left.
	phys.MaxSpeed = player.BaseMaxSpeed * cfg.Player.SpeedMultiplier
	player.JumpPower = player.BaseJumpPower * cfg.Player.JumpMultiplier
	player.PowerUps = []components.PowerUpTimer{
		{Kind: cfg.PowerUpSpeed, Remaining: 0.001},
		{Kind: cfg.PowerUpJump, Remaining: 5.0},
	}

	SetDelta(e, 1.0/60.0)
	UpdatePlayer(e)

	if phys.MaxSpeed != player.BaseMaxSpeed {
		t.Errorf("MaxSpeed = %v, want base %v restored", phys.MaxSpeed, player.BaseMaxSpeed)
	}
	if player.JumpPower == player.BaseJumpPower {
		t.Error("jump boost expired early, its timer had time left")
	}
	if len(player.PowerUps) != 1 || player.PowerUps[0].Kind != cfg.PowerUpJump {
		t.Errorf("remaining power-ups = %v, want only the jump boost", player.PowerUps)
	}
}

func TestInvulnTimerCountsDown(t *testing.T) {
	e, _, playerEntry := newTestWorld(t)

	player := components.Player.Get(playerEntry)
	player.InvulnTimer = 0.01

	SetDelta(e, 1.0/60.0)
	UpdatePlayer(e)

	if player.InvulnTimer != 0 {
		t.Errorf("InvulnTimer = %v, want clamped to 0", player.InvulnTimer)
	}
}

func TestFrictionStopsPlayerWithoutInput(t *testing.T) {
	e, _, playerEntry := newTestWorld(t)

	phys := components.Physics.Get(playerEntry)
	phys.Velocity.X = 100

	SetDelta(e, 1.0/60.0)
	UpdatePlayer(e)

	want := 100 * cfg.Player.Friction
	if math.Abs(phys.Velocity.X-want) > 1e-9 {
		t.Errorf("velocity after friction = %v, want %v", phys.Velocity.X, want)
	}
}

func TestStompKillsEnemyAndBounces(t *testing.T) {
	e, sp, playerEntry := newTestWorld(t)

	enemy := factory.CreateEnemy(e, sp, cfg.EnemyGoomba, 200, 300)
	enemyObj := components.Object.Get(enemy)

	obj := components.Object.Get(playerEntry)
	phys := components.Physics.Get(playerEntry)

	h := components.Haptics.Get(session(e))
	h.Enabled = true
	h.Supported = true

	// Falling onto the enemy from above, overlapping its top.
	obj.X = enemyObj.X
	obj.Y = enemyObj.Y - obj.H + 4
	obj.Update()
	phys.Velocity.Y = 150

	UpdateCollision(e)

	ed := components.Enemy.Get(enemy)
	if ed.Health != 0 {
		t.Errorf("enemy health = %d, want 0 after stomp", ed.Health)
	}
	if phys.Velocity.Y != cfg.Player.StompBounce {
		t.Errorf("bounce velocity = %v, want %v", phys.Velocity.Y, cfg.Player.StompBounce)
	}
	if gs := components.GameState.Get(session(e)); gs.Score != cfg.Score.Stomp {
		t.Errorf("score = %d, want %d", gs.Score, cfg.Score.Stomp)
	}
	if len(h.Pending) != 1 || h.Pending[0].Strength != components.HapticLight {
		t.Errorf("stomp haptics = %v, want one light pulse", h.Pending)
	}
}

func TestEnemyContactDamagesPlayer(t *testing.T) {
	e, sp, playerEntry := newTestWorld(t)

	enemy := factory.CreateEnemy(e, sp, cfg.EnemySpiky, 200, 300)
	enemyObj := components.Object.Get(enemy)

	obj := components.Object.Get(playerEntry)
	phys := components.Physics.Get(playerEntry)
	player := components.Player.Get(playerEntry)

	// Walking into the spiky enemy from the left, no downward motion.
	obj.X = enemyObj.X - obj.W + 4
	obj.Y = enemyObj.Y
	obj.Update()
	phys.Velocity.Y = 0

	UpdateCollision(e)

	gs := components.GameState.Get(session(e))
	if gs.Lives != cfg.Player.StartingLives-1 {
		t.Errorf("lives = %d, want %d", gs.Lives, cfg.Player.StartingLives-1)
	}
	if player.InvulnTimer != cfg.Player.InvulnSeconds {
		t.Errorf("InvulnTimer = %v, want %v", player.InvulnTimer, cfg.Player.InvulnSeconds)
	}
	if phys.Velocity.X != cfg.DirectionLeft*cfg.Player.KnockbackX {
		t.Errorf("knockback X = %v, want %v", phys.Velocity.X, cfg.DirectionLeft*cfg.Player.KnockbackX)
	}

	// A second hit during the invulnerability window does nothing.
	UpdateCollision(e)
	if gs.Lives != cfg.Player.StartingLives-1 {
		t.Errorf("invulnerable player lost another life: %d", gs.Lives)
	}
}

func TestStompDoesNotWorkOnSpiky(t *testing.T) {
	e, sp, playerEntry := newTestWorld(t)

	enemy := factory.CreateEnemy(e, sp, cfg.EnemySpiky, 200, 300)
	enemyObj := components.Object.Get(enemy)

	obj := components.Object.Get(playerEntry)
	phys := components.Physics.Get(playerEntry)

	obj.X = enemyObj.X
	obj.Y = enemyObj.Y - obj.H + 4
	obj.Update()
	phys.Velocity.Y = 150

	UpdateCollision(e)

	if ed := components.Enemy.Get(enemy); ed.Health != ed.TypeConfig.Health {
		t.Errorf("spiky enemy took stomp damage: health %d", ed.Health)
	}
	if gs := components.GameState.Get(session(e)); gs.Lives != cfg.Player.StartingLives-1 {
		t.Errorf("lives = %d, want the player hurt instead", gs.Lives)
	}
}

func TestCollectiblePickupAwardsValue(t *testing.T) {
	e, sp, playerEntry := newTestWorld(t)

	obj := components.Object.Get(playerEntry)
	factory.CreateCollectible(e, sp, cfg.CollectibleGem, obj.X, obj.Y, 0)

	UpdateCollision(e)

	if gs := components.GameState.Get(session(e)); gs.Score != cfg.Collectibles[cfg.CollectibleGem].Value {
		t.Errorf("score = %d, want %d", gs.Score, cfg.Collectibles[cfg.CollectibleGem].Value)
	}
	count := 0
	tags.Collectible.Each(e.World, func(*donburi.Entry) { count++ })
	if count != 0 {
		t.Errorf("collectible still present after pickup")
	}
}

func TestPowerUpPickupRefreshesNotStacks(t *testing.T) {
	e, sp, playerEntry := newTestWorld(t)

	obj := components.Object.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	phys := components.Physics.Get(playerEntry)

	factory.CreatePowerUp(e, sp, cfg.PowerUpSpeed, obj.X, obj.Y)
	UpdateCollision(e)

	if !player.HasPowerUp(cfg.PowerUpSpeed) {
		t.Fatal("speed power-up not active after pickup")
	}
	if phys.MaxSpeed != player.BaseMaxSpeed*cfg.Player.SpeedMultiplier {
		t.Errorf("MaxSpeed = %v, want boosted", phys.MaxSpeed)
	}

	// Age the timer, then pick up the same kind again: the timer refreshes
	// and the multiplier must not compound.
	player.PowerUps[0].Remaining = 1.0
	factory.CreatePowerUp(e, sp, cfg.PowerUpSpeed, obj.X, obj.Y)
	UpdateCollision(e)

	if len(player.PowerUps) != 1 {
		t.Errorf("power-up timers = %v, want a single refreshed entry", player.PowerUps)
	}
	if player.PowerUps[0].Remaining != cfg.Player.PowerUpSeconds {
		t.Errorf("refreshed timer = %v, want %v", player.PowerUps[0].Remaining, cfg.Player.PowerUpSeconds)
	}
	if phys.MaxSpeed != player.BaseMaxSpeed*cfg.Player.SpeedMultiplier {
		t.Errorf("MaxSpeed = %v, multiplier must not stack", phys.MaxSpeed)
	}
}
