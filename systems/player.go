package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/dashware/skyhopper/components"
	cfg "github.com/dashware/skyhopper/config"
	"github.com/dashware/skyhopper/gamemath"
	"github.com/dashware/skyhopper/tags"
)

// UpdatePlayer advances player timers, applies movement input, integrates
// physics and resolves platform collisions. Runs after UpdateInput and before
// UpdateCollision.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	dt := delta(e)
	input := components.Input.Get(session(e))
	player := components.Player.Get(playerEntry)
	phys := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	if player.InvulnTimer > 0 {
		player.InvulnTimer -= dt
		if player.InvulnTimer < 0 {
			player.InvulnTimer = 0
		}
	}

	updatePowerUpTimers(player, phys, obj, dt)

	// Horizontal acceleration from input; friction when no direction held.
	accel := cfg.Player.MoveSpeed * dt
	if input.Action(cfg.ActionRun).Pressed {
		accel *= cfg.Player.RunMultiplier
	}
	left := input.Action(cfg.ActionMoveLeft).Pressed
	right := input.Action(cfg.ActionMoveRight).Pressed
	switch {
	case left && !right:
		phys.Velocity.X -= accel
		player.Facing = cfg.DirectionLeft
	case right && !left:
		phys.Velocity.X += accel
		player.Facing = cfg.DirectionRight
	default:
		phys.Velocity.X = gamemath.ApplyFriction(phys.Velocity.X, cfg.Player.Friction)
	}
	phys.Velocity.X = gamemath.ClampSpeed(phys.Velocity.X, phys.MaxSpeed)

	jump := input.Action(cfg.ActionJump)
	if jump.JustPressed && phys.Grounded {
		phys.Velocity.Y = -player.JumpPower
		player.JumpHeld = true
		QueueSound(e, cfg.SoundJump)
		SpawnBurst(e, obj.X+obj.W/2, obj.Y+obj.H, cfg.White)
	}
	// Releasing jump early cuts the ascent for variable jump height.
	if jump.JustReleased && player.JumpHeld {
		player.JumpHeld = false
		if phys.Velocity.Y < 0 {
			phys.Velocity.Y *= 0.5
		}
	}

	phys.Velocity.Y += phys.Gravity * dt

	landed := moveAndResolve(obj, phys, dt)
	for _, platformEntry := range landed {
		if !platformEntry.HasComponent(components.Platform) {
			continue
		}
		pd := components.Platform.Get(platformEntry)
		if pd.Kind == cfg.PlatformBreakable && !pd.Crumbling {
			pd.Crumbling = true
			pd.CrumbleTimer = cfg.Platform.CrumbleSeconds
		}
	}

	updatePlayerCosmetics(e, playerEntry, dt)
	checkFallOut(e, playerEntry)
}

// updatePowerUpTimers ticks every active power-up and reverts expired effects
// from the stored base values, never from the current stats.
func updatePowerUpTimers(player *components.PlayerData, phys *components.PhysicsData, obj *components.ObjectData, dt float64) {
	kept := player.PowerUps[:0]
	for _, t := range player.PowerUps {
		t.Remaining -= dt
		if t.Remaining > 0 {
			kept = append(kept, t)
			continue
		}
		switch t.Kind {
		case cfg.PowerUpSpeed:
			phys.MaxSpeed = player.BaseMaxSpeed
		case cfg.PowerUpJump:
			player.JumpPower = player.BaseJumpPower
		case cfg.PowerUpSize:
			// Grow back keeping the feet planted.
			obj.Y -= player.BaseHeight - obj.H
			obj.W = player.BaseWidth
			obj.H = player.BaseHeight
			obj.Update()
		case cfg.PowerUpInvincible:
			// Nothing stored; invincibility is presence in the list.
		}
	}
	player.PowerUps = kept
}

// updatePlayerCosmetics drives the run animation and the sprint dust trail.
func updatePlayerCosmetics(e *ecs.ECS, playerEntry *donburi.Entry, dt float64) {
	player := components.Player.Get(playerEntry)
	phys := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	moving := phys.Velocity.X > 1 || phys.Velocity.X < -1
	if moving && phys.Grounded {
		player.AnimTimer += dt
		if player.AnimTimer > 0.1 {
			player.AnimTimer = 0
			player.AnimFrame = (player.AnimFrame + 1) % 4
		}
		player.TrailTimer -= dt
		fast := phys.Velocity.X > player.BaseMaxSpeed*0.8 || phys.Velocity.X < -player.BaseMaxSpeed*0.8
		if fast && player.TrailTimer <= 0 {
			player.TrailTimer = cfg.Particles.TrailInterval
			SpawnTrail(e, obj.X+obj.W/2, obj.Y+obj.H, -player.Facing)
		}
	} else {
		player.AnimFrame = 0
		player.AnimTimer = 0
	}
}

// checkFallOut respawns the player (or ends the run) after falling below the
// stage.
func checkFallOut(e *ecs.ECS, playerEntry *donburi.Entry) {
	lv := level(e)
	if lv == nil {
		return
	}
	obj := components.Object.Get(playerEntry)
	if obj.Y <= lv.Height+cfg.Player.FallOutMargin {
		return
	}
	remaining := loseLife(e)
	QueueSound(e, cfg.SoundHurt)
	ScheduleImpactHaptics(e)
	if remaining <= 0 {
		triggerGameOver(e)
		return
	}
	RespawnPlayer(e, playerEntry)
}

// RespawnPlayer puts the player back at the spawn point with cleared velocity
// and a fresh invulnerability window.
func RespawnPlayer(e *ecs.ECS, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	phys := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	obj.X = cfg.Player.SpawnX
	obj.Y = cfg.Player.SpawnY
	obj.Update()
	phys.Velocity = gamemath.Vec2{}
	player.InvulnTimer = cfg.Player.InvulnSeconds
}
