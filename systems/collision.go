package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/dashware/skyhopper/components"
	cfg "github.com/dashware/skyhopper/config"
	"github.com/dashware/skyhopper/tags"
)

// UpdateCollision handles player interactions: enemy contact (stomp or
// damage), collectible pickup and power-up pickup. Runs after movement so all
// positions are settled for the frame.
func UpdateCollision(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)
	playerRect := playerObj.Rect()

	// Enemies first so a stomp kill can't also collect through the corpse.
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		if !enemy.Alive() {
			return
		}
		obj := components.Object.Get(entry)
		if !playerRect.Intersects(obj.Rect()) {
			return
		}
		phys := components.Physics.Get(playerEntry)
		player := components.Player.Get(playerEntry)

		// A stomp is downward motion with the player above the enemy's top
		// edge. Spiky enemies cannot be stomped.
		stomp := phys.Velocity.Y > 0 &&
			playerRect.Y < obj.Y &&
			enemy.Kind != cfg.EnemySpiky
		if stomp || player.HasPowerUp(cfg.PowerUpInvincible) {
			enemy.Health--
			if stomp {
				phys.Velocity.Y = cfg.Player.StompBounce
			}
			awardScore(e, cfg.Score.Stomp)
			QueueSound(e, cfg.SoundStomp)
			ShakeCamera(e, cfg.Camera.HitShake/2)
			ScheduleHaptic(e, components.HapticLight, 0)
			return
		}
		damagePlayer(e, playerEntry, obj.X+obj.W/2)
	})

	var collected []*donburi.Entry
	tags.Collectible.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if playerRect.Intersects(obj.Rect()) {
			collected = append(collected, entry)
		}
	})
	for _, entry := range collected {
		collect(e, entry)
	}

	var picked []*donburi.Entry
	tags.PowerUp.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if playerRect.Intersects(obj.Rect()) {
			picked = append(picked, entry)
		}
	})
	for _, entry := range picked {
		applyPowerUp(e, playerEntry, entry)
	}
}

func collect(e *ecs.ECS, entry *donburi.Entry) {
	c := components.Collectible.Get(entry)
	obj := components.Object.Get(entry)

	awardScore(e, c.TypeConfig.Value)
	SpawnSparkle(e, obj.X+obj.W/2, obj.Y+obj.H/2, c.TypeConfig.Color)
	switch c.Kind {
	case cfg.CollectibleGem:
		QueueSound(e, cfg.SoundGem)
	case cfg.CollectibleStar:
		QueueSound(e, cfg.SoundStar)
	default:
		QueueSound(e, cfg.SoundCoin)
	}
	removeEntity(e, entry)
}

// applyPowerUp grants the power-up effect for the standard duration. Picking
// up an already-active kind refreshes its timer instead of stacking the
// effect again.
func applyPowerUp(e *ecs.ECS, playerEntry, entry *donburi.Entry) {
	p := components.PowerUp.Get(entry)
	obj := components.Object.Get(entry)
	player := components.Player.Get(playerEntry)
	phys := components.Physics.Get(playerEntry)
	playerObj := components.Object.Get(playerEntry)

	if i := player.PowerUpIndex(p.Kind); i >= 0 {
		player.PowerUps[i].Remaining = cfg.Player.PowerUpSeconds
	} else {
		player.PowerUps = append(player.PowerUps, components.PowerUpTimer{
			Kind:      p.Kind,
			Remaining: cfg.Player.PowerUpSeconds,
		})
		switch p.Kind {
		case cfg.PowerUpSpeed:
			phys.MaxSpeed = player.BaseMaxSpeed * cfg.Player.SpeedMultiplier
		case cfg.PowerUpJump:
			player.JumpPower = player.BaseJumpPower * cfg.Player.JumpMultiplier
		case cfg.PowerUpSize:
			// Shrink keeping the feet planted.
			playerObj.Y += playerObj.H - cfg.Player.ShrunkHeight
			playerObj.W = cfg.Player.ShrunkWidth
			playerObj.H = cfg.Player.ShrunkHeight
			playerObj.Update()
		case cfg.PowerUpInvincible:
			// Presence in the timer list is the whole effect.
		}
	}

	awardScore(e, p.TypeConfig.Value)
	SpawnSparkle(e, obj.X+obj.W/2, obj.Y+obj.H/2, p.TypeConfig.Color)
	QueueSound(e, cfg.SoundPowerUp)
	removeEntity(e, entry)
}

// damagePlayer applies enemy contact damage: life loss, knockback away from
// the enemy, the invulnerability window and hit feedback. No-ops while the
// player is invulnerable or invincible.
func damagePlayer(e *ecs.ECS, playerEntry *donburi.Entry, enemyCenterX float64) {
	player := components.Player.Get(playerEntry)
	if player.InvulnTimer > 0 || player.HasPowerUp(cfg.PowerUpInvincible) {
		return
	}
	phys := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	remaining := loseLife(e)

	away := cfg.DirectionLeft
	if obj.X+obj.W/2 > enemyCenterX {
		away = cfg.DirectionRight
	}
	phys.Velocity.X = away * cfg.Player.KnockbackX
	phys.Velocity.Y = cfg.Player.KnockbackY
	player.InvulnTimer = cfg.Player.InvulnSeconds

	QueueSound(e, cfg.SoundHurt)
	ShakeCamera(e, cfg.Camera.HitShake)
	ScheduleImpactHaptics(e)
	SpawnExplosion(e, obj.X+obj.W/2, obj.Y+obj.H/2, cfg.Red)

	if remaining <= 0 {
		triggerGameOver(e)
	}
}
