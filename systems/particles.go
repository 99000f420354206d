package systems

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/dashware/skyhopper/archetypes"
	"github.com/dashware/skyhopper/components"
	cfg "github.com/dashware/skyhopper/config"
	"github.com/dashware/skyhopper/gamemath"
	"github.com/dashware/skyhopper/tags"
)

// UpdateParticles integrates particle motion and expires dead ones.
func UpdateParticles(e *ecs.ECS) {
	dt := delta(e)

	var dead []*donburi.Entry
	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		p.Life -= dt
		if p.Life <= 0 {
			dead = append(dead, entry)
			return
		}
		if p.Gravity {
			p.Velocity.Y += cfg.Player.Gravity * 0.5 * dt
		}
		p.Position.X += p.Velocity.X * dt
		p.Position.Y += p.Velocity.Y * dt
	})
	for _, entry := range dead {
		e.World.Remove(entry.Entity())
	}
}

// SpawnExplosion scatters debris in all directions; used for enemy deaths and
// breaking platforms.
func SpawnExplosion(e *ecs.ECS, x, y float64, c color.RGBA) {
	count := scaledCount(e, cfg.Particles.ExplosionCount)
	for i := 0; i < count; i++ {
		angle := rand.Float64() * math.Pi * 2
		speed := 80 + rand.Float64()*160
		spawnParticle(e, components.ParticleData{
			Kind:     components.ParticleExplosion,
			Position: gamemath.Vec2{X: x, Y: y},
			Velocity: gamemath.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle)*speed - 60},
			Life:     0.4 + rand.Float64()*0.4,
			MaxLife:  0.8,
			Size:     2 + rand.Float64()*3,
			Color:    c,
			Gravity:  true,
		})
	}
}

// SpawnSparkle floats glitter upward; used for pickups.
func SpawnSparkle(e *ecs.ECS, x, y float64, c color.RGBA) {
	count := scaledCount(e, cfg.Particles.SparkleCount)
	for i := 0; i < count; i++ {
		spawnParticle(e, components.ParticleData{
			Kind:     components.ParticleSparkle,
			Position: gamemath.Vec2{X: x + (rand.Float64()-0.5)*16, Y: y + (rand.Float64()-0.5)*16},
			Velocity: gamemath.Vec2{X: (rand.Float64() - 0.5) * 40, Y: -30 - rand.Float64()*50},
			Life:     0.3 + rand.Float64()*0.3,
			MaxLife:  0.6,
			Size:     1.5 + rand.Float64()*2,
			Color:    c,
		})
	}
}

// SpawnBurst is a directional puff; used for jumps and landings.
func SpawnBurst(e *ecs.ECS, x, y float64, c color.RGBA) {
	count := scaledCount(e, cfg.Particles.BurstCount)
	for i := 0; i < count; i++ {
		angle := math.Pi + rand.Float64()*math.Pi // upward half
		speed := 40 + rand.Float64()*80
		spawnParticle(e, components.ParticleData{
			Kind:     components.ParticleBurst,
			Position: gamemath.Vec2{X: x, Y: y},
			Velocity: gamemath.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed * 0.5},
			Life:     0.2 + rand.Float64()*0.25,
			MaxLife:  0.45,
			Size:     2 + rand.Float64()*2,
			Color:    c,
		})
	}
}

// SpawnTrail leaves a single dust puff behind a sprinting player. Trails are
// skipped entirely below full quality.
func SpawnTrail(e *ecs.ECS, x, y, direction float64) {
	if engine(e).Quality() < 1.0 {
		return
	}
	spawnParticle(e, components.ParticleData{
		Kind:     components.ParticleTrail,
		Position: gamemath.Vec2{X: x, Y: y - 2},
		Velocity: gamemath.Vec2{X: direction * 20, Y: -10 - rand.Float64()*10},
		Life:     0.25,
		MaxLife:  0.25,
		Size:     2.5,
		Color:    cfg.SlateGray,
	})
}

// scaledCount applies the adaptive quality multiplier, always emitting at
// least one particle.
func scaledCount(e *ecs.ECS, base int) int {
	count := int(float64(base) * engine(e).Quality())
	if count < 1 {
		count = 1
	}
	return count
}

func spawnParticle(e *ecs.ECS, data components.ParticleData) {
	if particleCount(e) >= cfg.Particles.MaxParticles {
		return
	}
	entry := archetypes.Particle.Spawn(e)
	components.Particle.SetValue(entry, data)
}

func particleCount(e *ecs.ECS) int {
	n := 0
	tags.Particle.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}
