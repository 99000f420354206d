package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/dashware/skyhopper/components"
	cfg "github.com/dashware/skyhopper/config"
	"github.com/dashware/skyhopper/tags"
)

// Background gradient cache; rebuilt when the theme changes.
var (
	bgImage *ebiten.Image
	bgTheme cfg.Theme
)

// DrawBackground fills the screen with the level theme's vertical gradient.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	lv := level(e)
	if lv == nil {
		screen.Fill(color.Black)
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if bgImage == nil || bgTheme != lv.Theme || bgImage.Bounds().Dx() != w || bgImage.Bounds().Dy() != h {
		bgImage = buildGradient(w, h, lv.Theme)
		bgTheme = lv.Theme
	}
	screen.DrawImage(bgImage, nil)
}

func buildGradient(w, h int, theme cfg.Theme) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	for y := 0; y < h; y += 4 {
		t := float64(y) / float64(h)
		c := lerpColor(theme.Top, theme.Bottom, t)
		vector.DrawFilledRect(img, 0, float32(y), float32(w), 4, c, false)
	}
	return img
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), 255}
}

// DrawWorld renders platforms, pickups, enemies and the player with the
// camera transform applied. Off-screen entities are culled.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy := CameraOffset(e)
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	visible := func(obj *components.ObjectData) bool {
		x, y := obj.X+ox, obj.Y+oy
		return x+obj.W >= -64 && x <= w+64 && y+obj.H >= -64 && y <= h+64
	}

	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if visible(obj) {
			drawPlatform(screen, entry, obj, ox, oy)
		}
	})
	tags.Collectible.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if visible(obj) {
			drawCollectible(screen, entry, obj, ox, oy)
		}
	})
	tags.PowerUp.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if visible(obj) {
			drawPowerUp(screen, entry, obj, ox, oy)
		}
	})
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if visible(obj) {
			drawEnemy(screen, entry, obj, ox, oy)
		}
	})
	if playerEntry, ok := tags.Player.First(e.World); ok {
		drawPlayer(screen, playerEntry, ox, oy)
	}
}

func drawPlatform(screen *ebiten.Image, entry *donburi.Entry, obj *components.ObjectData, ox, oy float64) {
	pd := components.Platform.Get(entry)
	x, y := float32(obj.X+ox), float32(obj.Y+oy)
	w, h := float32(obj.W), float32(obj.H)

	var c color.RGBA
	switch pd.Kind {
	case cfg.PlatformGround:
		c = cfg.DarkBrown
	case cfg.PlatformMoving:
		c = cfg.SlateGray
	case cfg.PlatformBreakable:
		c = cfg.Brown
		if pd.Crumbling {
			// Flicker while the crumble timer runs out.
			if int(pd.CrumbleTimer*20)%2 == 0 {
				c.A = 140
			}
		}
	default:
		c = cfg.Green
	}
	vector.DrawFilledRect(screen, x, y, w, h, c, false)
	// Grass lip on top of solid platforms.
	if pd.Kind == cfg.PlatformGround || pd.Kind == cfg.PlatformFloating {
		vector.DrawFilledRect(screen, x, y, w, 4, cfg.Green, false)
	}
}

func drawCollectible(screen *ebiten.Image, entry *donburi.Entry, obj *components.ObjectData, ox, oy float64) {
	c := components.Collectible.Get(entry)
	cx := float32(obj.X + ox + obj.W/2)
	cy := float32(obj.Y + oy + obj.H/2)

	// Spin by squashing the horizontal radius.
	spin := float32(math.Abs(math.Cos(c.Phase * c.TypeConfig.SpinSpeed / c.TypeConfig.BobFrequency)))
	r := float32(c.TypeConfig.Size) / 2
	vector.DrawFilledCircle(screen, cx, cy, r, c.TypeConfig.Color, true)
	if spin < 0.6 {
		inner := c.TypeConfig.Color
		inner.R = inner.R / 2
		inner.G = inner.G / 2
		inner.B = inner.B / 2
		vector.DrawFilledCircle(screen, cx, cy, r*spin, inner, true)
	}
}

func drawPowerUp(screen *ebiten.Image, entry *donburi.Entry, obj *components.ObjectData, ox, oy float64) {
	p := components.PowerUp.Get(entry)
	pulse := float32(1 + 0.15*math.Sin(p.Phase))
	half := float32(obj.W) / 2 * pulse
	cx := float32(obj.X + ox + obj.W/2)
	cy := float32(obj.Y + oy + obj.H/2)
	vector.DrawFilledRect(screen, cx-half, cy-half, half*2, half*2, p.TypeConfig.Color, false)
	vector.DrawFilledRect(screen, cx-half/2, cy-half/2, half, half, cfg.White, false)
}

func drawEnemy(screen *ebiten.Image, entry *donburi.Entry, obj *components.ObjectData, ox, oy float64) {
	enemy := components.Enemy.Get(entry)
	x, y := float32(obj.X+ox), float32(obj.Y+oy)
	w, h := float32(obj.W), float32(obj.H)

	vector.DrawFilledRect(screen, x, y, w, h, enemy.TypeConfig.Color, false)
	if enemy.Kind == cfg.EnemySpiky {
		// Spike row along the top.
		for sx := x; sx < x+w-4; sx += 8 {
			vector.DrawFilledRect(screen, sx+2, y-4, 4, 4, cfg.Red, false)
		}
	}
	// Eye on the leading side.
	eyeX := x + w*0.25
	if enemy.Direction > 0 {
		eyeX = x + w*0.75
	}
	vector.DrawFilledCircle(screen, eyeX, y+h*0.3, 3, cfg.White, true)
}

func drawPlayer(screen *ebiten.Image, playerEntry *donburi.Entry, ox, oy float64) {
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	// Blink while invulnerable.
	if player.InvulnTimer > 0 && int(player.InvulnTimer*10)%2 == 0 {
		return
	}

	x, y := float32(obj.X+ox), float32(obj.Y+oy)
	w, h := float32(obj.W), float32(obj.H)

	body := cfg.PlayerBlue
	if player.HasPowerUp(cfg.PowerUpInvincible) {
		// Rainbow flicker keyed to the animation accumulator.
		switch player.AnimFrame % 3 {
		case 0:
			body = cfg.BrightYellow
		case 1:
			body = cfg.Orange
		default:
			body = cfg.Cyan
		}
	}
	vector.DrawFilledRect(screen, x, y, w, h, body, false)

	eyeX := x + w*0.3
	if player.Facing > 0 {
		eyeX = x + w*0.7
	}
	vector.DrawFilledCircle(screen, eyeX, y+h*0.25, 3, cfg.White, true)
}

// DrawParticles renders every live particle, faded by remaining life.
func DrawParticles(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy := CameraOffset(e)
	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		c := p.Color
		if p.MaxLife > 0 {
			c.A = uint8(255 * p.Life / p.MaxLife)
		}
		vector.DrawFilledCircle(screen,
			float32(p.Position.X+ox), float32(p.Position.Y+oy),
			float32(p.Size), c, false)
	})
}
