package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/dashware/skyhopper/components"
	cfg "github.com/dashware/skyhopper/config"
	"github.com/dashware/skyhopper/systems"
	"github.com/dashware/skyhopper/systems/factory"
)

// GameScene runs the platformer session. It owns the ECS world and exposes
// the engine surface the host shell drives: pause/resume, mute, virtual
// input, settings and platform changes, teardown.
type GameScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settings     cfg.Settings
	platform     cfg.PlatformDescriptor
	callbacks    components.EngineCallbacks
	once         sync.Once

	lastTick      time.Time
	frameAccum    float64
	gameOverDelay float64
}

func NewGameScene(sc SceneChanger, settings cfg.Settings, platform cfg.PlatformDescriptor) *GameScene {
	return &GameScene{
		sceneChanger: sc,
		settings:     settings,
		platform:     platform,
	}
}

// SetCallbacks installs host callbacks; must be called before the first
// Update to be seen from session start.
func (gs *GameScene) SetCallbacks(cb components.EngineCallbacks) {
	gs.callbacks = cb
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)

	now := time.Now()
	dt := now.Sub(gs.lastTick).Seconds()
	gs.lastTick = now

	// Coarse frame limiting on mobile: skip whole updates until the target
	// frame interval has accumulated.
	if gs.platform.Mobile {
		target := gs.settings.Graphics.TargetFPS
		if target > 0 && target < 60 {
			gs.frameAccum += dt
			interval := 1.0 / float64(target)
			if gs.frameAccum < interval {
				return
			}
			dt = gs.frameAccum
			gs.frameAccum = 0
		}
	}

	systems.SetDelta(gs.ecs, dt)
	gs.ecs.Update()

	// Linger on the final frame so the game-over cue plays before handoff.
	if eng := gs.engine(); eng != nil && eng.GameOver {
		gs.gameOverDelay += dt
		if gs.gameOverDelay >= 1.5 {
			state := systems.SessionState(gs.ecs)
			gs.Destroy()
			gs.sceneChanger.ChangeScene(NewGameOverScene(gs.sceneChanger, gs.settings, gs.platform, state))
		}
	}
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameScene) configure() {
	systems.PreloadAllSFX()

	e := ecs.NewECS(donburi.NewWorld())

	factory.CreateSession(e, gs.settings, gs.platform, gs.callbacks)
	space := factory.CreateSpace(e,
		int(cfg.LevelGen.Width), int(cfg.LevelGen.Height)+256, 16, 16)
	factory.CreatePlayer(e, components.Space.Get(space), cfg.Player.SpawnX, cfg.Player.SpawnY)
	factory.CreateCamera(e, cfg.Player.SpawnX, cfg.Player.SpawnY)
	systems.GenerateStage(e, 1)

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateHaptics)

	// Gameplay systems, gated on pause/game-over
	e.AddSystem(systems.WhenRunning(systems.UpdatePlayer))
	e.AddSystem(systems.WhenRunning(systems.UpdateEnemy))
	e.AddSystem(systems.WhenRunning(systems.UpdatePlatforms))
	e.AddSystem(systems.WhenRunning(systems.UpdatePickups))
	e.AddSystem(systems.WhenRunning(systems.UpdateCamera))
	e.AddSystem(systems.WhenRunning(systems.UpdateParticles))
	e.AddSystem(systems.WhenRunning(systems.UpdateCollision))
	e.AddSystem(systems.WhenRunning(systems.UpdateLevelProgress))
	e.AddSystem(systems.UpdatePerformance)

	// Renderers
	e.AddRenderer(cfg.Default, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawParticles)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	gs.ecs = e
	gs.lastTick = time.Now()
}

func (gs *GameScene) engine() *components.EngineData {
	if gs.ecs == nil {
		return nil
	}
	entry, ok := components.Engine.First(gs.ecs.World)
	if !ok {
		return nil
	}
	return components.Engine.Get(entry)
}

// Pause suspends the simulation.
func (gs *GameScene) Pause() {
	if gs.ecs != nil {
		systems.Pause(gs.ecs)
	}
}

// Resume continues a paused session.
func (gs *GameScene) Resume() {
	if gs.ecs != nil {
		systems.Resume(gs.ecs)
	}
}

// SetMuted toggles audio output.
func (gs *GameScene) SetMuted(muted bool) {
	if gs.ecs != nil {
		systems.SetMuted(gs.ecs, muted)
	}
}

// HandleVirtualInput injects the current on-screen control snapshot. Flags
// persist until the next call and merge with physical input.
func (gs *GameScene) HandleVirtualInput(pressed map[cfg.ActionID]bool) {
	if gs.ecs != nil {
		systems.SetVirtualInput(gs.ecs, pressed)
	}
}

// ApplySettings adjusts the running session in place; no teardown or level
// regeneration.
func (gs *GameScene) ApplySettings(settings cfg.Settings) {
	gs.settings = settings
	if gs.ecs == nil {
		return
	}
	systems.ApplySettings(gs.ecs, settings)
}

// ApplyPlatform swaps the platform descriptor in place, re-evaluating haptic
// support and the adaptive-quality eligibility.
func (gs *GameScene) ApplyPlatform(platform cfg.PlatformDescriptor) {
	gs.platform = platform
	if gs.ecs == nil {
		return
	}
	systems.ApplyPlatform(gs.ecs, platform)
}

// Destroy tears the session down: cancels scheduled haptics and saves
// progress. The scene is unusable afterwards.
func (gs *GameScene) Destroy() {
	if gs.ecs == nil {
		return
	}
	systems.CancelHaptics(gs.ecs)
	systems.SaveProgress(gs.ecs)
	gs.ecs = nil
}
