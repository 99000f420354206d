package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	cfg "github.com/dashware/skyhopper/config"
	"github.com/dashware/skyhopper/systems"
	"github.com/dashware/skyhopper/ui"
)

type menuOption int

const (
	menuStart menuOption = iota
	menuSettings
	menuQuit
	menuOptionCount
)

// MenuScene displays the main menu and the settings screen.
type MenuScene struct {
	sceneChanger SceneChanger
	settings     cfg.Settings
	platform     cfg.PlatformDescriptor

	selected   menuOption
	settingsUI *ui.SettingsUI
	record     *systems.SaveRecord
	loaded     bool
}

// NewMenuScene creates the main menu.
func NewMenuScene(sc SceneChanger, settings cfg.Settings, platform cfg.PlatformDescriptor) *MenuScene {
	return &MenuScene{
		sceneChanger: sc,
		settings:     settings,
		platform:     platform,
	}
}

func (ms *MenuScene) Update() {
	if !ms.loaded {
		ms.record = systems.LoadProgress()
		ms.loaded = true
	}

	if ms.settingsUI != nil {
		ms.settingsUI.UI.Update()
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		ms.selected = (ms.selected + menuOptionCount - 1) % menuOptionCount
		systems.PlayUISound(cfg.SoundMenuNavigate, ms.uiVolume())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		ms.selected = (ms.selected + 1) % menuOptionCount
		systems.PlayUISound(cfg.SoundMenuNavigate, ms.uiVolume())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		systems.PlayUISound(cfg.SoundMenuSelect, ms.uiVolume())
		ms.activate()
	}
}

func (ms *MenuScene) uiVolume() float64 {
	if ms.settings.Audio.Muted {
		return 0
	}
	return ms.settings.Audio.MasterVolume * ms.settings.Audio.SFXVolume
}

func (ms *MenuScene) activate() {
	switch ms.selected {
	case menuStart:
		ms.sceneChanger.ChangeScene(NewGameScene(ms.sceneChanger, ms.settings, ms.platform))
	case menuSettings:
		ms.openSettings()
	case menuQuit:
		log.Println("Exiting")
		// Clean shutdown through Ebiten's termination error is handled by the
		// game wrapper; os.Exit here would skip deferred saves.
		ms.sceneChanger.ChangeScene(nil)
	}
}

func (ms *MenuScene) openSettings() {
	ms.settingsUI = ui.NewSettingsUI(ms.settings,
		func(updated cfg.Settings) {
			ms.settings = updated
			if err := cfg.SaveSettings(updated); err != nil {
				log.Printf("Warning: Could not save settings: %v", err)
			}
			ms.settingsUI = nil
		},
		func() {
			ms.settingsUI = nil
		},
	)
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ms.settingsUI != nil {
		ms.settingsUI.UI.Draw(screen)
		return
	}

	w := float64(screen.Bounds().Dx())
	face := systems.HUDFace()

	title := &text.DrawOptions{}
	title.GeoM.Translate(w/2-80, 90)
	title.ColorScale.ScaleWithColor(cfg.BrightYellow)
	text.Draw(screen, "SKY HOPPER", &text.GoTextFace{Source: face.Source, Size: 32}, title)

	labels := []string{"Start Game", "Settings", "Quit"}
	for i, label := range labels {
		y := 200 + float64(i)*36
		c := color.RGBA{180, 180, 180, 255}
		if menuOption(i) == ms.selected {
			c = cfg.White
			vector.DrawFilledRect(screen, float32(w/2-110), float32(y+2), 8, 14, cfg.BrightYellow, false)
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(w/2-90, y)
		op.ColorScale.ScaleWithColor(c)
		text.Draw(screen, label, face, op)
	}

	if ms.record != nil {
		op := &text.DrawOptions{}
		op.GeoM.Translate(w/2-90, 340)
		op.ColorScale.ScaleWithColor(cfg.Gold)
		text.Draw(screen, fmt.Sprintf("High score %d  -  best level %d", ms.record.HighScore, ms.record.HighestLevel), face, op)
	}
}
