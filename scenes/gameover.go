package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/dashware/skyhopper/components"
	cfg "github.com/dashware/skyhopper/config"
	"github.com/dashware/skyhopper/systems"
)

// GameOverScene shows the run's final numbers and offers restart or menu.
type GameOverScene struct {
	sceneChanger SceneChanger
	settings     cfg.Settings
	platform     cfg.PlatformDescriptor
	final        components.GameStateData
}

func NewGameOverScene(sc SceneChanger, settings cfg.Settings, platform cfg.PlatformDescriptor, final components.GameStateData) *GameOverScene {
	return &GameOverScene{
		sceneChanger: sc,
		settings:     settings,
		platform:     platform,
		final:        final,
	}
}

func (gs *GameOverScene) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		gs.sceneChanger.ChangeScene(NewGameScene(gs.sceneChanger, gs.settings, gs.platform))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger, gs.settings, gs.platform))
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	w := float64(screen.Bounds().Dx())
	face := systems.HUDFace()

	title := &text.DrawOptions{}
	title.GeoM.Translate(w/2-80, 120)
	title.ColorScale.ScaleWithColor(cfg.Red)
	text.Draw(screen, "GAME OVER", &text.GoTextFace{Source: face.Source, Size: 30}, title)

	lines := []string{
		fmt.Sprintf("Score  %d", gs.final.Score),
		fmt.Sprintf("Best   %d", gs.final.HighScore),
		fmt.Sprintf("Level  %d", gs.final.CurrentLevel),
		"",
		"ENTER to play again   ESC for menu",
	}
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(w/2-130, 200+float64(i)*26)
		op.ColorScale.ScaleWithColor(cfg.White)
		text.Draw(screen, line, face, op)
	}
}
