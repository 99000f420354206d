package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	cfg "github.com/dashware/skyhopper/config"
	"github.com/dashware/skyhopper/scenes"
	"github.com/dashware/skyhopper/systems"
)

type Game struct {
	scene scenes.Scene
}

// ChangeScene switches to a new scene. A nil scene requests shutdown.
func (g *Game) ChangeScene(scene interface{}) {
	if scene == nil {
		g.scene = nil
		return
	}
	g.scene = scene.(scenes.Scene)
}

func (g *Game) Update() error {
	if g.scene == nil {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.scene != nil {
		g.scene.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func main() {
	settingsPath := flag.String("settings", "", "path to a settings.yaml overriding the default search order")
	flag.Parse()

	settings, err := cfg.LoadSettings(*settingsPath)
	if err != nil {
		log.Printf("Warning: %v, using defaults", err)
	}
	platform := cfg.DetectPlatform()

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: progress will not be saved")
	}

	g := &Game{}
	g.scene = scenes.NewMenuScene(g, settings, platform)

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle("Sky Hopper")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
