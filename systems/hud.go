package systems

import (
	"bytes"
	"fmt"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/dashware/skyhopper/components"
	cfg "github.com/dashware/skyhopper/config"
	"github.com/dashware/skyhopper/tags"
)

const hudMargin = 10

var (
	hudFace     *text.GoTextFace
	hudFaceOnce sync.Once
)

// HUDFace returns the shared HUD font face.
func HUDFace() *text.GoTextFace {
	hudFaceOnce.Do(func() {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Fatalf("failed to load HUD font: %v", err)
		}
		hudFace = &text.GoTextFace{Source: source, Size: 16}
	})
	return hudFace
}

// DrawHUD renders score, lives, level and active power-up timers in the
// screen corners.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	gs := gameState(e)
	face := HUDFace()

	drawLabel(screen, face, fmt.Sprintf("SCORE %d", gs.Score), hudMargin, hudMargin)
	drawLabel(screen, face, fmt.Sprintf("HI %d", gs.HighScore), hudMargin, hudMargin+22)
	drawLabel(screen, face, fmt.Sprintf("LEVEL %d", gs.CurrentLevel), hudMargin, hudMargin+44)

	// Lives as heart squares in the top-right corner.
	w := screen.Bounds().Dx()
	for i := 0; i < gs.Lives; i++ {
		x := float32(w - hudMargin - 18 - i*22)
		vector.DrawFilledRect(screen, x, hudMargin, 16, 14, cfg.Red, false)
	}

	drawPowerUpTimers(e, screen, face)
}

func drawPowerUpTimers(e *ecs.ECS, screen *ebiten.Image, face *text.GoTextFace) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	y := float64(hudMargin + 70)
	for _, t := range player.PowerUps {
		c, ok := cfg.PowerUps[t.Kind]
		if !ok {
			continue
		}
		vector.DrawFilledRect(screen, hudMargin, float32(y)+3, 10, 10, c.Color, false)
		drawLabel(screen, face, fmt.Sprintf("%s %.0fs", t.Kind, t.Remaining), hudMargin+16, y)
		y += 20
	}
}

func drawLabel(screen *ebiten.Image, face *text.GoTextFace, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x+1, y+1)
	op.ColorScale.ScaleWithColor(cfg.BlackOverlay)
	text.Draw(screen, s, face, op)

	op = &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(cfg.White)
	text.Draw(screen, s, face, op)
}
