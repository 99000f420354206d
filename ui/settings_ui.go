package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	cfg "github.com/dashware/skyhopper/config"
)

// SettingsUI is the ebitenui settings screen. It edits a working copy of the
// settings document; OnApply receives the result, OnBack discards it.
type SettingsUI struct {
	UI       *ebitenui.UI
	Settings cfg.Settings

	OnApply func(cfg.Settings)
	OnBack  func()

	// Widget references for updates
	particlesButton *widget.Button
	fpsButton       *widget.Button
	masterButton    *widget.Button
	sfxButton       *widget.Button
	mutedButton     *widget.Button
	hapticsButton   *widget.Button
	diffButton      *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
}

// NewSettingsUI builds the settings screen around a copy of current.
func NewSettingsUI(current cfg.Settings, onApply func(cfg.Settings), onBack func()) *SettingsUI {
	sui := &SettingsUI{
		Settings: current,
		OnApply:  onApply,
		OnBack:   onBack,
	}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *SettingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
}

func (sui *SettingsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("SETTINGS", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	sui.particlesButton = sui.cycleButton(sui.particlesLabel(), func() {
		sui.Settings.Graphics.ParticleEffects = !sui.Settings.Graphics.ParticleEffects
		sui.particlesButton.Text().Label = sui.particlesLabel()
	})
	contentContainer.AddChild(sui.particlesButton)

	sui.fpsButton = sui.cycleButton(sui.fpsLabel(), func() {
		if sui.Settings.Graphics.TargetFPS == 60 {
			sui.Settings.Graphics.TargetFPS = 30
		} else {
			sui.Settings.Graphics.TargetFPS = 60
		}
		sui.fpsButton.Text().Label = sui.fpsLabel()
	})
	contentContainer.AddChild(sui.fpsButton)

	sui.masterButton = sui.cycleButton(sui.masterLabel(), func() {
		sui.Settings.Audio.MasterVolume = cycleVolume(sui.Settings.Audio.MasterVolume)
		sui.masterButton.Text().Label = sui.masterLabel()
	})
	contentContainer.AddChild(sui.masterButton)

	sui.sfxButton = sui.cycleButton(sui.sfxLabel(), func() {
		sui.Settings.Audio.SFXVolume = cycleVolume(sui.Settings.Audio.SFXVolume)
		sui.sfxButton.Text().Label = sui.sfxLabel()
	})
	contentContainer.AddChild(sui.sfxButton)

	sui.mutedButton = sui.cycleButton(sui.mutedLabel(), func() {
		sui.Settings.Audio.Muted = !sui.Settings.Audio.Muted
		sui.mutedButton.Text().Label = sui.mutedLabel()
	})
	contentContainer.AddChild(sui.mutedButton)

	sui.hapticsButton = sui.cycleButton(sui.hapticsLabel(), func() {
		sui.Settings.Controls.HapticFeedback = !sui.Settings.Controls.HapticFeedback
		sui.hapticsButton.Text().Label = sui.hapticsLabel()
	})
	contentContainer.AddChild(sui.hapticsButton)

	sui.diffButton = sui.cycleButton(sui.diffLabel(), func() {
		sui.Settings.Gameplay.Difficulty = cycleDifficulty(sui.Settings.Gameplay.Difficulty)
		sui.diffButton.Text().Label = sui.diffLabel()
	})
	contentContainer.AddChild(sui.diffButton)

	buttonsContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)
	buttonsContainer.AddChild(sui.cycleButton("Apply", func() {
		if sui.OnApply != nil {
			sui.OnApply(sui.Settings)
		}
	}))
	buttonsContainer.AddChild(sui.cycleButton("Back", func() {
		if sui.OnBack != nil {
			sui.OnBack()
		}
	}))
	contentContainer.AddChild(buttonsContainer)

	rootContainer.AddChild(contentContainer)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (sui *SettingsUI) cycleButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(260, 26),
		),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(label, &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (sui *SettingsUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (sui *SettingsUI) particlesLabel() string {
	if sui.Settings.Graphics.ParticleEffects {
		return "Particles: On"
	}
	return "Particles: Off"
}

func (sui *SettingsUI) fpsLabel() string {
	return fmt.Sprintf("Target FPS: %.0f", sui.Settings.Graphics.TargetFPS)
}

func (sui *SettingsUI) masterLabel() string {
	return fmt.Sprintf("Master Volume: %.0f%%", sui.Settings.Audio.MasterVolume*100)
}

func (sui *SettingsUI) sfxLabel() string {
	return fmt.Sprintf("SFX Volume: %.0f%%", sui.Settings.Audio.SFXVolume*100)
}

func (sui *SettingsUI) mutedLabel() string {
	if sui.Settings.Audio.Muted {
		return "Sound: Muted"
	}
	return "Sound: On"
}

func (sui *SettingsUI) hapticsLabel() string {
	if sui.Settings.Controls.HapticFeedback {
		return "Haptics: On"
	}
	return "Haptics: Off"
}

func (sui *SettingsUI) diffLabel() string {
	return "Difficulty: " + sui.Settings.Gameplay.Difficulty
}

func cycleVolume(v float64) float64 {
	v += 0.25
	if v > 1.001 {
		v = 0
	}
	return v
}

func cycleDifficulty(d string) string {
	switch d {
	case "easy":
		return "normal"
	case "normal":
		return "hard"
	default:
		return "easy"
	}
}
