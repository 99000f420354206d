package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default_settings.yaml
var defaultSettingsYAML []byte

// GraphicsSettings holds display and quality options.
type GraphicsSettings struct {
	Resolution      string  `yaml:"resolution"` // "WxH", e.g. "1280x720"
	ParticleEffects bool    `yaml:"particleEffects"`
	Shadows         bool    `yaml:"shadows"`
	AntiAliasing    bool    `yaml:"antiAliasing"`
	TargetFPS       float64 `yaml:"targetFPS"`
}

// AudioSettings holds volume options.
type AudioSettings struct {
	MasterVolume float64 `yaml:"masterVolume"`
	MusicVolume  float64 `yaml:"musicVolume"`
	SFXVolume    float64 `yaml:"sfxVolume"`
	Muted        bool    `yaml:"muted"`
}

// ControlSettings holds input options.
type ControlSettings struct {
	TouchSensitivity    float64 `yaml:"touchSensitivity"`
	HapticFeedback      bool    `yaml:"hapticFeedback"`
	VirtualJoystickSize float64 `yaml:"virtualJoystickSize"`
	ButtonSize          float64 `yaml:"buttonSize"`
	KeyboardLayout      string  `yaml:"keyboardLayout"`
}

// GameplaySettings holds gameplay options.
type GameplaySettings struct {
	Difficulty       string `yaml:"difficulty"`
	AutoSave         bool   `yaml:"autoSave"`
	ShowTutorials    bool   `yaml:"showTutorials"`
	PauseOnFocusLoss bool   `yaml:"pauseOnFocusLoss"`
}

// Settings is the user-facing configuration document. The core reads it but
// never mutates or validates it; out-of-range values pass through as-is.
type Settings struct {
	Graphics GraphicsSettings `yaml:"graphics"`
	Audio    AudioSettings    `yaml:"audio"`
	Controls ControlSettings  `yaml:"controls"`
	Gameplay GameplaySettings `yaml:"gameplay"`
}

// DefaultSettings returns the embedded default settings document.
func DefaultSettings() Settings {
	var s Settings
	if err := yaml.Unmarshal(defaultSettingsYAML, &s); err != nil {
		// The embedded default is part of the build; a parse failure here is
		// a programming error, fall back to sane hardcoded values.
		return Settings{
			Graphics: GraphicsSettings{Resolution: "960x540", ParticleEffects: true, TargetFPS: 60},
			Audio:    AudioSettings{MasterVolume: 1.0, MusicVolume: 0.75, SFXVolume: 1.0},
			Controls: ControlSettings{TouchSensitivity: 1.0, HapticFeedback: true, VirtualJoystickSize: 1.0, ButtonSize: 1.0, KeyboardLayout: "qwerty"},
			Gameplay: GameplaySettings{Difficulty: "normal", AutoSave: true, ShowTutorials: true, PauseOnFocusLoss: true},
		}
	}
	return s
}

// LoadSettings loads the settings document.
// Search order: customPath -> ~/.skyhopper/settings.yaml -> ./configs/settings.yaml -> embedded default
func LoadSettings(customPath string) (Settings, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSettings(), fmt.Errorf("failed to read settings %s: %w", customPath, err)
		}
		var s Settings
		if err := yaml.Unmarshal(data, &s); err != nil {
			return DefaultSettings(), fmt.Errorf("failed to parse settings %s: %w", customPath, err)
		}
		return s, nil
	}

	if userPath := userSettingsPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			var s Settings
			if err := yaml.Unmarshal(data, &s); err == nil {
				return s, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "settings.yaml")); err == nil {
		var s Settings
		if err := yaml.Unmarshal(data, &s); err == nil {
			return s, nil
		}
	}

	return DefaultSettings(), nil
}

// SaveSettings writes the settings document to the user settings path.
func SaveSettings(s Settings) error {
	path := userSettingsPath()
	if path == "" {
		return fmt.Errorf("no user settings path available")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings dir: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}
	return nil
}

func userSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyhopper", "settings.yaml")
}
