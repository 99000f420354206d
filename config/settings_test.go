package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.Graphics.Resolution != "960x540" {
		t.Errorf("resolution = %q, want 960x540", s.Graphics.Resolution)
	}
	if s.Graphics.TargetFPS != 60 {
		t.Errorf("targetFPS = %v, want 60", s.Graphics.TargetFPS)
	}
	if !s.Graphics.ParticleEffects {
		t.Error("particleEffects should default on")
	}
	if s.Audio.MasterVolume != 1.0 || s.Audio.MusicVolume != 0.75 {
		t.Errorf("audio volumes = %v/%v, want 1.0/0.75", s.Audio.MasterVolume, s.Audio.MusicVolume)
	}
	if s.Audio.Muted {
		t.Error("muted should default off")
	}
	if !s.Controls.HapticFeedback {
		t.Error("hapticFeedback should default on")
	}
	if s.Gameplay.Difficulty != "normal" {
		t.Errorf("difficulty = %q, want normal", s.Gameplay.Difficulty)
	}
}

func TestLoadSettingsCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	doc := []byte("graphics:\n  targetFPS: 30\naudio:\n  masterVolume: 0.5\n  muted: true\n")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Graphics.TargetFPS != 30 {
		t.Errorf("targetFPS = %v, want 30", s.Graphics.TargetFPS)
	}
	if s.Audio.MasterVolume != 0.5 || !s.Audio.Muted {
		t.Errorf("audio = %+v, want master 0.5 muted", s.Audio)
	}
	// Fields absent from the document stay at their zero values; the loader
	// does not merge with defaults.
	if s.Gameplay.Difficulty != "" {
		t.Errorf("difficulty = %q, want empty", s.Gameplay.Difficulty)
	}
}

func TestLoadSettingsMissingCustomPathFallsBack(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected an error for a missing explicit path")
	}
	// Defaults still come back usable.
	if s.Graphics.TargetFPS != 60 {
		t.Errorf("fallback targetFPS = %v, want 60", s.Graphics.TargetFPS)
	}
}

func TestEnemyKindStrings(t *testing.T) {
	tests := []struct {
		kind EnemyKind
		want string
	}{
		{EnemyGoomba, "goomba"},
		{EnemyKoopa, "koopa"},
		{EnemySpiky, "spiky"},
		{EnemyFlying, "flying"},
		{EnemyKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("EnemyKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
