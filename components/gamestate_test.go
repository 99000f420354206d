package components

import (
	"testing"

	cfg "github.com/dashware/skyhopper/config"
)

func TestGameStateScore(t *testing.T) {
	gs := GameStateData{}

	gs.AddScore(100)
	if gs.Score != 100 || gs.HighScore != 100 {
		t.Errorf("after +100: score=%d high=%d, want 100/100", gs.Score, gs.HighScore)
	}

	gs.AddScore(-50)
	if gs.Score != 100 {
		t.Errorf("negative points changed score to %d", gs.Score)
	}

	gs.AddScore(0)
	if gs.Score != 100 {
		t.Errorf("zero points changed score to %d", gs.Score)
	}

	// High score never regresses.
	gs.HighScore = 5000
	gs.AddScore(100)
	if gs.Score != 200 || gs.HighScore != 5000 {
		t.Errorf("score=%d high=%d, want 200/5000", gs.Score, gs.HighScore)
	}
}

func TestGameStateLives(t *testing.T) {
	gs := GameStateData{Lives: 1}

	gs.LoseLife()
	if gs.Lives != 0 {
		t.Errorf("lives = %d, want 0", gs.Lives)
	}
	gs.LoseLife()
	if gs.Lives != 0 {
		t.Errorf("lives went below 0: %d", gs.Lives)
	}

	for i := 0; i < 20; i++ {
		gs.GainLife()
	}
	if gs.Lives != cfg.Player.MaxLives {
		t.Errorf("lives = %d, want clamp at %d", gs.Lives, cfg.Player.MaxLives)
	}
}

func TestGameStateAchievements(t *testing.T) {
	gs := GameStateData{}

	if !gs.Unlock("score_1k") {
		t.Error("first unlock returned false")
	}
	if gs.Unlock("score_1k") {
		t.Error("duplicate unlock returned true")
	}
	if !gs.HasAchievement("score_1k") {
		t.Error("HasAchievement missed an unlocked id")
	}
	if gs.HasAchievement("score_5k") {
		t.Error("HasAchievement reported an id never unlocked")
	}
	if len(gs.Achievements) != 1 {
		t.Errorf("achievement list = %v, want exactly one entry", gs.Achievements)
	}
}

func TestPlayerPowerUpIndex(t *testing.T) {
	p := PlayerData{
		PowerUps: []PowerUpTimer{
			{Kind: cfg.PowerUpSpeed, Remaining: 5},
			{Kind: cfg.PowerUpJump, Remaining: 2},
		},
	}

	if i := p.PowerUpIndex(cfg.PowerUpJump); i != 1 {
		t.Errorf("PowerUpIndex(jump) = %d, want 1", i)
	}
	if i := p.PowerUpIndex(cfg.PowerUpInvincible); i != -1 {
		t.Errorf("PowerUpIndex(invincible) = %d, want -1", i)
	}
	if !p.HasPowerUp(cfg.PowerUpSpeed) {
		t.Error("HasPowerUp(speed) = false, want true")
	}
	if p.HasPowerUp(cfg.PowerUpSize) {
		t.Error("HasPowerUp(size) = true, want false")
	}
}
