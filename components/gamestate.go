package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/dashware/skyhopper/config"
)

type GameStateData struct {
	Score        int
	HighScore    int
	Lives        int
	CurrentLevel int
	Achievements []string
}

// AddScore increases the score; score never decreases and the high score only
// moves up to a new maximum.
func (g *GameStateData) AddScore(points int) {
	if points <= 0 {
		return
	}
	g.Score += points
	if g.Score > g.HighScore {
		g.HighScore = g.Score
	}
}

// LoseLife decrements lives, clamped at 0.
func (g *GameStateData) LoseLife() {
	if g.Lives > 0 {
		g.Lives--
	}
}

// GainLife increments lives, clamped at the maximum.
func (g *GameStateData) GainLife() {
	if g.Lives < cfg.Player.MaxLives {
		g.Lives++
	}
}

// HasAchievement reports whether id has already been unlocked.
func (g *GameStateData) HasAchievement(id string) bool {
	for _, a := range g.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// Unlock appends id to the achievement set if not already present and reports
// whether it was newly unlocked.
func (g *GameStateData) Unlock(id string) bool {
	if g.HasAchievement(id) {
		return false
	}
	g.Achievements = append(g.Achievements, id)
	return true
}

var GameState = donburi.NewComponentType[GameStateData]()
