package systems

import (
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/dashware/skyhopper/config"
)

// awardScore adds points, notifies the host and checks score achievements.
func awardScore(e *ecs.ECS, points int) {
	gs := gameState(e)
	gs.AddScore(points)

	eng := engine(e)
	if eng.Callbacks.OnScoreChange != nil {
		eng.Callbacks.OnScoreChange(gs.Score)
	}
	for id, threshold := range cfg.Score.ScoreAchievements {
		if gs.Score >= threshold && gs.Unlock(id) {
			notifyAchievement(e, id)
		}
	}
}

// loseLife decrements lives and notifies the host. Returns the remaining
// count.
func loseLife(e *ecs.ECS) int {
	gs := gameState(e)
	gs.LoseLife()
	if cb := engine(e).Callbacks.OnLivesChange; cb != nil {
		cb(gs.Lives)
	}
	return gs.Lives
}

// gainLife increments lives (clamped) and notifies the host.
func gainLife(e *ecs.ECS) {
	gs := gameState(e)
	gs.GainLife()
	if cb := engine(e).Callbacks.OnLivesChange; cb != nil {
		cb(gs.Lives)
	}
}

// checkLevelAchievements unlocks any level-milestone achievements reached.
func checkLevelAchievements(e *ecs.ECS) {
	gs := gameState(e)
	for id, threshold := range cfg.Score.LevelAchievements {
		if gs.CurrentLevel >= threshold && gs.Unlock(id) {
			notifyAchievement(e, id)
		}
	}
}

func notifyAchievement(e *ecs.ECS, id string) {
	if cb := engine(e).Callbacks.OnAchievement; cb != nil {
		cb(id)
	}
}

// triggerGameOver ends the run: feedback, cancellation of scheduled rumbles,
// a final save and the host notification. The engine stays paused afterwards
// so the scene can hand off to the game-over screen.
func triggerGameOver(e *ecs.ECS) {
	eng := engine(e)
	if eng.GameOver {
		return
	}
	eng.GameOver = true

	QueueSound(e, cfg.SoundGameOver)
	CancelHaptics(e)

	gs := gameState(e)
	SaveProgress(e)
	if cb := eng.Callbacks.OnGameOver; cb != nil {
		cb(gs.Score)
	}
}
