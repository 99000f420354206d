package systems

import (
	"encoding/json"
	"log"
	"time"

	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SaveRecord is the progress data stored on disk.
type SaveRecord struct {
	HighScore     int      `json:"highScore"`
	HighestLevel  int      `json:"highestLevel"`
	Achievements  []string `json:"achievements"`
	LastPlayed    string   `json:"lastPlayed"`    // RFC 3339
	TotalPlayTime float64  `json:"totalPlayTime"` // seconds across all sessions
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for progress storage.
// Persistence is best-effort: a failure here disables saving but never blocks
// the game.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "skyhopper",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadProgress loads the save record from disk. A missing or unreadable
// record returns nil.
func LoadProgress() *SaveRecord {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := gdataManager.LoadItem("progress")
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return nil
	}
	if data == nil {
		return nil
	}

	var record SaveRecord
	if err := json.Unmarshal(data, &record); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return nil
	}
	return &record
}

// SaveProgress merges the session's state into the on-disk record: high score
// and highest level only move up, achievements accumulate.
func SaveProgress(e *ecs.ECS) {
	if !gdataInitialized || gdataManager == nil {
		return
	}

	gs := gameState(e)
	record := LoadProgress()
	if record == nil {
		record = &SaveRecord{}
	}
	if gs.HighScore > record.HighScore {
		record.HighScore = gs.HighScore
	}
	if gs.CurrentLevel > record.HighestLevel {
		record.HighestLevel = gs.CurrentLevel
	}
	for _, id := range gs.Achievements {
		if !containsString(record.Achievements, id) {
			record.Achievements = append(record.Achievements, id)
		}
	}
	record.LastPlayed = time.Now().UTC().Format(time.RFC3339)

	// Only the play time accrued since the previous save is added, so the
	// per-level saves within one session don't double-count.
	eng := engine(e)
	record.TotalPlayTime += eng.PlayTime - eng.PlayTimeSaved
	eng.PlayTimeSaved = eng.PlayTime

	data, err := json.Marshal(record)
	if err != nil {
		log.Printf("Warning: Could not serialize progress: %v", err)
		return
	}
	if err := gdataManager.SaveItem("progress", data); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
