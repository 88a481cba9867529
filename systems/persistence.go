package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/messages"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	LookSensitivity float64 `json:"lookSensitivity"`
	TuningPath      string  `json:"tuningPath"`
}

// RunRecord is the best and total results over every finished run.
type RunRecord struct {
	BestScore float64 `json:"bestScore"`
	BestWave  int     `json:"bestWave"`
	Wins      int     `json:"wins"`
	Losses    int     `json:"losses"`
}

// Update folds one finished run into the record and reports whether it
// set a new best score.
func (r *RunRecord) Update(ev messages.GameEndedEvent) (newBest bool) {
	switch ev.Result {
	case cfg.ResultWin:
		r.Wins++
	case cfg.ResultDefeat:
		r.Losses++
	}
	if ev.Wave > r.BestWave {
		r.BestWave = ev.Wave
	}
	if ev.Score > r.BestScore {
		r.BestScore = ev.Score
		return true
	}
	return false
}

const (
	settingsKey = "settings"
	recordKey   = "record"
)

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings and records
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "vacuumarena",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

func loadItem(key string, v any) (bool, error) {
	if !gdataInitialized || gdataManager == nil {
		return false, nil
	}
	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false, err
	}
	return true, nil
}

func saveItem(key string, v any) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return err
	}
	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}

// LoadSettings loads settings from disk. Nil means nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	var s SavedSettings
	ok, err := loadItem(settingsKey, &s)
	if !ok {
		return nil, err
	}
	return &s, nil
}

func SaveSettings(s *SavedSettings) error {
	return saveItem(settingsKey, s)
}

// ApplySavedSettings copies saved settings into the live configuration.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.LookSensitivity > 0 {
		cfg.Input.LookSensitivity = saved.LookSensitivity
	}
}

// LoadRecord returns the stored record, or an empty one.
func LoadRecord() RunRecord {
	var r RunRecord
	_, _ = loadItem(recordKey, &r)
	return r
}

func SaveRecord(r RunRecord) error {
	return saveItem(recordKey, r)
}

// OnGameEndedRecord folds the finished run into the stored record.
func OnGameEndedRecord(w donburi.World, ev messages.GameEndedEvent) {
	if !gdataInitialized {
		return
	}
	r := LoadRecord()
	if r.Update(ev) {
		log.Printf("New best score: %.0f", ev.Score)
	}
	_ = SaveRecord(r)
}
