package systems

import (
	"testing"

	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/messages"
)

func TestRunRecordUpdate(t *testing.T) {
	var r RunRecord
	runs := []struct {
		ev      messages.GameEndedEvent
		newBest bool
	}{
		{messages.GameEndedEvent{Result: cfg.ResultDefeat, Wave: 2, Score: 300}, true},
		{messages.GameEndedEvent{Result: cfg.ResultDefeat, Wave: 3, Score: 100}, false},
		{messages.GameEndedEvent{Result: cfg.ResultWin, Wave: 3, Score: 900}, true},
		{messages.GameEndedEvent{Result: cfg.ResultWin, Wave: 1, Score: 900}, false},
	}
	for i, run := range runs {
		if got := r.Update(run.ev); got != run.newBest {
			t.Errorf("run %d: newBest = %v, want %v", i, got, run.newBest)
		}
	}

	want := RunRecord{BestScore: 900, BestWave: 3, Wins: 2, Losses: 2}
	if r != want {
		t.Errorf("record = %+v, want %+v", r, want)
	}
}

func TestPersistenceWithoutStorage(t *testing.T) {
	if rec := LoadRecord(); rec != (RunRecord{}) {
		t.Errorf("LoadRecord = %+v without storage, want zero", rec)
	}
	if err := SaveRecord(RunRecord{Wins: 1}); err != nil {
		t.Errorf("SaveRecord without storage: %v", err)
	}
}
