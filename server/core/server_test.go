package core

import (
	"testing"
	"time"

	cfg "github.com/automoto/vacuumarena/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer(Options{TickRate: 60, Seed: 7, Difficulty: cfg.BotDifficultyNormal})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return s
}

func TestServerStepsTheWorld(t *testing.T) {
	s := newTestServer(t)

	if ended := s.RunTicks(30); ended {
		t.Fatal("run ended during the first countdown")
	}
	st := s.Stats()
	if st.Tick != 30 {
		t.Errorf("Tick = %d, want 30", st.Tick)
	}
	if st.Phase != cfg.WavePhaseCountdownBefore {
		t.Errorf("Phase = %s, want CountdownBefore", st.Phase)
	}
	if st.Wave != 1 || st.Total != len(cfg.Waves.Waves) {
		t.Errorf("Wave = %d/%d, want 1/%d", st.Wave, st.Total, len(cfg.Waves.Waves))
	}
	if st.Health <= 0 {
		t.Errorf("Health = %v, want > 0", st.Health)
	}
}

func TestServerStopCancelsWaves(t *testing.T) {
	s := newTestServer(t)
	s.RunTicks(5)
	s.Stop()

	if st := s.Stats(); st.Phase != cfg.WavePhaseFinished {
		t.Errorf("Phase = %s after Stop, want Finished", st.Phase)
	}
	if s.RunTicks(10) {
		t.Error("a cancelled run reported a result")
	}
}

func TestGameLoopStops(t *testing.T) {
	s := newTestServer(t)
	s.Start()
	time.Sleep(50 * time.Millisecond)

	stopped := make(chan struct{})
	go func() {
		s.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
	if st := s.Stats(); st.Tick == 0 {
		t.Error("loop never ticked")
	}
}
