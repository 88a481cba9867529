package systems

import (
	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func styleOf(w donburi.World) (*components.StyleData, bool) {
	entry, ok := components.Style.First(w)
	if !ok {
		return nil, false
	}
	return components.Style.Get(entry), true
}

// AddStylePoints scores p and publishes the resulting meter, score and
// rank changes.
func AddStylePoints(w donburi.World, p float64) {
	s, ok := styleOf(w)
	if !ok || p <= 0 {
		return
	}
	rankedUp := s.AddPoints(p)

	messages.StylePointsAdded.Publish(w, messages.StylePointsAddedEvent{Points: p, TotalPoints: s.TotalPoints})
	messages.StyleScoreChanged.Publish(w, messages.StyleScoreChangedEvent{Score: s.TotalScore})
	messages.StyleMeterChanged.Publish(w, messages.StyleMeterChangedEvent{Meter: s.Meter, Rank: s.Rank})
	if rankedUp {
		publishRank(w, s)
	}
}

func publishRank(w donburi.World, s *components.StyleData) {
	r := s.CurrentRank()
	messages.StyleRankChanged.Publish(w, messages.StyleRankChangedEvent{Rank: s.Rank, Name: r.Name, Multiplier: r.Multiplier})
}

// UpdateStyle decays the meter.
func UpdateStyle(ecs *ecs.ECS) {
	w := ecs.World
	s, ok := styleOf(w)
	if !ok {
		return
	}
	meterChanged, rankedDown := s.Decay(DeltaTime(w))
	if meterChanged {
		messages.StyleMeterChanged.Publish(w, messages.StyleMeterChangedEvent{Meter: s.Meter, Rank: s.Rank})
	}
	if rankedDown {
		publishRank(w, s)
	}
}

// ResetStyle zeroes the meter, rank and score.
func ResetStyle(w donburi.World) {
	s, ok := styleOf(w)
	if !ok {
		return
	}
	s.Reset()
	messages.StyleScoreChanged.Publish(w, messages.StyleScoreChangedEvent{Score: 0})
	messages.StyleMeterChanged.Publish(w, messages.StyleMeterChangedEvent{Meter: 0, Rank: 0})
	publishRank(w, s)
}

// SubscribeStyle wires the point awards to the gameplay events.
func SubscribeStyle(w donburi.World) {
	messages.EnemyDamaged.Subscribe(w, func(w donburi.World, _ messages.EnemyDamagedEvent) {
		AddStylePoints(w, cfg.Style.PointsPerHit)
	})
	messages.EnemyDied.Subscribe(w, func(w donburi.World, _ messages.EnemyDiedEvent) {
		AddStylePoints(w, cfg.Style.PointsPerKill)
	})
	messages.SlidePerformed.Subscribe(w, func(w donburi.World, _ messages.SlidePerformedEvent) {
		AddStylePoints(w, cfg.Style.PointsPerSlide)
	})
	messages.VacuumSuccess.Subscribe(w, func(w donburi.World, _ messages.VacuumSuccessEvent) {
		AddStylePoints(w, cfg.Style.PointsPerVacuum)
	})
}
