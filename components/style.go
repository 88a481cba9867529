package components

import (
	"github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/yohamta/donburi"
)

// StyleData is the combo meter. Meter stays in [0, 1] and Rank indexes
// Ranks. TotalScore only grows until Reset.
type StyleData struct {
	Meter       float64
	Rank        int
	TotalPoints float64
	TotalScore  float64
	DecayTimer  float64
	Decaying    bool

	Ranks            []config.StyleRank
	PointsToNextRank float64
	DecayDelay       float64
	DecaySpeed       float64
}

func NewStyle(c config.StyleConfig) StyleData {
	return StyleData{
		Ranks:            append([]config.StyleRank(nil), c.Ranks...),
		PointsToNextRank: c.PointsToNextRank,
		DecayDelay:       c.DecayDelay,
		DecaySpeed:       c.DecaySpeed,
	}
}

// Retune swaps in new ranks and decay timings. Points already scored are
// kept; the rank is clamped into the new ladder.
func (s *StyleData) Retune(c config.StyleConfig) {
	s.Ranks = append([]config.StyleRank(nil), c.Ranks...)
	s.PointsToNextRank = c.PointsToNextRank
	s.DecayDelay = c.DecayDelay
	s.DecaySpeed = c.DecaySpeed
	s.Rank = max(min(s.Rank, s.topRank()), 0)
}

// CurrentRank returns the active rank, or a neutral x1 rank when none are
// configured.
func (s *StyleData) CurrentRank() config.StyleRank {
	if s.Rank < 0 || s.Rank >= len(s.Ranks) {
		return config.StyleRank{Multiplier: 1}
	}
	return s.Ranks[s.Rank]
}

func (s *StyleData) topRank() int {
	return len(s.Ranks) - 1
}

// AddPoints scores p with the current multiplier, re-arms the decay delay
// and reports whether the rank went up.
func (s *StyleData) AddPoints(p float64) (rankedUp bool) {
	s.DecayTimer = s.DecayDelay
	s.Decaying = false

	s.TotalScore += p + p*s.CurrentRank().Multiplier
	s.TotalPoints += p

	if s.PointsToNextRank > 0 {
		inRank := s.TotalPoints - float64(s.Rank)*s.PointsToNextRank
		s.Meter = gamemath.Clamp01(inRank / s.PointsToNextRank)
	}
	if s.Meter >= 1 && s.Rank < s.topRank() {
		s.Rank++
		s.Meter = 0
		return true
	}
	return false
}

// Decay advances the decay clock by dt. It reports whether the meter moved
// and whether the rank dropped. A non-positive dt changes nothing.
func (s *StyleData) Decay(dt float64) (meterChanged, rankedDown bool) {
	if dt <= 0 {
		return false, false
	}
	if s.Decaying {
		s.Meter -= s.DecaySpeed * dt
		if s.Meter <= 0 {
			s.Meter = 0
			if s.Rank > 0 {
				s.Rank--
				s.Meter = 1
				rankedDown = true
			} else {
				s.Decaying = false
			}
		}
		return true, rankedDown
	}
	if s.DecayTimer > 0 {
		s.DecayTimer -= dt
		if s.DecayTimer <= 0 {
			s.Decaying = true
		}
	}
	return false, false
}

func (s *StyleData) Reset() {
	s.Meter = 0
	s.Rank = 0
	s.TotalPoints = 0
	s.TotalScore = 0
	s.DecayTimer = 0
	s.Decaying = false
}

var Style = donburi.NewComponentType[StyleData]()
