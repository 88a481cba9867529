package components

import (
	"math/rand"

	"github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/yohamta/donburi"
)

// WaveManagerData is the wave sequence state. Index is -1 before the first
// wave starts.
type WaveManagerData struct {
	Waves             []config.WaveConfig
	CountdownDuration float64
	BetweenWavesDelay float64

	GroundPoints        []gamemath.Vec3
	FlyingPoints        []gamemath.Vec3
	GroundPointsPerWave int
	FlyingPointsPerWave int

	Phase     config.WavePhase
	Index     int
	Result    config.GameResult
	Cancelled bool

	// Whole seconds still to announce in the current countdown
	CountdownLeft int
	Timer         float64

	Attempts int
	Spawned  int

	WaveGround []gamemath.Vec3
	WaveFlying []gamemath.Vec3

	ActiveEnemies []donburi.Entity

	Rand *rand.Rand
}

// NewWaveManager copies the wave list and timings. Index starts at -1.
func NewWaveManager(c config.WavesConfig, ground, flying []gamemath.Vec3, seed int64) WaveManagerData {
	return WaveManagerData{
		Waves:               append([]config.WaveConfig(nil), c.Waves...),
		CountdownDuration:   c.CountdownDuration,
		BetweenWavesDelay:   c.BetweenWavesDelay,
		GroundPoints:        ground,
		FlyingPoints:        flying,
		GroundPointsPerWave: c.GroundPointsPerWave,
		FlyingPointsPerWave: c.FlyingPointsPerWave,
		Index:               -1,
		Rand:                rand.New(rand.NewSource(seed)),
	}
}

// Retune takes new timings from c. The wave list is swapped only when it
// still reaches the running wave; it reports whether that happened.
func (w *WaveManagerData) Retune(c config.WavesConfig) bool {
	w.CountdownDuration = c.CountdownDuration
	w.BetweenWavesDelay = c.BetweenWavesDelay
	w.GroundPointsPerWave = c.GroundPointsPerWave
	w.FlyingPointsPerWave = c.FlyingPointsPerWave
	if w.Index >= len(c.Waves) {
		return false
	}
	w.Waves = append([]config.WaveConfig(nil), c.Waves...)
	return true
}

// WaveNumber is the 1-based number of the current wave, 0 before any.
func (w *WaveManagerData) WaveNumber() int {
	return w.Index + 1
}

func (w *WaveManagerData) TotalWaves() int {
	return len(w.Waves)
}

// Current returns the running wave's configuration.
func (w *WaveManagerData) Current() (config.WaveConfig, bool) {
	if w.Index < 0 || w.Index >= len(w.Waves) {
		return config.WaveConfig{}, false
	}
	return w.Waves[w.Index], true
}

func (w *WaveManagerData) Register(e donburi.Entity) {
	w.ActiveEnemies = append(w.ActiveEnemies, e)
}

// Deregister forgets e. Unknown entities are ignored.
func (w *WaveManagerData) Deregister(e donburi.Entity) {
	for i, a := range w.ActiveEnemies {
		if a == e {
			w.ActiveEnemies = append(w.ActiveEnemies[:i], w.ActiveEnemies[i+1:]...)
			return
		}
	}
}

func (w *WaveManagerData) ActiveCount() int {
	return len(w.ActiveEnemies)
}

// IsGameActive is true until the sequence ends or is cancelled.
func (w *WaveManagerData) IsGameActive() bool {
	return !w.Cancelled && w.Result == config.ResultNone
}

// PickSpawnPoints draws this wave's random subsets of the spawn points.
func (w *WaveManagerData) PickSpawnPoints() {
	w.WaveGround = w.pick(w.GroundPoints, w.GroundPointsPerWave)
	w.WaveFlying = w.pick(w.FlyingPoints, w.FlyingPointsPerWave)
}

func (w *WaveManagerData) pick(points []gamemath.Vec3, n int) []gamemath.Vec3 {
	if n <= 0 || n > len(points) {
		n = len(points)
	}
	out := append([]gamemath.Vec3(nil), points...)
	w.Rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out[:n]
}

// SpawnPoint returns a random point of this wave's subset for kind.
func (w *WaveManagerData) SpawnPoint(kind config.EnemyKind) (gamemath.Vec3, bool) {
	points := w.WaveGround
	if kind == config.EnemyFlying {
		points = w.WaveFlying
	}
	if len(points) == 0 {
		return gamemath.Vec3{}, false
	}
	return points[w.Rand.Intn(len(points))], true
}

var WaveManager = donburi.NewComponentType[WaveManagerData]()
