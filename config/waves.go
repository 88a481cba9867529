package config

// WaveConfig is the immutable configuration of one wave.
type WaveConfig struct {
	// Enemy type names, keys of Enemy.Types.
	Pool              []string `yaml:"pool"`
	MaxEnemies        int      `yaml:"maxEnemies"`
	MaxSpawnsPerFrame int      `yaml:"maxSpawnsPerFrame"`
	SpawnInterval     float64  `yaml:"spawnInterval"`
}

// WavesConfig holds the wave list and the sequence timings.
type WavesConfig struct {
	CountdownDuration   float64      `yaml:"countdownDuration"`
	BetweenWavesDelay   float64      `yaml:"betweenWavesDelay"`
	GroundPointsPerWave int          `yaml:"groundPointsPerWave"`
	FlyingPointsPerWave int          `yaml:"flyingPointsPerWave"`
	StartOnLoad         bool         `yaml:"startOnLoad"`
	Waves               []WaveConfig `yaml:"waves"`
}

// Waves is the global wave configuration
var Waves WavesConfig

func init() {
	Waves = WavesConfig{
		CountdownDuration:   3,
		BetweenWavesDelay:   5,
		GroundPointsPerWave: 3,
		FlyingPointsPerWave: 3,
		StartOnLoad:         true,
		Waves: []WaveConfig{
			{Pool: []string{"Grunt"}, MaxEnemies: 4, MaxSpawnsPerFrame: 2, SpawnInterval: 0.5},
			{Pool: []string{"Grunt", "Drone"}, MaxEnemies: 8, MaxSpawnsPerFrame: 2, SpawnInterval: 0.5},
			{Pool: []string{"Grunt", "Drone", "Brute"}, MaxEnemies: 10, MaxSpawnsPerFrame: 2, SpawnInterval: 0.5},
		},
	}
}

// NewWaveConfig returns a wave with the stock burst settings.
func NewWaveConfig(pool ...string) WaveConfig {
	return WaveConfig{
		Pool:              pool,
		MaxEnemies:        10,
		MaxSpawnsPerFrame: 2,
		SpawnInterval:     0.5,
	}
}
