package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tuning is a YAML view over every tunable section. Decoding into a Tuning
// built by CurrentTuning only changes the keys present in the document;
// map entries and lists (enemy types, ranks, waves) are replaced whole.
type Tuning struct {
	Config         Config               `yaml:"config"`
	Player         PlayerConfig         `yaml:"player"`
	Physics        PhysicsConfig        `yaml:"physics"`
	Movement       MovementConfig       `yaml:"movement"`
	Climb          ClimbConfig          `yaml:"climb"`
	WallRun        WallRunConfig        `yaml:"wallRun"`
	Slide          SlideConfig          `yaml:"slide"`
	Vacuum         VacuumConfig         `yaml:"vacuum"`
	VacuumedObject VacuumedObjectConfig `yaml:"vacuumedObject"`
	Style          StyleConfig          `yaml:"style"`
	Enemy          EnemyConfig          `yaml:"enemy"`
	Upgrades       UpgradesConfig       `yaml:"upgrades"`
	Prop           PropConfig           `yaml:"prop"`
	Time           TimeConfig           `yaml:"time"`
	Camera         CameraConfig         `yaml:"camera"`
	Waves          WavesConfig          `yaml:"waves"`
	Input          InputConfig          `yaml:"input"`
}

// CurrentTuning snapshots the live configuration. Maps and slices are
// copied so decoding into the snapshot never touches the globals.
func CurrentTuning() Tuning {
	t := Tuning{
		Config:         *C,
		Player:         Player,
		Physics:        Physics,
		Movement:       Movement,
		Climb:          Climb,
		WallRun:        WallRun,
		Slide:          Slide,
		Vacuum:         Vacuum,
		VacuumedObject: VacuumedObject,
		Style:          Style,
		Enemy:          Enemy,
		Upgrades:       Upgrades,
		Prop:           Prop,
		Time:           Time,
		Camera:         Camera,
		Waves:          Waves,
		Input:          Input,
	}
	t.Style.Ranks = append([]StyleRank(nil), Style.Ranks...)
	t.Upgrades.Table = append([]UpgradeWeight(nil), Upgrades.Table...)
	t.Waves.Waves = append([]WaveConfig(nil), Waves.Waves...)
	t.Enemy.Types = make(map[string]EnemyTypeConfig, len(Enemy.Types))
	for name, et := range Enemy.Types {
		t.Enemy.Types[name] = et
	}
	return t
}

// Apply makes t the live configuration.
func (t Tuning) Apply() {
	c := t.Config
	C = &c
	Player = t.Player
	Physics = t.Physics
	Movement = t.Movement
	Climb = t.Climb
	WallRun = t.WallRun
	Slide = t.Slide
	Vacuum = t.Vacuum
	VacuumedObject = t.VacuumedObject
	Style = t.Style
	Enemy = t.Enemy
	Upgrades = t.Upgrades
	Prop = t.Prop
	Time = t.Time
	Camera = t.Camera
	Waves = t.Waves
	Input = t.Input
}

// Validate reports every inconsistency found in t.
func (t Tuning) Validate() error {
	var errs []error
	if t.Config.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("config.tickRate must be positive, got %d", t.Config.TickRate))
	}
	if t.Time.FixedDelta <= 0 {
		errs = append(errs, fmt.Errorf("time.fixedDelta must be positive, got %v", t.Time.FixedDelta))
	}
	if t.Player.Height <= 0 || t.Player.Mass <= 0 {
		errs = append(errs, errors.New("player height and mass must be positive"))
	}
	if t.Vacuum.MaxObjects < 0 {
		errs = append(errs, fmt.Errorf("vacuum.maxObjects must not be negative, got %d", t.Vacuum.MaxObjects))
	}
	if t.Vacuum.MinShootInterval <= 0 {
		errs = append(errs, errors.New("vacuum.minShootInterval must be positive"))
	}
	if t.Vacuum.ShootInterval < t.Vacuum.MinShootInterval {
		errs = append(errs, fmt.Errorf("vacuum.shootInterval must be at least %v, got %v", t.Vacuum.MinShootInterval, t.Vacuum.ShootInterval))
	}
	if t.Vacuum.ReferenceMass <= 0 {
		errs = append(errs, errors.New("vacuum.referenceMass must be positive"))
	}
	if t.Vacuum.SpreadCount < 1 {
		errs = append(errs, errors.New("vacuum.spreadCount must be at least 1"))
	}
	if len(t.Style.Ranks) == 0 {
		errs = append(errs, errors.New("style.ranks must not be empty"))
	}
	if t.Style.PointsToNextRank <= 0 {
		errs = append(errs, errors.New("style.pointsToNextRank must be positive"))
	}
	for i, w := range t.Waves.Waves {
		if w.MaxSpawnsPerFrame < 1 {
			errs = append(errs, fmt.Errorf("waves[%d].maxSpawnsPerFrame must be at least 1", i))
		}
		for _, name := range w.Pool {
			if _, ok := t.Enemy.Types[name]; !ok {
				errs = append(errs, fmt.Errorf("waves[%d] references unknown enemy type %q", i, name))
			}
		}
	}
	return errors.Join(errs...)
}

// ParseTuning overlays a YAML document onto the live configuration and
// returns the result without applying it.
func ParseTuning(data []byte) (Tuning, error) {
	t := CurrentTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("validate tuning: %w", err)
	}
	return t, nil
}

// LoadTuning reads a YAML tuning file and applies it. On error the live
// configuration is left untouched.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return fmt.Errorf("load tuning %s: %w", path, err)
	}
	t.Apply()
	return nil
}

// UnmarshalYAML accepts either the kind name or its number.
func (k *EnemyKind) UnmarshalYAML(value *yaml.Node) error {
	switch strings.ToLower(value.Value) {
	case "ground", "0":
		*k = EnemyGround
	case "flying", "1":
		*k = EnemyFlying
	default:
		return fmt.Errorf("line %d: unknown enemy kind %q", value.Line, value.Value)
	}
	return nil
}

// UnmarshalYAML accepts either the upgrade name or its number.
func (u *UpgradeType) UnmarshalYAML(value *yaml.Node) error {
	for candidate := UpgradeHeal; candidate <= UpgradeRadius; candidate++ {
		if strings.EqualFold(value.Value, candidate.String()) || value.Value == fmt.Sprint(int(candidate)) {
			*u = candidate
			return nil
		}
	}
	return fmt.Errorf("line %d: unknown upgrade type %q", value.Line, value.Value)
}
