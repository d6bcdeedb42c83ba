package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Kemerd/aircraft-tug-physics/internal/lever"
	"github.com/Kemerd/aircraft-tug-physics/internal/tug"
)

const (
	DefaultLeverF1 = 200.0
)

// Config is the persisted input state for both simulators: slider values,
// surface choice and selected diagram. Loading merges file values over the
// defaults; CLI flags override both.
type Config struct {
	Simulator string      `yaml:"simulator"`
	Lever     LeverConfig `yaml:"lever"`
	Tug       TugConfig   `yaml:"tug"`
}

type LeverConfig struct {
	F1       float64 `yaml:"f1"`
	InputArm float64 `yaml:"input_arm"`
	Arm2     float64 `yaml:"arm2"`
}

type TugConfig struct {
	WeightLb    float64 `yaml:"weight_lb"`
	Surface     string  `yaml:"surface"`
	InclineDeg  float64 `yaml:"incline_deg"`
	HandleArm   float64 `yaml:"handle_arm"`
	AircraftArm float64 `yaml:"aircraft_arm"`
	Selected    string  `yaml:"selected"`
}

func DefaultConfig() *Config {
	return &Config{
		Simulator: "lever",
		Lever: LeverConfig{
			F1:       DefaultLeverF1,
			InputArm: lever.DefaultInputArm,
			Arm2:     lever.DefaultOutputArm,
		},
		Tug: TugConfig{
			WeightLb:    tug.DefaultWeightLb,
			Surface:     "Clean Concrete",
			InclineDeg:  tug.DefaultInclineDeg,
			HandleArm:   tug.DefaultHandleArm,
			AircraftArm: tug.DefaultAircraftArm,
			Selected:    "d1a",
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
