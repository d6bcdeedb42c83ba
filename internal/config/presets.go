package config

var Presets = map[string]map[string]*Config{
	"lever": {
		"default": {
			Simulator: "lever",
			Lever:     LeverConfig{F1: 200, InputArm: 3.0, Arm2: 1.5},
		},
		"balanced": {
			// F1 * C matches the 300 lb counterweight at X1 = 1.5 for the
			// horizontal diagram: 150 * 3 = 300 * 1.5.
			Simulator: "lever",
			Lever:     LeverConfig{F1: 150, InputArm: 3.0, Arm2: 1.5},
		},
		"strong": {
			Simulator: "lever",
			Lever:     LeverConfig{F1: 300, InputArm: 3.0, Arm2: 1.5},
		},
		"short-arm": {
			Simulator: "lever",
			Lever:     LeverConfig{F1: 200, InputArm: 1.5, Arm2: 0.75},
		},
	},
	"tug": {
		"light-concrete": {
			Simulator: "tug",
			Tug:       TugConfig{WeightLb: 1500, Surface: "Clean Concrete", InclineDeg: 0, HandleArm: 3.0, AircraftArm: 1.5, Selected: "d2"},
		},
		"heavy-grass": {
			Simulator: "tug",
			Tug:       TugConfig{WeightLb: 8000, Surface: "Grass", InclineDeg: 0, HandleArm: 3.0, AircraftArm: 1.5, Selected: "d4"},
		},
		"uphill": {
			Simulator: "tug",
			Tug:       TugConfig{WeightLb: 3000, Surface: "Asphalt", InclineDeg: 2.0, HandleArm: 3.0, AircraftArm: 1.5, Selected: "d2"},
		},
		"downhill": {
			Simulator: "tug",
			Tug:       TugConfig{WeightLb: 3000, Surface: "Asphalt", InclineDeg: -2.0, HandleArm: 3.0, AircraftArm: 1.5, Selected: "d2"},
		},
		"gravel-ramp": {
			Simulator: "tug",
			Tug:       TugConfig{WeightLb: 5000, Surface: "Gravel", InclineDeg: 1.0, HandleArm: 4.0, AircraftArm: 1.0, Selected: "d2"},
		},
	},
}

func GetPreset(simulator, preset string) *Config {
	simPresets, ok := Presets[simulator]
	if !ok {
		return nil
	}
	cfg, ok := simPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(simulator string) []string {
	simPresets, ok := Presets[simulator]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(simPresets))
	for name := range simPresets {
		names = append(names, name)
	}
	return names
}
