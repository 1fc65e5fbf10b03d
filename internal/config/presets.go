package config

import "sort"

var Presets = map[string]map[string]*Config{
	"growth": {
		"unit": {
			Problem: "growth", Method: "euler", Y0: 1, T0: 0, T1: 1, Steps: 100,
		},
		"long": {
			Problem: "growth", Method: "taylor2", Y0: 1, T0: 0, T1: 5, Steps: 500,
		},
	},
	"decay": {
		"gentle": {
			Problem: "decay", Method: "heun", Y0: 1, T0: 0, T1: 5, Steps: 50,
		},
		"stiff": {
			Problem: "decay", Method: "backward-euler", Y0: 1, T0: 0, T1: 1, Steps: 10,
			Params: map[string]float64{"rate": 50},
		},
	},
	"logistic": {
		"saturate": {
			Problem: "logistic", Method: "trapezoidal", Y0: 0.5, T0: 0, T1: 10, Steps: 100,
		},
	},
	"product": {
		"taylor": {
			Problem: "product", Method: "taylor2", Y0: 1, T0: 0, T1: 2, Steps: 40,
		},
	},
	"cosine": {
		"period": {
			Problem: "cosine", Method: "leapfrog", Y0: 0, T0: 0, T1: 6.283185307179586, Steps: 200,
		},
	},
}

func GetPreset(problem, preset string) *Config {
	problemPresets, ok := Presets[problem]
	if !ok {
		return nil
	}
	cfg, ok := problemPresets[preset]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets(problem string) []string {
	problemPresets, ok := Presets[problem]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(problemPresets))
	for name := range problemPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
