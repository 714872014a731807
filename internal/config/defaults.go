package config

import (
	_ "embed"
)

//go:embed defaults/lightcycle.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used as the last
// fallback when the embedded YAML cannot be parsed. The AI constants double
// as documentation of what each difficulty tier actually does.
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			Width:  0,
			Height: 0,
		},
		Movement: MovementConfig{
			MoveEveryTicks:  4,
			BoostLatchTicks: 30,
		},
		Energy: EnergyConfig{
			Max:            100,
			DrainPerSecond: 40,
			RegenPerSecond: 15,
			MinToEngage:    10,
		},
		AI: AIConfig{
			Easy: AIProfile{
				LookAhead:      3,
				ErrorRate:      0.15,
				BoostThreshold: 30,
				BoostChance:    0.01,
			},
			Medium: AIProfile{
				LookAhead:      5,
				ErrorRate:      0.0,
				BoostThreshold: 50,
				BoostChance:    0.03,
			},
			Hard: AIProfile{
				LookAhead:       8,
				ErrorRate:       0.0,
				BoostThreshold:  70,
				BoostChance:     0.05,
				FloodFillBudget: 2000,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML, for the `config` command.
func DefaultYAML() []byte {
	return defaultYAML
}
