package config

import "github.com/sarat-asymmetrica/ffcore/internal/ffcore"

// Config is the full set of user-tunable settings for the ffeval CLI and
// evaluator (spec.md §6 "Construction-time configuration", plus the ambient
// logging/concurrency knobs this implementation adds).
type Config struct {
	Log        LogConfig   `mapstructure:"log"`
	Evaluation EvalConfig  `mapstructure:"evaluation"`
}

// LogConfig controls the structured logger (internal/logging).
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json or console
}

// EvalConfig mirrors ffcore.Options plus the concurrency knob that has no
// bearing on evaluated energies but controls how the work is scheduled.
type EvalConfig struct {
	Cutoff            float64 `mapstructure:"cutoff"`
	RFA               bool    `mapstructure:"rfa"`
	SolventDielectric float64 `mapstructure:"solvent_dielectric"`
	Workers           int     `mapstructure:"workers"` // 0 means GOMAXPROCS
}

// ApplyDefaults fills zero-valued fields with this module's defaults.
func ApplyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Evaluation.RFA && cfg.Evaluation.SolventDielectric == 0 {
		cfg.Evaluation.SolventDielectric = defaultSolventDielectric
	}
}

const defaultSolventDielectric = 78.5

// Validate rejects configurations that cannot produce a sensible evaluator.
func (c *Config) Validate() error {
	if c.Evaluation.RFA && c.Evaluation.Cutoff <= 0 {
		return ffcore.InvalidConfigurationError{Reason: "rfa requires cutoff > 0"}
	}
	if c.Evaluation.Workers < 0 {
		return errNegativeWorkers
	}
	return nil
}
