package treevol

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BreakPolicy holds the heuristic factors applied when a broken tree's
// height measurement is missing or contradicts its prediction. Kept
// configurable so the policy can be revisited without touching the
// integration code.
type BreakPolicy struct {
	InflateFactor float64 `yaml:"inflateFactor"` // assumed full-height multiple when the measurement meets or exceeds the prediction
	DeflateFactor float64 `yaml:"deflateFactor"` // assumed break point, as a fraction of predicted height, when no height was measured
}

func DefaultBreakPolicy() BreakPolicy {
	return BreakPolicy{InflateFactor: 1.1, DeflateFactor: .9}
}

// Config mirrors the optional YAML model-configuration file. Omitted fields
// keep their calibrated defaults.
type Config struct {
	Correction    []float64 `yaml:"correction"`
	Base          []float64 `yaml:"base"`
	InflateFactor float64   `yaml:"inflateFactor"`
	DeflateFactor float64   `yaml:"deflateFactor"`
}

// LoadConfig reads a YAML model configuration and resolves it against the
// calibrated defaults.
func LoadConfig(fp string) (*Parameter, BreakPolicy, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, BreakPolicy{}, fmt.Errorf("LoadConfig failed: %v", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, BreakPolicy{}, fmt.Errorf("LoadConfig failed: %v", err)
	}
	par, pol := DefaultParameter(), DefaultBreakPolicy()
	if cfg.Correction != nil {
		par.Correction = cfg.Correction
	}
	if cfg.Base != nil {
		par.Base = cfg.Base
	}
	if err := par.check(); err != nil {
		return nil, BreakPolicy{}, fmt.Errorf("LoadConfig failed: %v", err)
	}
	if cfg.InflateFactor > 0 {
		pol.InflateFactor = cfg.InflateFactor
	}
	if cfg.DeflateFactor > 0 {
		pol.DeflateFactor = cfg.DeflateFactor
	}
	return par, pol, nil
}
