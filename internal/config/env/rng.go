package env

import (
	"fmt"
	"os"
	"slot_machine/internal/config"
	"strconv"
)

const (
	SeedEnvName = "SLOTS_SEED"
)

type rngConfig struct {
	seed    int64
	hasSeed bool
}

// NewRNGConfig сид из SLOTS_SEED
func NewRNGConfig() (config.RNGConfig, error) {
	return ParseRNGConfig(os.Getenv(SeedEnvName))
}

// ParseRNGConfig пустая строка означает, что сид не задан. "0" обычный сид
func ParseRNGConfig(raw string) (config.RNGConfig, error) {
	if len(raw) == 0 {
		return &rngConfig{}, nil
	}

	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid rng seed: %w", err)
	}

	return &rngConfig{
		seed:    seed,
		hasSeed: true,
	}, nil
}

func (cfg *rngConfig) Seed() (int64, bool) {
	return cfg.seed, cfg.hasSeed
}
