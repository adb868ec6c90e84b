package env

import (
	"slot_machine/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaytableConfig(t *testing.T) {
	cfg, err := NewPaytableConfig()
	require.NoError(t, err)

	assert.Equal(t, []model.Symbol{"A", "B", "C", "D"}, cfg.Symbols())
	assert.Equal(t, map[model.Symbol]int{"A": 2, "B": 4, "C": 6, "D": 8}, cfg.SymbolWeights())
	assert.Equal(t, map[model.Symbol]int{"A": 5, "B": 4, "C": 3, "D": 2}, cfg.PayoutTable())
}

func TestPaytableIsImmutable(t *testing.T) {
	cfg, err := NewPaytableConfig()
	require.NoError(t, err)

	cfg.PayoutTable()["A"] = 1000
	cfg.SymbolWeights()["A"] = 1000
	cfg.Symbols()[0] = "Z"

	assert.Equal(t, 5, cfg.PayoutTable()["A"])
	assert.Equal(t, 2, cfg.SymbolWeights()["A"])
	assert.Equal(t, model.Symbol("A"), cfg.Symbols()[0])
}

func TestParsePaytableErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"Empty", "symbols: []"},
		{"BadYAML", "symbols: [\n"},
		{"EmptyID", "symbols:\n  - id: \"\"\n    weight: 5\n    multiplier: 1\n"},
		{"Duplicate", "symbols:\n  - {id: A, weight: 5, multiplier: 1}\n  - {id: A, weight: 5, multiplier: 1}\n"},
		{"ZeroWeight", "symbols:\n  - {id: A, weight: 0, multiplier: 1}\n  - {id: B, weight: 5, multiplier: 1}\n"},
		{"NegativeMultiplier", "symbols:\n  - {id: A, weight: 5, multiplier: -1}\n"},
		{"PoolTooSmall", "symbols:\n  - {id: A, weight: 1, multiplier: 1}\n  - {id: B, weight: 1, multiplier: 1}\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parsePaytable([]byte(tc.doc))
			assert.Error(t, err)
		})
	}
}

func TestNewLogConfig(t *testing.T) {
	t.Setenv(logLevelEnvName, "")
	t.Setenv(logFileEnvName, "")
	cfg, err := NewLogConfig()
	require.NoError(t, err)
	assert.Equal(t, defaultLogLevel, cfg.Level())
	assert.Equal(t, "", cfg.File())

	t.Setenv(logLevelEnvName, "debug")
	t.Setenv(logFileEnvName, "slots.log")
	cfg, err = NewLogConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Level())
	assert.Equal(t, "slots.log", cfg.File())

	t.Setenv(logLevelEnvName, "loud")
	_, err = NewLogConfig()
	assert.Error(t, err)
}

func TestNewRNGConfig(t *testing.T) {
	t.Setenv(SeedEnvName, "")
	cfg, err := NewRNGConfig()
	require.NoError(t, err)
	_, ok := cfg.Seed()
	assert.False(t, ok)

	t.Setenv(SeedEnvName, "42")
	cfg, err = NewRNGConfig()
	require.NoError(t, err)
	seed, ok := cfg.Seed()
	assert.True(t, ok)
	assert.Equal(t, int64(42), seed)

	// Ноль задан явно и не путается с отсутствием сида
	t.Setenv(SeedEnvName, "0")
	cfg, err = NewRNGConfig()
	require.NoError(t, err)
	seed, ok = cfg.Seed()
	assert.True(t, ok)
	assert.Equal(t, int64(0), seed)

	t.Setenv(SeedEnvName, "forty-two")
	_, err = NewRNGConfig()
	assert.Error(t, err)
}
