package env

import (
	_ "embed"
	"errors"
	"fmt"
	"slot_machine/internal/config"
	"slot_machine/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed paytable.yaml
var paytableYAML []byte

type symbolYAML struct {
	ID         string `yaml:"id"`
	Weight     int    `yaml:"weight"`
	Multiplier int    `yaml:"multiplier"`
}

type paytableYAMLDoc struct {
	Symbols []symbolYAML `yaml:"symbols"`
}

type paytableConfig struct {
	symbols []model.Symbol
	weights map[model.Symbol]int
	payouts map[model.Symbol]int
}

// NewPaytableConfig разбирает вшитую таблицу выплат
func NewPaytableConfig() (config.PaytableConfig, error) {
	return parsePaytable(paytableYAML)
}

func parsePaytable(data []byte) (config.PaytableConfig, error) {
	var doc paytableYAMLDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid paytable: %w", err)
	}
	if len(doc.Symbols) == 0 {
		return nil, errors.New("paytable has no symbols")
	}

	cfg := &paytableConfig{
		symbols: make([]model.Symbol, 0, len(doc.Symbols)),
		weights: make(map[model.Symbol]int, len(doc.Symbols)),
		payouts: make(map[model.Symbol]int, len(doc.Symbols)),
	}
	poolSize := 0
	for _, s := range doc.Symbols {
		if s.ID == "" {
			return nil, errors.New("paytable symbol id is empty")
		}
		sym := model.Symbol(s.ID)
		if _, ok := cfg.weights[sym]; ok {
			return nil, fmt.Errorf("paytable symbol %q is duplicated", s.ID)
		}
		if s.Weight < 1 {
			return nil, fmt.Errorf("paytable symbol %q: weight must be positive", s.ID)
		}
		if s.Multiplier < 0 {
			return nil, fmt.Errorf("paytable symbol %q: multiplier must not be negative", s.ID)
		}
		cfg.symbols = append(cfg.symbols, sym)
		cfg.weights[sym] = s.Weight
		cfg.payouts[sym] = s.Multiplier
		poolSize += s.Weight
	}

	// Без возврата из пула нельзя вытянуть больше символов, чем в нем есть
	if poolSize < model.Rows {
		return nil, fmt.Errorf("paytable pool has %d symbols, need at least %d", poolSize, model.Rows)
	}

	return cfg, nil
}

func (c *paytableConfig) Symbols() []model.Symbol {
	out := make([]model.Symbol, len(c.symbols))
	copy(out, c.symbols)
	return out
}

func (c *paytableConfig) SymbolWeights() map[model.Symbol]int {
	return copyTable(c.weights)
}

func (c *paytableConfig) PayoutTable() map[model.Symbol]int {
	return copyTable(c.payouts)
}

func copyTable(src map[model.Symbol]int) map[model.Symbol]int {
	out := make(map[model.Symbol]int, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
