package config

import (
	"slot_machine/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// PaytableConfig фиксированная таблица символов, неизменна на время процесса
type PaytableConfig interface {
	// Symbols символы в порядке таблицы, этот порядок задает раскладку пула
	Symbols() []model.Symbol
	SymbolWeights() map[model.Symbol]int
	PayoutTable() map[model.Symbol]int
}

type LogConfig interface {
	Level() string
	File() string
}

type RNGConfig interface {
	// Seed второе значение false, если сид не задан, тогда сид берется от текущего времени
	Seed() (int64, bool)
}
