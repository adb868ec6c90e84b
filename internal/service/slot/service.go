package slot

import (
	"slot_machine/internal/config"
	"slot_machine/internal/model"
	"slot_machine/internal/service"

	"go.uber.org/zap"
)

// Randomizer источник случайности для барабанов. *rand.Rand подходит
type Randomizer interface {
	Intn(n int) int
}

type serv struct {
	rnd     Randomizer
	pool    []model.Symbol
	payouts map[model.Symbol]int
	log     *zap.Logger
}

// NewSlotService Создать новый слот 3x3
func NewSlotService(cfg config.PaytableConfig, rnd Randomizer, log *zap.Logger) service.SlotService {
	return &serv{
		rnd:     rnd,
		pool:    BuildPool(cfg.Symbols(), cfg.SymbolWeights()),
		payouts: cfg.PayoutTable(),
		log:     log,
	}
}

// BuildPool Пул барабана: каждый символ повторяется столько раз, каков его вес
func BuildPool(symbols []model.Symbol, weights map[model.Symbol]int) []model.Symbol {
	pool := make([]model.Symbol, 0)
	for _, sym := range symbols {
		for i := 0; i < weights[sym]; i++ {
			pool = append(pool, sym)
		}
	}
	return pool
}
