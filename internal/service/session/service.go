package session

import (
	"slot_machine/internal/repository"
	"slot_machine/internal/service"

	"go.uber.org/zap"
)

type serv struct {
	slotServ    service.SlotService
	balanceRepo repository.BalanceRepository
	statsRepo   repository.StatsRepository
	log         *zap.Logger

	deposited bool
}

// NewSessionService Создать игровую сессию одного игрока
func NewSessionService(
	slotServ service.SlotService,
	balanceRepo repository.BalanceRepository,
	statsRepo repository.StatsRepository,
	log *zap.Logger,
) service.SessionService {
	return &serv{
		slotServ:    slotServ,
		balanceRepo: balanceRepo,
		statsRepo:   statsRepo,
		log:         log,
	}
}
