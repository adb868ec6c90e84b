package repository

import (
	"context"
	"slot_machine/internal/model"
)

// BalanceRepository хранит баланс текущей сессии
type BalanceRepository interface {
	GetBalance(ctx context.Context) (int, error)
	UpdateBalance(ctx context.Context, amount int) error
}

// StatsRepository статистика ставок и выплат за сессию
type StatsRepository interface {
	UpdateState(bet, payout int)
	State() model.SessionStats
}
