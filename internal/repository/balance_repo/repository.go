package balance_repo

import (
	"context"
	"slot_machine/internal/model"
	"slot_machine/internal/repository"
)

// repo баланс живет только в памяти процесса
type repo struct {
	balance int
}

func NewBalanceRepository() repository.BalanceRepository {
	return &repo{}
}

// GetBalance - текущий баланс, до депозита 0
func (r *repo) GetBalance(_ context.Context) (int, error) {
	return r.balance, nil
}

// UpdateBalance - записывает новый баланс. Отрицательный баланс не принимается
func (r *repo) UpdateBalance(_ context.Context, amount int) error {
	if amount < 0 {
		return model.ErrNegativeBalance
	}
	r.balance = amount
	return nil
}
