package session

import (
	"context"
	"fmt"
	"slot_machine/internal/model"

	"go.uber.org/zap"
)

// Deposit задает стартовый баланс сессии.
// Депозит заменяет баланс, а не прибавляется к нему, и вносится один раз.
func (s *serv) Deposit(ctx context.Context, amount int) error {
	if s.deposited {
		return model.ErrAlreadyDeposited
	}
	if err := model.CheckRange("deposit", amount, 1, model.MaxDeposit); err != nil {
		return err
	}

	if err := s.balanceRepo.UpdateBalance(ctx, amount); err != nil {
		return fmt.Errorf("failed to set balance: %w", err)
	}
	s.deposited = true

	s.log.Info("deposit", zap.Int("amount", amount))
	return nil
}

func (s *serv) Balance(ctx context.Context) (int, error) {
	return s.balanceRepo.GetBalance(ctx)
}
