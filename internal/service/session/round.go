package session

import (
	"context"
	"fmt"
	"math"
	"slot_machine/internal/model"

	"go.uber.org/zap"
)

func (s *serv) CheckBet(bet int) error {
	return model.CheckRange("bet", bet, model.MinBet, model.MaxBet)
}

func (s *serv) CheckLines(lines int) error {
	return model.CheckRange("lines", lines, model.MinLines, model.MaxLines)
}

// CheckStake полная ставка не должна превышать баланс
func (s *serv) CheckStake(ctx context.Context, spinReq model.LineSpin) error {
	balance, err := s.balanceRepo.GetBalance(ctx)
	if err != nil {
		return fmt.Errorf("failed to get balance: %w", err)
	}
	return model.CheckRange("total bet", spinReq.TotalBet(), model.MinBet, balance)
}

// PlayRound проверяет ставку, крутит барабаны и рассчитывает баланс
func (s *serv) PlayRound(ctx context.Context, spinReq model.LineSpin) (*model.RoundResult, error) {
	if err := s.CheckLines(spinReq.Lines); err != nil {
		return nil, err
	}
	if err := s.CheckBet(spinReq.Bet); err != nil {
		return nil, err
	}

	balance, err := s.balanceRepo.GetBalance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	// До генерации поля ставка обязана укладываться в баланс
	if err := model.CheckRange("total bet", spinReq.TotalBet(), model.MinBet, balance); err != nil {
		return nil, err
	}

	spinRes, err := s.slotServ.Spin(ctx, spinReq)
	if err != nil {
		return nil, fmt.Errorf("spin failed: %w", err)
	}

	net := spinRes.TotalPayout - spinRes.TotalBet
	if net > 0 && balance > math.MaxInt-net {
		return nil, model.ErrBalanceOverflow
	}
	balance += net
	if err := s.balanceRepo.UpdateBalance(ctx, balance); err != nil {
		return nil, fmt.Errorf("failed to update balance: %w", err)
	}

	s.statsRepo.UpdateState(spinRes.TotalBet, spinRes.TotalPayout)

	s.log.Info("round settled",
		zap.Int("total_bet", spinRes.TotalBet),
		zap.Int("payout", spinRes.TotalPayout),
		zap.Int("net", net),
		zap.Int("balance", balance),
	)

	return &model.RoundResult{
		SpinResult: *spinRes,
		Net:        net,
		Balance:    balance,
	}, nil
}

func (s *serv) Stats() model.SessionStats {
	return s.statsRepo.State()
}
