package service

import (
	"context"
	"slot_machine/internal/model"
)

type SlotService interface {
	Spin(ctx context.Context, spinReq model.LineSpin) (*model.SpinResult, error)
	GenerateBoard() model.Board
	EvaluateLines(board model.Board, spinReq model.LineSpin) (int, []model.LineWin)
}

type SessionService interface {
	Deposit(ctx context.Context, amount int) error
	Balance(ctx context.Context) (int, error)
	CheckBet(bet int) error
	CheckLines(lines int) error
	CheckStake(ctx context.Context, spinReq model.LineSpin) error
	PlayRound(ctx context.Context, spinReq model.LineSpin) (*model.RoundResult, error)
	Stats() model.SessionStats
}
