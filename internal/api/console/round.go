package console

import (
	"context"
	"errors"
	"fmt"
	"slot_machine/internal/converter"
	"slot_machine/internal/model"
)

// RequestBet ставка на линию в [MinBet, MaxBet]
func (h *Handler) RequestBet() (int, error) {
	return h.askInt(
		fmt.Sprintf("Enter bet amount ($%d to $%d): ", model.MinBet, model.MaxBet),
		"bet",
		h.serv.CheckBet,
		func(*model.RangeError) string {
			return fmt.Sprintf("Bet must be between $%d and $%d.", model.MinBet, model.MaxBet)
		},
	)
}

// RequestLines количество линий в [1, MaxLines]
func (h *Handler) RequestLines() (int, error) {
	return h.askInt(
		fmt.Sprintf("Enter number of lines to bet on (%d-%d): ", model.MinLines, model.MaxLines),
		"lines",
		h.serv.CheckLines,
		func(*model.RangeError) string {
			return fmt.Sprintf("Please enter a number between %d and %d.", model.MinLines, model.MaxLines)
		},
	)
}

// PlayRound один раунд: линии спрашиваются один раз, ставка повторно, пока не уложится в баланс.
// Возвращает чистый результат раунда.
func (h *Handler) PlayRound(ctx context.Context) (int, error) {
	lines, err := h.RequestLines()
	if err != nil {
		return 0, err
	}

	var spinReq model.LineSpin
	for {
		bet, err := h.RequestBet()
		if err != nil {
			return 0, err
		}
		spinReq = model.LineSpin{Bet: bet, Lines: lines}

		err = h.serv.CheckStake(ctx, spinReq)
		if err == nil {
			break
		}
		var rangeErr *model.RangeError
		if !errors.As(err, &rangeErr) {
			return 0, err
		}
		h.printf("Insufficient funds. Your balance is $%d.\n", rangeErr.Max)
	}

	h.printf("Your bet: $%d on %d lines. Total bet: $%d.\n", spinReq.Bet, spinReq.Lines, spinReq.TotalBet())

	res, err := h.serv.PlayRound(ctx, spinReq)
	if err != nil {
		return 0, err
	}

	for _, row := range converter.ToBoardRows(res.Board) {
		h.println(row)
	}
	h.printf("You won $%d.\n", res.TotalPayout)
	if len(res.LineWins) > 0 {
		h.printf("Winning lines: %s.\n", converter.ToWinningLines(res.LineWins))
	} else {
		h.println("No winning lines.")
	}

	return res.Net, nil
}
