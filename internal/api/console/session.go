package console

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const quitCommand = "q"

// Run депозит, затем раунды до выхода по "q".
// При любом завершении печатается итоговый баланс.
func (h *Handler) Run(ctx context.Context) error {
	err := h.run(ctx)
	if finishErr := h.finish(ctx); finishErr != nil && err == nil {
		err = finishErr
	}
	return err
}

func (h *Handler) run(ctx context.Context) error {
	if err := h.Deposit(ctx); err != nil {
		return err
	}
	h.setState(StateAwaitingRoundDecision)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		balance, err := h.serv.Balance(ctx)
		if err != nil {
			return fmt.Errorf("failed to get balance: %w", err)
		}
		h.printf("Current balance: $%d.\n", balance)

		answer, err := h.readLine("Press Enter to spin (q to quit): ")
		if err != nil {
			return err
		}
		if strings.EqualFold(strings.TrimSpace(answer), quitCommand) {
			return nil
		}

		h.setState(StateInRound)
		net, err := h.PlayRound(ctx)
		if err != nil {
			return err
		}
		h.log.Debug("round finished", zap.Int("net", net))
		h.setState(StateAwaitingRoundDecision)
	}
}

func (h *Handler) finish(ctx context.Context) error {
	h.setState(StateTerminated)

	balance, err := h.serv.Balance(ctx)
	if err != nil {
		return fmt.Errorf("failed to get final balance: %w", err)
	}
	h.printf("You left with $%d.\n", balance)

	stats := h.serv.Stats()
	if stats.Rounds > 0 {
		h.printf("Rounds played: %d. Wagered: $%d. Won: $%d. RTP: %.1f%%.\n",
			stats.Rounds, stats.TotalBet, stats.TotalPayout, stats.RTP)
	}
	return nil
}
