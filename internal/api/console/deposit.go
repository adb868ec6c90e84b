package console

import (
	"context"
	"fmt"
	"slot_machine/internal/model"
)

// Deposit спрашивает сумму депозита до первого положительного целого
func (h *Handler) Deposit(ctx context.Context) error {
	_, err := h.askInt(
		"How much do you want to deposit? $",
		"deposit",
		func(amount int) error { return h.serv.Deposit(ctx, amount) },
		func(rangeErr *model.RangeError) string {
			if rangeErr.Value > rangeErr.Max {
				return fmt.Sprintf("Amount must not exceed $%d.", rangeErr.Max)
			}
			return "Amount must be greater than 0."
		},
	)
	return err
}
