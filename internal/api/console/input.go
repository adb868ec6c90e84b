package console

import (
	"errors"
	"fmt"
	"slot_machine/internal/model"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const invalidNumberMsg = "Invalid input. Please enter a number."

// readLine печатает подсказку и читает одну строку
func (h *Handler) readLine(prompt string) (string, error) {
	h.printf("%s", prompt)
	if !h.in.Scan() {
		if err := h.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", model.ErrInputClosed
	}
	return h.in.Text(), nil
}

// parseInt число, не влезающее в int, приводится к границе int,
// чтобы дальше его отклонила проверка диапазона, а не разбор
func parseInt(field, input string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, nil
		}
		return 0, &model.ParseError{Field: field, Input: input, Err: err}
	}
	return v, nil
}

// askInt спрашивает число, пока accept не примет его.
// ParseError и RangeError обрабатываются здесь же повторным вопросом, остальные ошибки возвращаются.
func (h *Handler) askInt(prompt, field string, accept func(int) error, rangeMsg func(*model.RangeError) string) (int, error) {
	for {
		line, err := h.readLine(prompt)
		if err != nil {
			return 0, err
		}

		v, err := parseInt(field, line)
		if err != nil {
			h.log.Debug("rejected input", zap.String("field", field), zap.Error(err))
			h.println(invalidNumberMsg)
			continue
		}

		if err := accept(v); err != nil {
			var rangeErr *model.RangeError
			if errors.As(err, &rangeErr) {
				h.log.Debug("rejected input", zap.String("field", field), zap.Error(err))
				h.println(rangeMsg(rangeErr))
				continue
			}
			return 0, err
		}
		return v, nil
	}
}
