package slot

import (
	"context"
	"slot_machine/internal/model"

	"go.uber.org/zap"
)

// Spin выполняет один спин без учета баланса
func (s *serv) Spin(ctx context.Context, spinReq model.LineSpin) (*model.SpinResult, error) {
	// Валидация ставки и линий
	if err := model.CheckRange("bet", spinReq.Bet, model.MinBet, model.MaxBet); err != nil {
		return nil, err
	}
	if err := model.CheckRange("lines", spinReq.Lines, model.MinLines, model.MaxLines); err != nil {
		return nil, err
	}

	board := s.GenerateBoard()
	total, lineWins := s.EvaluateLines(board, spinReq)

	s.log.Debug("spin",
		zap.Int("bet", spinReq.Bet),
		zap.Int("lines", spinReq.Lines),
		zap.Any("board", board),
		zap.Int("payout", total),
	)

	return &model.SpinResult{
		Board:       board,
		LineWins:    lineWins,
		TotalBet:    spinReq.TotalBet(),
		TotalPayout: total,
	}, nil
}

// GenerateBoard генерирует игровое поле 3x3.
// Каждая колонка независимо тянет Rows символов без возврата из полного пула.
func (s *serv) GenerateBoard() model.Board {
	var board model.Board
	for c := 0; c < model.Cols; c++ {
		column := sample(s.rnd, s.pool, model.Rows)
		copy(board[c][:], column)
	}
	return board
}

// sample k различных позиций пула, частичная перетасовка Фишера-Йетса по копии
func sample(rnd Randomizer, pool []model.Symbol, k int) []model.Symbol {
	buf := make([]model.Symbol, len(pool))
	copy(buf, pool)
	for i := 0; i < k; i++ {
		j := i + rnd.Intn(len(buf)-i)
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf[:k]
}

// EvaluateLines выполняет оценку выигрышных линий.
// Линия i выигрывает, если во всех колонках в ряду i стоит символ первой колонки.
func (s *serv) EvaluateLines(board model.Board, spinReq model.LineSpin) (int, []model.LineWin) {
	var (
		total int
		wins  = make([]model.LineWin, 0)
	)

	for line := 0; line < spinReq.Lines && line < model.Rows; line++ {
		symbol := board[0][line]

		matched := true
		for c := 1; c < model.Cols; c++ {
			if board[c][line] != symbol {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}

		payout := s.payouts[symbol] * spinReq.Bet
		total += payout
		wins = append(wins, model.LineWin{
			Line:   line + 1,
			Symbol: symbol,
			Payout: payout,
		})
	}
	return total, wins
}
