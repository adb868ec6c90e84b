package model

import "math"

const (
	// Барабаны (колонки)
	Cols = 3
	// Ряды, они же линии
	Rows = 3

	MinBet   = 1
	MaxBet   = 100
	MinLines = 1
	MaxLines = 3

	// MaxDeposit оставляет запас, чтобы выигрыши не переполнили int
	MaxDeposit = math.MaxInt / 2
)

type Symbol string

// Board игровое поле, board[колонка][ряд]
type Board [Cols][Rows]Symbol

type LineSpin struct {
	Bet   int
	Lines int
}

// TotalBet полная ставка раунда
func (s LineSpin) TotalBet() int {
	return s.Bet * s.Lines
}

type SpinResult struct {
	Board       Board
	LineWins    []LineWin
	TotalBet    int
	TotalPayout int
}

type LineWin struct {
	Line   int // 1..MaxLines
	Symbol Symbol
	Payout int
}

// WinningLines номера выигрышных линий в порядке проверки
func (r SpinResult) WinningLines() []int {
	lines := make([]int, 0, len(r.LineWins))
	for _, w := range r.LineWins {
		lines = append(lines, w.Line)
	}
	return lines
}

type RoundResult struct {
	SpinResult
	Net     int // Выигрыш минус полная ставка, может быть отрицательным
	Balance int // Баланс после расчета
}
