package converter

import (
	"slot_machine/internal/model"
	"strconv"
	"strings"
)

const columnSeparator = " | "

// ToBoardRows строки поля для вывода, символы ряда через " | "
func ToBoardRows(board model.Board) []string {
	rows := make([]string, model.Rows)
	for r := 0; r < model.Rows; r++ {
		cells := make([]string, model.Cols)
		for c := 0; c < model.Cols; c++ {
			cells[c] = string(board[c][r])
		}
		rows[r] = strings.Join(cells, columnSeparator)
	}
	return rows
}

// ToWinningLines номера линий через запятую: "1, 3"
func ToWinningLines(lineWins []model.LineWin) string {
	parts := make([]string, len(lineWins))
	for i, w := range lineWins {
		parts[i] = strconv.Itoa(w.Line)
	}
	return strings.Join(parts, ", ")
}
