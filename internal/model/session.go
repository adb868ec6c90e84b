package model

// SessionStats статистика текущей игровой сессии
type SessionStats struct {
	Rounds      int
	TotalBet    int
	TotalPayout int
	RTP         float64 // TotalPayout/TotalBet*100
}
