package stats_repo

import (
	"slot_machine/internal/model"
	"sync"
)

// StatsRepo статистика сессии в памяти
type StatsRepo struct {
	mtx         sync.RWMutex
	rounds      int
	totalBet    int
	totalPayout int
}

func NewStatsRepository() *StatsRepo {
	return &StatsRepo{}
}

// UpdateState Обновление статистики после раунда
func (r *StatsRepo) UpdateState(bet, payout int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.rounds++
	r.totalBet += bet
	r.totalPayout += payout
}

// State Копия текущей статистики
func (r *StatsRepo) State() model.SessionStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	st := model.SessionStats{
		Rounds:      r.rounds,
		TotalBet:    r.totalBet,
		TotalPayout: r.totalPayout,
	}
	if r.totalBet > 0 {
		st.RTP = float64(r.totalPayout) / float64(r.totalBet) * 100
	}
	return st
}
