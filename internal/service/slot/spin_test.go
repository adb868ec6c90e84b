package slot

import (
	"context"
	"math/rand"
	"slot_machine/internal/config/env"
	"slot_machine/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"
)

// seqRandomizer отдает значения по кругу
type seqRandomizer struct {
	seq []int
	pos int
}

func (r *seqRandomizer) Intn(n int) int {
	v := r.seq[r.pos%len(r.seq)] % n
	r.pos++
	return v
}

func newTestService(t *testing.T, rnd Randomizer) *serv {
	t.Helper()
	cfg, err := env.NewPaytableConfig()
	require.NoError(t, err)
	return NewSlotService(cfg, rnd, zap.NewNop()).(*serv)
}

func TestBuildPool(t *testing.T) {
	pool := BuildPool(
		[]model.Symbol{"A", "B"},
		map[model.Symbol]int{"A": 2, "B": 3},
	)
	assert.Equal(t, []model.Symbol{"A", "A", "B", "B", "B"}, pool)
}

func TestPoolFromPaytable(t *testing.T) {
	s := newTestService(t, &seqRandomizer{seq: []int{0}})
	require.Len(t, s.pool, 20)

	counts := map[model.Symbol]int{}
	for _, sym := range s.pool {
		counts[sym]++
	}
	assert.Equal(t, map[model.Symbol]int{"A": 2, "B": 4, "C": 6, "D": 8}, counts)
}

func TestGenerateBoardDeterministic(t *testing.T) {
	// Нулевой рандом берет первые три позиции пула: A, A, B
	s := newTestService(t, &seqRandomizer{seq: []int{0}})
	board := s.GenerateBoard()

	for c := 0; c < model.Cols; c++ {
		assert.Equal(t, [model.Rows]model.Symbol{"A", "A", "B"}, board[c])
	}
}

func TestGenerateBoardColumnsStartFromFullPool(t *testing.T) {
	// Вторая колонка вытягивает последний символ пула (D), третья снова видит полный пул
	s := newTestService(t, &seqRandomizer{seq: []int{0, 0, 0, 19, 0, 0, 0, 0, 0}})
	board := s.GenerateBoard()

	assert.Equal(t, [model.Rows]model.Symbol{"A", "A", "B"}, board[0])
	assert.Equal(t, [model.Rows]model.Symbol{"D", "A", "B"}, board[1])
	assert.Equal(t, [model.Rows]model.Symbol{"A", "A", "B"}, board[2])
}

func TestGenerateBoardProperties(t *testing.T) {
	cfg, err := env.NewPaytableConfig()
	require.NoError(t, err)
	weights := cfg.SymbolWeights()

	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Int64().Draw(rt, "seed")
		s := NewSlotService(cfg, rand.New(rand.NewSource(seed)), zap.NewNop())
		board := s.GenerateBoard()

		for c := 0; c < model.Cols; c++ {
			counts := map[model.Symbol]int{}
			for r := 0; r < model.Rows; r++ {
				sym := board[c][r]
				w, ok := weights[sym]
				if !ok {
					rt.Fatalf("unknown symbol %q at [%d][%d]", sym, c, r)
				}
				counts[sym]++
				// Без возврата символ не может выпасть чаще своего веса
				if counts[sym] > w {
					rt.Fatalf("symbol %q drawn %d times in column %d, weight %d", sym, counts[sym], c, w)
				}
			}
		}
	})
}

func TestEvaluateLines(t *testing.T) {
	s := newTestService(t, &seqRandomizer{seq: []int{0}})

	tests := []struct {
		name      string
		board     model.Board
		spin      model.LineSpin
		wantTotal int
		wantLines []int
	}{
		{
			name: "top line of A pays 5x",
			board: model.Board{
				{"A", "B", "C"},
				{"A", "C", "D"},
				{"A", "D", "B"},
			},
			spin:      model.LineSpin{Bet: 10, Lines: 1},
			wantTotal: 50,
			wantLines: []int{1},
		},
		{
			name: "fully mismatched",
			board: model.Board{
				{"A", "B", "C"},
				{"B", "C", "D"},
				{"C", "D", "A"},
			},
			spin:      model.LineSpin{Bet: 10, Lines: 3},
			wantTotal: 0,
			wantLines: []int{},
		},
		{
			name: "lines beyond selection are not evaluated",
			board: model.Board{
				{"B", "D", "C"},
				{"A", "D", "C"},
				{"B", "D", "C"},
			},
			spin:      model.LineSpin{Bet: 7, Lines: 1},
			wantTotal: 0,
			wantLines: []int{},
		},
		{
			name: "middle and bottom lines",
			board: model.Board{
				{"B", "D", "C"},
				{"A", "D", "C"},
				{"B", "D", "C"},
			},
			spin:      model.LineSpin{Bet: 7, Lines: 3},
			wantTotal: 2*7 + 3*7,
			wantLines: []int{2, 3},
		},
		{
			name: "all lines win",
			board: model.Board{
				{"A", "A", "B"},
				{"A", "A", "B"},
				{"A", "A", "B"},
			},
			spin:      model.LineSpin{Bet: 10, Lines: 3},
			wantTotal: 140,
			wantLines: []int{1, 2, 3},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			total, wins := s.EvaluateLines(tc.board, tc.spin)
			assert.Equal(t, tc.wantTotal, total)
			res := model.SpinResult{LineWins: wins}
			assert.Equal(t, tc.wantLines, res.WinningLines())
		})
	}
}

func TestSpin(t *testing.T) {
	s := newTestService(t, &seqRandomizer{seq: []int{0}})

	res, err := s.Spin(context.Background(), model.LineSpin{Bet: 10, Lines: 3})
	require.NoError(t, err)
	assert.Equal(t, 30, res.TotalBet)
	assert.Equal(t, 140, res.TotalPayout)
	assert.Equal(t, []int{1, 2, 3}, res.WinningLines())
	assert.Equal(t, model.Symbol("A"), res.LineWins[0].Symbol)
	assert.Equal(t, 40, res.LineWins[2].Payout)
}

func TestSpinRejectsOutOfRange(t *testing.T) {
	s := newTestService(t, &seqRandomizer{seq: []int{0}})

	for _, spin := range []model.LineSpin{
		{Bet: 0, Lines: 1},
		{Bet: 101, Lines: 1},
		{Bet: 1, Lines: 0},
		{Bet: 1, Lines: 4},
	} {
		_, err := s.Spin(context.Background(), spin)
		var rangeErr *model.RangeError
		assert.ErrorAs(t, err, &rangeErr, "spin %+v", spin)
	}
}
