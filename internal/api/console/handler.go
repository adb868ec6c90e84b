package console

import (
	"bufio"
	"fmt"
	"io"
	"slot_machine/internal/service"

	"go.uber.org/zap"
)

// State состояние игровой сессии
type State int

const (
	StateAwaitingDeposit State = iota
	StateAwaitingRoundDecision
	StateInRound
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateAwaitingDeposit:
		return "awaiting_deposit"
	case StateAwaitingRoundDecision:
		return "awaiting_round_decision"
	case StateInRound:
		return "in_round"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type HandlerDeps struct {
	Serv service.SessionService
	In   io.Reader
	Out  io.Writer
	Log  *zap.Logger
}

// Handler консольный интерфейс игры: подсказки в Out, ввод построчно из In
type Handler struct {
	serv  service.SessionService
	in    *bufio.Scanner
	out   io.Writer
	log   *zap.Logger
	state State
}

func NewHandler(deps HandlerDeps) *Handler {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		serv:  deps.Serv,
		in:    bufio.NewScanner(deps.In),
		out:   deps.Out,
		log:   log,
		state: StateAwaitingDeposit,
	}
}

func (h *Handler) State() State {
	return h.state
}

func (h *Handler) setState(s State) {
	h.log.Debug("state changed", zap.Stringer("from", h.state), zap.Stringer("to", s))
	h.state = s
}

func (h *Handler) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(h.out, format, args...)
}

func (h *Handler) println(line string) {
	_, _ = fmt.Fprintln(h.out, line)
}
