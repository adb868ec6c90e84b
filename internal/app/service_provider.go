package app

import (
	"io"
	"math/rand"
	"slot_machine/internal/api/console"
	"slot_machine/internal/config"
	"slot_machine/internal/config/env"
	"slot_machine/internal/logger"
	"slot_machine/internal/repository"
	"slot_machine/internal/repository/balance_repo"
	"slot_machine/internal/repository/stats_repo"
	"slot_machine/internal/service"
	"slot_machine/internal/service/session"
	"slot_machine/internal/service/slot"
	"time"

	"go.uber.org/zap"
)

type ServiceProvider struct {
	// Config
	paytableCfg config.PaytableConfig
	logCfg      config.LogConfig
	rngCfg      config.RNGConfig

	logger *zap.Logger
	rnd    slot.Randomizer

	// Repositories
	balanceRepo repository.BalanceRepository
	statsRepo   repository.StatsRepository

	// Services
	slotServ    service.SlotService
	sessionServ service.SessionService

	// seed из флага, перекрывает SLOTS_SEED
	seed string

	// Console
	in      io.Reader
	out     io.Writer
	console *console.Handler
}

func newServiceProvider(in io.Reader, out io.Writer, seed string) *ServiceProvider {
	return &ServiceProvider{in: in, out: out, seed: seed}
}

// Init читает конфигурацию заранее, чтобы ошибки конфигурации всплыли до начала игры
func (sp *ServiceProvider) Init() (err error) {
	if sp.paytableCfg == nil {
		if sp.paytableCfg, err = env.NewPaytableConfig(); err != nil {
			return err
		}
	}
	if sp.logCfg == nil {
		if sp.logCfg, err = env.NewLogConfig(); err != nil {
			return err
		}
	}
	if sp.rngCfg == nil {
		if sp.seed != "" {
			sp.rngCfg, err = env.ParseRNGConfig(sp.seed)
		} else {
			sp.rngCfg, err = env.NewRNGConfig()
		}
		if err != nil {
			return err
		}
	}
	if sp.logger == nil {
		if sp.logger, err = logger.New(sp.logCfg); err != nil {
			return err
		}
	}
	return nil
}

func (sp *ServiceProvider) Close() {
	if sp.logger != nil {
		_ = sp.logger.Sync()
	}
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.logger == nil {
		return zap.NewNop()
	}
	return sp.logger
}

func (sp *ServiceProvider) Randomizer() slot.Randomizer {
	if sp.rnd == nil {
		seed, ok := sp.rngCfg.Seed()
		if !ok {
			seed = time.Now().UnixNano()
		}
		sp.Logger().Debug("rng seeded", zap.Int64("seed", seed))
		sp.rnd = rand.New(rand.NewSource(seed))
	}
	return sp.rnd
}

func (sp *ServiceProvider) BalanceRepository() repository.BalanceRepository {
	if sp.balanceRepo == nil {
		sp.balanceRepo = balance_repo.NewBalanceRepository()
	}
	return sp.balanceRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository()
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) SlotService() service.SlotService {
	if sp.slotServ == nil {
		sp.slotServ = slot.NewSlotService(sp.paytableCfg, sp.Randomizer(), sp.Logger().Named("slot"))
	}
	return sp.slotServ
}

func (sp *ServiceProvider) SessionService() service.SessionService {
	if sp.sessionServ == nil {
		sp.sessionServ = session.NewSessionService(
			sp.SlotService(),
			sp.BalanceRepository(),
			sp.StatsRepository(),
			sp.Logger().Named("session"),
		)
	}
	return sp.sessionServ
}

func (sp *ServiceProvider) ConsoleHandler() *console.Handler {
	if sp.console == nil {
		sp.console = console.NewHandler(console.HandlerDeps{
			Serv: sp.SessionService(),
			In:   sp.in,
			Out:  sp.out,
			Log:  sp.Logger().Named("console"),
		})
	}
	return sp.console
}
