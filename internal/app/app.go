package app

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log"
	"os"
	"slot_machine/internal/config"
)

type Options struct {
	// EnvPath путь к .env, отсутствие файла не ошибка
	EnvPath string
	// Seed если задан, перекрывает SLOTS_SEED
	Seed string

	In  io.Reader
	Out io.Writer
}

type App struct {
	ServiceProvider *ServiceProvider
	opts            Options
}

func NewApp(opts Options) *App {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &App{opts: opts}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider(s.opts.In, s.opts.Out, s.opts.Seed)
}

func (s *App) Run(ctx context.Context) error {
	if s.opts.EnvPath != "" {
		err := config.Load(s.opts.EnvPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Error loading %s file: %v", s.opts.EnvPath, err)
		}
	}
	s.initServiceProvider()
	if err := s.ServiceProvider.Init(); err != nil {
		return err
	}
	defer s.ServiceProvider.Close()

	return s.ServiceProvider.ConsoleHandler().Run(ctx)
}
