package env

import (
	"fmt"
	"os"
	"slot_machine/internal/config"

	"go.uber.org/zap/zapcore"
)

const (
	logLevelEnvName = "LOG_LEVEL"
	logFileEnvName  = "LOG_FILE"

	defaultLogLevel = "error"
)

type logConfig struct {
	level string
	file  string
}

func NewLogConfig() (config.LogConfig, error) {
	level := os.Getenv(logLevelEnvName)
	if len(level) == 0 {
		level = defaultLogLevel
	}
	if _, err := zapcore.ParseLevel(level); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	return &logConfig{
		level: level,
		file:  os.Getenv(logFileEnvName),
	}, nil
}

func (cfg *logConfig) Level() string {
	return cfg.level
}

func (cfg *logConfig) File() string {
	return cfg.file
}
