package bootstrap

import (
	"log/slog"

	"github.com/osse101/CoinToss_Go/internal/config"
	"github.com/osse101/CoinToss_Go/internal/logger"
)

// SetupLogger installs the process logger from config and reports insecure settings
func SetupLogger(cfg *config.Config) *slog.Logger {
	l := logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.Environment != config.EnvProduction,
	))

	l.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"storage", cfg.Storage)

	l.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port)

	for _, w := range cfg.Warnings() {
		l.Warn(LogMsgConfigWarning, "detail", w)
	}

	return l
}
