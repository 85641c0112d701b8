package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/CoinToss_Go/internal/config"
	"github.com/osse101/CoinToss_Go/internal/database"
	"github.com/osse101/CoinToss_Go/internal/database/memory"
	"github.com/osse101/CoinToss_Go/internal/database/migrations"
	"github.com/osse101/CoinToss_Go/internal/database/postgres"
	"github.com/osse101/CoinToss_Go/internal/domain"
	"github.com/osse101/CoinToss_Go/internal/handler"
	"github.com/osse101/CoinToss_Go/internal/repository"
)

// Storage is the opened game store
type Storage struct {
	Repo  repository.Game
	Ready handler.Pinger // nil for in-process storage
	Close func()
}

// OpenStorage connects the configured backend, applying migrations first when asked
func OpenStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		slog.Default().Warn(LogMsgStorageMemory)
		return &Storage{
			Repo:  memory.NewStore(domain.DefaultCatalog()),
			Close: func() {},
		}, nil

	case config.StoragePostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolConfig{
			MaxConns:    cfg.DBMaxConns,
			MaxIdleTime: cfg.DBMaxIdleTime,
			MaxLifetime: cfg.DBMaxLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgOpenStorage, err)
		}

		if cfg.AutoMigrate {
			if err := migrations.Run(ctx, pool, migrations.DirectionUp); err != nil {
				pool.Close()
				return nil, fmt.Errorf("%s: %w", ErrMsgMigrate, err)
			}
			slog.Default().Info(LogMsgMigrationsApplied)
		}

		slog.Default().Info(LogMsgStoragePostgres, "max_conns", cfg.DBMaxConns)
		repo := postgres.NewGameRepository(pool)
		return &Storage{Repo: repo, Ready: repo, Close: pool.Close}, nil
	}

	return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStorage, cfg.Storage)
}
