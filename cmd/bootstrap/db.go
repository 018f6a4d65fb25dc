package bootstrap

import (
	"context"
	"log/slog"

	"commerce-order-core/internal/infra/db"
	"commerce-order-core/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB returns a nil pool when STORE_DRIVER=memory.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		logger.Warn("in-memory store selected, skipping database connection")
		return nil, nil
	}

	if cfg.DB.AutoMigrate {
		if err := db.Migrate(cfg.DB.BuildDSN()); err != nil {
			return nil, err
		}
	}

	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
