package components

import (
	"log/slog"

	"commerce-order-core/internal/infra/memstore"
	"commerce-order-core/internal/infra/readstore"
	sqlc "commerce-order-core/internal/infra/sqlc/generated"
	"commerce-order-core/internal/infra/uow"
	"commerce-order-core/internal/pkg/config"
	"commerce-order-core/internal/pkg/errs"
	"commerce-order-core/internal/pkg/metrics"
	"commerce-order-core/internal/usecase/queries"
	"commerce-order-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSQLQueries,
		NewPersistence,
	),
)

// Persistence is the write side and read side of one store driver.
type Persistence struct {
	fx.Out

	UnitOfWork shared.UnitOfWork
	ReadStore  queries.PurchaseReadStore
}

func NewPersistence(cfg config.Config, pool *pgxpool.Pool, q *sqlc.Queries, m *metrics.Metrics, logger *slog.Logger) (Persistence, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		store, err := NewMemoryStore(cfg.Store, logger)
		if err != nil {
			return Persistence{}, err
		}
		return Persistence{
			UnitOfWork: store,
			ReadStore:  memstore.NewReadStore(store),
		}, nil
	}

	logger.Info("persistence ready", "driver", config.StoreDriverPostgres,
		"max_retries", cfg.Tx.MaxRetries, "base_backoff", cfg.Tx.BaseBackoff)
	return Persistence{
		UnitOfWork: uow.NewPostgresUoW(pool, q, cfg.Tx, m),
		ReadStore:  readstore.NewPurchaseReadStore(q, pool),
	}, nil
}

// NewMemoryStore builds the in-process store and loads STORE_SEED_FILE into
// it. Without a seed file the store starts empty.
func NewMemoryStore(cfg config.StoreConfig, logger *slog.Logger) (*memstore.Store, error) {
	store := memstore.New()
	if cfg.SeedFile == "" {
		logger.Warn("memory store has no seed file; every purchase will fail until data is loaded",
			"driver", config.StoreDriverMemory)
		return store, nil
	}

	users, products, err := store.LoadSeedFile(cfg.SeedFile)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to load STORE_SEED_FILE %s", cfg.SeedFile)
	}
	logger.Info("persistence ready", "driver", config.StoreDriverMemory,
		"seed_file", cfg.SeedFile, "users", users, "products", products)
	return store, nil
}

func NewSQLQueries() *sqlc.Queries {
	return sqlc.New()
}
