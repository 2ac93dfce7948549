package bootstrap

import (
	"log/slog"

	"care-booking/internal/infra/db"
	"care-booking/internal/infra/draftstore"
	"care-booking/internal/infra/memstore"
	"care-booking/internal/infra/readstore"
	"care-booking/internal/infra/uow"
	"care-booking/internal/pkg/clock"
	"care-booking/internal/pkg/config"
	"care-booking/internal/usecase/flow"
	"care-booking/internal/usecase/queries"
	"care-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewStorage,
	),
)

// Storage is every persistence port the use cases need, backed by one driver.
type Storage struct {
	fx.Out

	UnitOfWork shared.UnitOfWork
	Views      queries.BookingViewRepo
	Drafts     flow.DraftStore
}

func NewStorage(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (Storage, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		return newMemoryStorage(cfg, clk)
	}
	return newPostgresStorage(lc, cfg)
}

func newPostgresStorage(lc fx.Lifecycle, cfg config.Config) (Storage, error) {
	pool, err := NewDB(lc, cfg)
	if err != nil {
		return Storage{}, err
	}
	client, err := NewRedis(lc, cfg)
	if err != nil {
		return Storage{}, err
	}

	q := db.New()
	slog.Info("Storage initialized", "driver", config.StorageDriverPostgres, "redis", cfg.Redis.Addr)
	return Storage{
		UnitOfWork: uow.NewPostgresUoW(pool, q),
		Views:      readstore.NewBookingReadStore(q, pool),
		Drafts:     draftstore.NewRedisStore(client, cfg),
	}, nil
}

func newMemoryStorage(cfg config.Config, clk clock.Clock) (Storage, error) {
	store := memstore.NewStore()
	if err := store.SeedDemo(); err != nil {
		return Storage{}, err
	}

	slog.Warn("Storage is in-memory, data is lost on restart", "driver", config.StorageDriverMemory)
	return Storage{
		UnitOfWork: store,
		Views:      store,
		Drafts:     draftstore.NewMemoryStore(clk, cfg),
	}, nil
}
