package components

import (
	"client-scheduler/internal/infra/cache"
	"client-scheduler/internal/infra/db"
	"client-scheduler/internal/infra/readstore"
	"client-scheduler/internal/infra/writerepo"
	"client-scheduler/internal/pkg/config"
	"client-scheduler/internal/usecase/commands"
	"client-scheduler/internal/usecase/queries"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Write-side repositories
		fx.Annotate(
			writerepo.NewAppointmentRepository,
			fx.As(new(commands.AppointmentRepository)),
		),
		fx.Annotate(
			writerepo.NewCustomerRepository,
			fx.As(new(commands.CustomerRepository)),
		),
		fx.Annotate(
			writerepo.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		// Read-side stores
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewReportReadStore,
			fx.As(new(queries.ReportReadStore)),
		),
		// Reference data goes through the Redis cache decorator
		NewCachedLookupStore,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewCachedLookupStore(dbtx db.DBTX, client *redis.Client, cfg config.Config) queries.LookupReadStore {
	return cache.NewLookupCache(readstore.NewLookupReadStore(dbtx), client, cfg.Redis.LookupTTL)
}
