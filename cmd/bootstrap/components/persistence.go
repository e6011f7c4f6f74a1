package components

import (
	"keyshop/internal/infra/db"
	"keyshop/internal/infra/readstore"
	"keyshop/internal/infra/repository"
	"keyshop/internal/infra/uow"
	"keyshop/internal/usecase/commands"
	"keyshop/internal/usecase/queries"
	"keyshop/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewCartReadStore,
			fx.As(new(queries.CartViewRepo)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderViewRepo)),
		),
		fx.Annotate(
			readstore.NewInventoryReadStore,
			fx.As(new(queries.InventoryViewRepo)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUnitOfWork,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			repository.NewProductRepository,
			fx.As(new(commands.ProductReader)),
		),
		fx.Annotate(
			repository.NewCartRepository,
			fx.As(new(commands.CartRepository)),
		),
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
		fx.Annotate(
			repository.NewActivationCodeRepository,
			fx.As(new(commands.ActivationCodeRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
