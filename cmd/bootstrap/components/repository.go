package components

import (
	repo_impl "hotel-backoffice/internal/infra/repository"
	"hotel-backoffice/internal/usecase"
	syncuc "hotel-backoffice/internal/usecase/sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewRoomRepository,
			fx.As(new(usecase.RoomRepository)),
			fx.As(new(usecase.RoomReader)),
			fx.As(new(syncuc.RoomStore)),
		),
		fx.Annotate(
			repo_impl.NewClientRepository,
			fx.As(new(usecase.ClientRepository)),
			fx.As(new(usecase.ClientReader)),
			fx.As(new(syncuc.ClientStore)),
		),
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(usecase.ReservationRepository)),
			fx.As(new(usecase.ReservationCounter)),
			fx.As(new(syncuc.ReservationStore)),
		),
		fx.Annotate(
			repo_impl.NewSyncLogRepository,
			fx.As(new(syncuc.SyncLogStore)),
			fx.As(new(usecase.SyncLogReader)),
		),
		fx.Annotate(
			repo_impl.NewNotificationRepository,
			fx.As(new(usecase.NotificationRepository)),
		),
		fx.Annotate(
			repo_impl.NewContactRepository,
			fx.As(new(usecase.ContactRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repo_impl.DBTX {
	return pool
}
