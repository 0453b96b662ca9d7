package components

import (
	"hotel-backoffice/internal/infra/pms"
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/pkg/config"
	"hotel-backoffice/internal/usecase"
	syncuc "hotel-backoffice/internal/usecase/sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAuthUseCase,
		usecase.NewRoomUseCase,
		usecase.NewClientUseCase,
		NewReservationUseCase,
		usecase.NewContactUseCase,
		fx.Annotate(
			usecase.NewNotificationUseCase,
			fx.As(new(usecase.NotificationUseCase)),
			fx.As(new(usecase.Notifier)),
			fx.As(new(syncuc.Notifier)),
		),
		usecase.NewSyncUseCase,
	),
)

func NewReservationUseCase(
	reservations usecase.ReservationRepository,
	rooms usecase.RoomReader,
	clients usecase.ClientReader,
	notifier usecase.Notifier,
	pmsClient pms.Client,
	cfg config.Config,
	db *pgxpool.Pool,
	clk clock.Clock,
) usecase.ReservationUseCase {
	return usecase.NewReservationUseCase(reservations, rooms, clients, notifier, pmsClient, cfg.PMS.Enabled, db, clk)
}
