package components

import (
	"log/slog"

	"hotel-backoffice/internal/infra/pms"
	repo_impl "hotel-backoffice/internal/infra/repository"
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/pkg/config"
	syncuc "hotel-backoffice/internal/usecase/sync"

	"go.uber.org/fx"
)

var SyncModule = fx.Module("sync",
	fx.Provide(
		syncuc.NewCoordinator,
		NewRoomReconciler,
		NewGuestReconciler,
		NewReservationReconciler,
		NewOrchestrator,
	),
)

func NewRoomReconciler(pmsClient pms.Client, rooms syncuc.RoomStore, db repo_impl.DBTX, clk clock.Clock, logger *slog.Logger) *syncuc.RoomReconciler {
	return syncuc.NewRoomReconciler(pmsClient, rooms, db, clk, logger)
}

func NewGuestReconciler(pmsClient pms.Client, clients syncuc.ClientStore, db repo_impl.DBTX, cfg config.Config, logger *slog.Logger) *syncuc.GuestReconciler {
	return syncuc.NewGuestReconciler(pmsClient, clients, db, cfg.PMS.TZOffset, logger)
}

func NewReservationReconciler(
	pmsClient pms.Client,
	reservations syncuc.ReservationStore,
	rooms syncuc.RoomStore,
	clients syncuc.ClientStore,
	db repo_impl.DBTX,
	cfg config.Config,
	logger *slog.Logger,
) *syncuc.ReservationReconciler {
	return syncuc.NewReservationReconciler(pmsClient, reservations, rooms, clients, db, cfg.PMS.TZOffset, logger)
}

func NewOrchestrator(
	coordinator *syncuc.Coordinator,
	rooms *syncuc.RoomReconciler,
	guests *syncuc.GuestReconciler,
	reservations *syncuc.ReservationReconciler,
	logs syncuc.SyncLogStore,
	notifier syncuc.Notifier,
	events syncuc.Events,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) *syncuc.Orchestrator {
	return syncuc.NewOrchestrator(coordinator, rooms, guests, reservations, logs, notifier, events, clk, cfg.Sync, cfg.PMS, logger)
}
