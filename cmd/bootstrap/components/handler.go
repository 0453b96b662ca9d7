package components

import (
	"hotel-backoffice/internal/handler"
	"hotel-backoffice/internal/handler/api"
	"hotel-backoffice/internal/handler/middleware"
	"hotel-backoffice/internal/usecase"
	syncuc "hotel-backoffice/internal/usecase/sync"
	"hotel-backoffice/internal/ws"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		ws.NewHub,
		func(hub *ws.Hub) syncuc.Events { return hub },
		func(hub *ws.Hub) usecase.NotificationBroadcaster { return hub },
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewClientHandler,
		api.NewReservationHandler,
		api.NewContactHandler,
		api.NewNotificationHandler,
		api.NewSyncHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	room *api.RoomHandler,
	client *api.ClientHandler,
	reservation *api.ReservationHandler,
	contact *api.ContactHandler,
	notification *api.NotificationHandler,
	sync *api.SyncHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Room:         room,
		Client:       client,
		Reservation:  reservation,
		Contact:      contact,
		Notification: notification,
		Sync:         sync,
	}
}
