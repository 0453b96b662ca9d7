package sync

import (
	"context"
	"time"

	"hotel-backoffice/internal/domain/client"
	"hotel-backoffice/internal/domain/notification"
	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/domain/synclog"
	"hotel-backoffice/internal/infra/repository"

	"github.com/google/uuid"
)

type RoomStore interface {
	FindAll(ctx context.Context) ([]*repository.RoomRecord, error)
	FindByID(ctx context.Context, id uuid.UUID) (*repository.RoomRecord, error)
	FindByExternalID(ctx context.Context, externalID string) (*repository.RoomRecord, error)
	FindOldest(ctx context.Context) (*repository.RoomRecord, error)
	FindSyncedNotIn(ctx context.Context, keep []string) ([]*repository.RoomRecord, error)
	Create(ctx context.Context, db repository.DBTX, rm *room.Room) (uuid.UUID, error)
	Update(ctx context.Context, db repository.DBTX, id uuid.UUID, rm *room.Room) error
	Delete(ctx context.Context, db repository.DBTX, id uuid.UUID) error
}

type ClientStore interface {
	FindByExternalID(ctx context.Context, externalID string) (*repository.ClientRecord, error)
	FindByEmail(ctx context.Context, email string) (*repository.ClientRecord, error)
	Create(ctx context.Context, db repository.DBTX, c *client.Client) (uuid.UUID, error)
	Update(ctx context.Context, db repository.DBTX, id uuid.UUID, c *client.Client) error
}

type ReservationStore interface {
	FindByExternalID(ctx context.Context, externalID string) (*reservation.Reservation, error)
	Create(ctx context.Context, db repository.DBTX, res *reservation.Reservation) error
	Update(ctx context.Context, db repository.DBTX, res *reservation.Reservation) error
}

type SyncLogStore interface {
	Create(ctx context.Context, l *synclog.SyncLog) error
	Complete(ctx context.Context, l *synclog.SyncLog) error
	LastSuccessful(ctx context.Context, t synclog.Type) (*synclog.SyncLog, error)
}

// Notifier is the downstream alerting collaborator consuming sync outcomes.
type Notifier interface {
	Notify(ctx context.Context, n *notification.Notification)
}

// Events is the live-update channel carrying run lifecycle markers.
type Events interface {
	SyncStarted(startedAt time.Time)
	SyncCompleted(report *Report)
	SyncFailed(message string)
}
