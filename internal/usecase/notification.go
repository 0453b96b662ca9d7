package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"hotel-backoffice/internal/domain/notification"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/repository"
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository interface {
	Create(ctx context.Context, n *notification.Notification) (uuid.UUID, error)
	FindAll(ctx context.Context, unreadOnly bool, limit int) ([]*repository.NotificationRecord, error)
	CountUnread(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) (int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// NotificationBroadcaster pushes a freshly stored notification to connected
// staff dashboards.
type NotificationBroadcaster interface {
	NotificationCreated(id uuid.UUID, n *notification.Notification)
}

type NotificationUseCase interface {
	Notify(ctx context.Context, n *notification.Notification)
	List(ctx context.Context, unreadOnly bool, limit int) ([]*repository.NotificationRecord, error)
	UnreadCount(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) (int64, error)
	Cleanup(ctx context.Context, maxAge time.Duration) (int64, error)
}

type notificationUseCaseImpl struct {
	notifications NotificationRepository
	broadcaster   NotificationBroadcaster
	clock         clock.Clock
}

func NewNotificationUseCase(
	notifications NotificationRepository,
	broadcaster NotificationBroadcaster,
	clk clock.Clock,
) NotificationUseCase {
	return &notificationUseCaseImpl{
		notifications: notifications,
		broadcaster:   broadcaster,
		clock:         clk,
	}
}

// Notify stores and broadcasts an alert. Failures are logged rather than
// propagated: alerting must never fail the operation that triggered it.
func (u *notificationUseCaseImpl) Notify(ctx context.Context, n *notification.Notification) {
	if err := n.Validate(); err != nil {
		slog.Warn("dropping invalid notification", "error", err)
		return
	}
	id, err := u.notifications.Create(ctx, n)
	if err != nil {
		slog.Error("failed to store notification", "title", n.Title, "error", err)
		return
	}
	u.broadcaster.NotificationCreated(id, n)
}

func (u *notificationUseCaseImpl) List(ctx context.Context, unreadOnly bool, limit int) ([]*repository.NotificationRecord, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return u.notifications.FindAll(ctx, unreadOnly, limit)
}

func (u *notificationUseCaseImpl) UnreadCount(ctx context.Context) (int64, error) {
	return u.notifications.CountUnread(ctx)
}

func (u *notificationUseCaseImpl) MarkRead(ctx context.Context, id uuid.UUID) error {
	if err := u.notifications.MarkRead(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrNotificationNotFound
		}
		return errs.Wrap(err, "failed to mark notification read")
	}
	return nil
}

func (u *notificationUseCaseImpl) MarkAllRead(ctx context.Context) (int64, error) {
	return u.notifications.MarkAllRead(ctx)
}

// Cleanup prunes read notifications older than maxAge; invoked periodically
// by the scheduler.
func (u *notificationUseCaseImpl) Cleanup(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := u.clock.Now().Add(-maxAge)
	deleted, err := u.notifications.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, errs.Wrap(err, "notification cleanup failed")
	}
	if deleted > 0 {
		slog.Info("pruned old notifications", "deleted", deleted, "cutoff", cutoff)
	}
	return deleted, nil
}
