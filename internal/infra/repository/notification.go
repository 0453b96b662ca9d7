package repository

import (
	"context"
	"time"

	"hotel-backoffice/internal/domain/notification"
	"hotel-backoffice/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type NotificationRecord struct {
	ID uuid.UUID
	notification.Notification
	CreatedAt time.Time
}

type NotificationRepository struct {
	db DBTX
}

func NewNotificationRepository(db DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO notifications (type, module, title, message, entity_type, entity_id, read)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		string(n.Type), n.Module, n.Title, n.Message, n.EntityType, n.EntityID, n.Read,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create notification", err)
	}
	return id, nil
}

func (r *NotificationRepository) FindAll(ctx context.Context, unreadOnly bool, limit int) ([]*NotificationRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, type, module, title, message, entity_type, entity_id, read, created_at
		FROM notifications
		WHERE ($1 = false OR read = false)
		ORDER BY created_at DESC LIMIT $2`,
		unreadOnly, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	defer rows.Close()

	var recs []*NotificationRecord
	for rows.Next() {
		var rec NotificationRecord
		var typ string
		if err := rows.Scan(&rec.ID, &typ, &rec.Module, &rec.Title, &rec.Message,
			&rec.EntityType, &rec.EntityID, &rec.Read, &rec.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification", err)
		}
		rec.Type = notification.Type(typ)
		recs = append(recs, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	return recs, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE read = false`).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count unread notifications", err)
	}
	return count, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `UPDATE notifications SET read = true WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification read", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `UPDATE notifications SET read = true WHERE read = false`)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark notifications read", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteOlderThan prunes read notifications created before the cutoff.
func (r *NotificationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM notifications WHERE read = true AND created_at < $1`, cutoff)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to prune notifications", err)
	}
	return tag.RowsAffected(), nil
}
