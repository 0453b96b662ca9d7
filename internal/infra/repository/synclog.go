package repository

import (
	"context"

	"hotel-backoffice/internal/domain/synclog"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SyncLogRepository struct {
	db DBTX
}

func NewSyncLogRepository(db DBTX) *SyncLogRepository {
	return &SyncLogRepository{db: db}
}

const syncLogColumns = `id, type, status, started_at, completed_at,
	records_processed, records_created, records_updated, errors, created_at`

func scanSyncLog(row pgx.Row) (*synclog.SyncLog, error) {
	var l synclog.SyncLog
	var typ, status string
	err := row.Scan(
		&l.ID, &typ, &status, &l.StartedAt, &l.CompletedAt,
		&l.RecordsProcessed, &l.RecordsCreated, &l.RecordsUpdated,
		&l.Errors, &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	l.Type = synclog.Type(typ)
	l.Status = synclog.Status(status)
	return &l, nil
}

func (r *SyncLogRepository) Create(ctx context.Context, l *synclog.SyncLog) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO sync_logs (id, type, status, started_at)
		VALUES ($1, $2, $3, $4)`,
		l.ID, string(l.Type), string(l.Status), l.StartedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create sync log", err)
	}
	return nil
}

func (r *SyncLogRepository) Complete(ctx context.Context, l *synclog.SyncLog) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE sync_logs SET status = $2, completed_at = $3, records_processed = $4,
			records_created = $5, records_updated = $6, errors = $7
		WHERE id = $1 AND status = 'in_progress'`,
		l.ID, string(l.Status), l.CompletedAt,
		l.RecordsProcessed, l.RecordsCreated, l.RecordsUpdated, l.Errors,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to complete sync log", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("sync log not found or already completed", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *SyncLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*synclog.SyncLog, error) {
	l, err := scanSyncLog(r.db.QueryRow(ctx, `SELECT `+syncLogColumns+` FROM sync_logs WHERE id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("sync log not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find sync log", err)
	}
	return l, nil
}

// LastSuccessful returns the most recent fully successful run of the given
// type. Its completion time seeds the incremental watermark for the next run;
// partial runs do not advance the watermark so missed records are re-pulled.
func (r *SyncLogRepository) LastSuccessful(ctx context.Context, t synclog.Type) (*synclog.SyncLog, error) {
	l, err := scanSyncLog(r.db.QueryRow(ctx, `
		SELECT `+syncLogColumns+` FROM sync_logs
		WHERE type = $1 AND status = 'success'
		ORDER BY started_at DESC LIMIT 1`,
		string(t),
	))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no successful sync of this type", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find last successful sync", err)
	}
	return l, nil
}

func (r *SyncLogRepository) List(ctx context.Context, limit, offset int) ([]*synclog.SyncLog, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+syncLogColumns+` FROM sync_logs
		ORDER BY started_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sync logs", err)
	}
	defer rows.Close()

	var logs []*synclog.SyncLog
	for rows.Next() {
		l, err := scanSyncLog(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan sync log", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list sync logs", err)
	}
	return logs, nil
}
