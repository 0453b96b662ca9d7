package usecase

import (
	"context"

	"hotel-backoffice/internal/domain/synclog"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/sync"

	"github.com/google/uuid"
)

var ErrSyncLogNotFound = errs.New("sync log not found")

type SyncLogReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*synclog.SyncLog, error)
	List(ctx context.Context, limit, offset int) ([]*synclog.SyncLog, error)
}

// SyncUseCase is the surface the HTTP layer uses to drive and inspect
// synchronization. Manual triggers run synchronously and return the full
// report, errors included.
type SyncUseCase interface {
	Trigger(ctx context.Context) (*sync.Report, error)
	Status(ctx context.Context) sync.State
	GetLog(ctx context.Context, id uuid.UUID) (*synclog.SyncLog, error)
	ListLogs(ctx context.Context, limit, offset int) ([]*synclog.SyncLog, error)
}

type syncUseCaseImpl struct {
	orchestrator *sync.Orchestrator
	logs         SyncLogReader
}

func NewSyncUseCase(orchestrator *sync.Orchestrator, logs SyncLogReader) SyncUseCase {
	return &syncUseCaseImpl{orchestrator: orchestrator, logs: logs}
}

func (u *syncUseCaseImpl) Trigger(ctx context.Context) (*sync.Report, error) {
	return u.orchestrator.Run(ctx)
}

func (u *syncUseCaseImpl) Status(_ context.Context) sync.State {
	return u.orchestrator.Status()
}

func (u *syncUseCaseImpl) GetLog(ctx context.Context, id uuid.UUID) (*synclog.SyncLog, error) {
	l, err := u.logs.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSyncLogNotFound
		}
		return nil, errs.Wrap(err, "sync log lookup failed")
	}
	return l, nil
}

func (u *syncUseCaseImpl) ListLogs(ctx context.Context, limit, offset int) ([]*synclog.SyncLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return u.logs.List(ctx, limit, offset)
}
