//go:build e2e

package sync_test

import (
	"context"
	"testing"
	"time"

	"hotel-backoffice/internal/domain/synclog"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/repository"
	"hotel-backoffice/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SyncLogSuite struct {
	e2e.SharedSuite
}

func TestSyncLogSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SyncLogSuite))
}

func (s *SyncLogSuite) repo() *repository.SyncLogRepository {
	return repository.NewSyncLogRepository(s.DB)
}

func (s *SyncLogSuite) TestLifecycle() {
	s.Run("clean run completes with no error text", func() {
		repo := s.repo()
		ctx := context.Background()
		startedAt := time.Now().UTC().Truncate(time.Second)

		l := synclog.NewSyncLog(synclog.TypeAll, startedAt)
		require.NoError(s.T(), repo.Create(ctx, l))
		require.NoError(s.T(), l.Complete(synclog.StatusSuccess, startedAt.Add(2*time.Second), 5, 3, 2, nil))
		require.NoError(s.T(), repo.Complete(ctx, l))

		stored, err := repo.FindByID(ctx, l.ID)
		require.NoError(s.T(), err)
		require.Equal(s.T(), synclog.StatusSuccess, stored.Status)
		require.NotNil(s.T(), stored.CompletedAt)
		require.Equal(s.T(), 5, stored.RecordsProcessed)
		require.Equal(s.T(), 3, stored.RecordsCreated)
		require.Equal(s.T(), 2, stored.RecordsUpdated)
		require.Nil(s.T(), stored.Errors)
	})

	s.Run("partial run persists joined error text", func() {
		repo := s.repo()
		ctx := context.Background()
		startedAt := time.Now().UTC().Truncate(time.Second)
		errText := "rooms: remote unavailable\nguests: rate limit exceeded"

		l := synclog.NewSyncLog(synclog.TypeAll, startedAt)
		require.NoError(s.T(), repo.Create(ctx, l))
		require.NoError(s.T(), l.Complete(synclog.StatusPartial, startedAt.Add(time.Second), 4, 1, 0, &errText))
		require.NoError(s.T(), repo.Complete(ctx, l))

		stored, err := repo.FindByID(ctx, l.ID)
		require.NoError(s.T(), err)
		require.Equal(s.T(), synclog.StatusPartial, stored.Status)
		require.NotNil(s.T(), stored.Errors)
		require.Equal(s.T(), errText, *stored.Errors)
	})

	s.Run("last successful ignores partial and in-progress runs", func() {
		repo := s.repo()
		ctx := context.Background()
		base := time.Now().UTC().Truncate(time.Second).Add(-time.Hour)

		success := synclog.NewSyncLog(synclog.TypeAll, base)
		require.NoError(s.T(), repo.Create(ctx, success))
		require.NoError(s.T(), success.Complete(synclog.StatusSuccess, base.Add(time.Minute), 1, 1, 0, nil))
		require.NoError(s.T(), repo.Complete(ctx, success))

		partialErr := "reservations: boom"
		partial := synclog.NewSyncLog(synclog.TypeAll, base.Add(10*time.Minute))
		require.NoError(s.T(), repo.Create(ctx, partial))
		require.NoError(s.T(), partial.Complete(synclog.StatusPartial, base.Add(11*time.Minute), 1, 0, 0, &partialErr))
		require.NoError(s.T(), repo.Complete(ctx, partial))

		running := synclog.NewSyncLog(synclog.TypeAll, base.Add(20*time.Minute))
		require.NoError(s.T(), repo.Create(ctx, running))

		last, err := repo.LastSuccessful(ctx, synclog.TypeAll)
		require.NoError(s.T(), err)
		require.Equal(s.T(), success.ID, last.ID)
	})

	s.Run("completing twice is rejected", func() {
		repo := s.repo()
		ctx := context.Background()
		startedAt := time.Now().UTC().Truncate(time.Second)

		l := synclog.NewSyncLog(synclog.TypeAll, startedAt)
		require.NoError(s.T(), repo.Create(ctx, l))
		require.NoError(s.T(), l.Complete(synclog.StatusSuccess, startedAt.Add(time.Second), 0, 0, 0, nil))
		require.NoError(s.T(), repo.Complete(ctx, l))

		err := repo.Complete(ctx, l)
		require.Error(s.T(), err)
		require.True(s.T(), infra.IsKind(err, infra.KindNotFound))
	})
}
