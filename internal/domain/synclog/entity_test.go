//go:build unit

package synclog_test

import (
	"testing"
	"time"

	"hotel-backoffice/internal/domain/synclog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSyncLog(t *testing.T) {
	startedAt := time.Date(2026, 3, 12, 6, 0, 0, 0, time.UTC)
	l := synclog.NewSyncLog(synclog.TypeAll, startedAt)

	assert.Equal(t, synclog.TypeAll, l.Type)
	assert.Equal(t, synclog.StatusInProgress, l.Status)
	assert.Equal(t, startedAt, l.StartedAt)
	assert.Nil(t, l.CompletedAt)
	assert.Nil(t, l.Errors)
}

func TestCompleteAppliesTerminalStatusOnce(t *testing.T) {
	startedAt := time.Date(2026, 3, 12, 6, 0, 0, 0, time.UTC)
	completedAt := startedAt.Add(3 * time.Second)
	errText := "rooms: remote unavailable"

	l := synclog.NewSyncLog(synclog.TypeAll, startedAt)
	require.NoError(t, l.Complete(synclog.StatusPartial, completedAt, 10, 4, 3, &errText))

	assert.Equal(t, synclog.StatusPartial, l.Status)
	require.NotNil(t, l.CompletedAt)
	assert.Equal(t, completedAt, *l.CompletedAt)
	assert.Equal(t, 10, l.RecordsProcessed)
	assert.Equal(t, 4, l.RecordsCreated)
	assert.Equal(t, 3, l.RecordsUpdated)
	require.NotNil(t, l.Errors)
	assert.Equal(t, errText, *l.Errors)

	err := l.Complete(synclog.StatusSuccess, completedAt.Add(time.Second), 0, 0, 0, nil)
	assert.ErrorIs(t, err, synclog.ErrAlreadyTerminal)
	assert.Equal(t, synclog.StatusPartial, l.Status)
	assert.Equal(t, completedAt, *l.CompletedAt)
}

func TestCompleteRejectsNonTerminalStatus(t *testing.T) {
	l := synclog.NewSyncLog(synclog.TypeRooms, time.Now())

	err := l.Complete(synclog.StatusInProgress, time.Now(), 0, 0, 0, nil)
	require.Error(t, err)
	assert.Equal(t, synclog.StatusInProgress, l.Status)
	assert.Nil(t, l.CompletedAt)
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, synclog.StatusInProgress.IsTerminal())
	assert.True(t, synclog.StatusSuccess.IsTerminal())
	assert.True(t, synclog.StatusPartial.IsTerminal())
	assert.True(t, synclog.StatusFailed.IsTerminal())
}
