//go:build unit

package sync

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-backoffice/internal/domain/notification"
	"hotel-backoffice/internal/domain/synclog"
	"hotel-backoffice/internal/infra/pms"
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var syncNow = time.Date(2026, 3, 12, 6, 0, 0, 0, time.UTC)

type panicPMS struct {
	*fakePMS
}

func (p *panicPMS) ListRoomTypes(context.Context) ([]pms.RoomType, error) {
	panic("pms client state corrupted")
}

func buildOrchestrator(
	remote pms.Client,
	coord *Coordinator,
	logs *fakeSyncLogStore,
	notifier *fakeNotifier,
	events *fakeEvents,
	clk clock.Clock,
) *Orchestrator {
	rooms := NewRoomReconciler(remote, newFakeRoomStore(), nil, clk, discardLogger())
	guests := NewGuestReconciler(remote, newFakeClientStore(), nil, caracasOffset, discardLogger())
	reservations := NewReservationReconciler(remote, newFakeReservationStore(),
		newFakeRoomStore(), newFakeClientStore(), nil, caracasOffset, discardLogger())
	return NewOrchestrator(coord, rooms, guests, reservations, logs, notifier, events, clk,
		config.SyncConfig{WatermarkSkew: 15 * time.Minute},
		config.PMSConfig{TZOffset: caracasOffset},
		discardLogger())
}

func TestOrchestratorSuccessfulRun(t *testing.T) {
	lastDone := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	lastLog := synclog.NewSyncLog(synclog.TypeAll, lastDone.Add(-time.Minute))
	require.NoError(t, lastLog.Complete(synclog.StatusSuccess, lastDone, 0, 0, 0, nil))

	remote := &fakePMS{
		roomTypes: []pms.RoomType{suiteRoomType()},
		guests:    []pms.Record{guestRecord()},
	}
	logs := &fakeSyncLogStore{lastSuccess: lastLog}
	notifier := &fakeNotifier{}
	events := &fakeEvents{}
	orch := buildOrchestrator(remote, NewCoordinator(), logs, notifier, events, clock.NewMockClock(syncNow))

	report, err := orch.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, synclog.StatusSuccess, report.Status)
	assert.Equal(t, 1, report.Rooms.Created)
	assert.Equal(t, 1, report.Guests.Created)
	assert.Equal(t, 2, report.Total.Created)
	assert.Empty(t, report.Total.Errors)

	// The incremental window is the last completion minus the skew,
	// rendered in the remote's zone.
	assert.Equal(t, "2026-03-10 19:45:00", remote.guestsModifiedSince)

	require.Len(t, logs.createdLogs, 1)
	require.Len(t, logs.completed, 1)
	persisted := logs.completed[0]
	assert.Equal(t, synclog.StatusSuccess, persisted.Status)
	assert.Equal(t, report.Total.Processed, persisted.RecordsProcessed)
	assert.Equal(t, 2, persisted.RecordsCreated)
	assert.Nil(t, persisted.Errors)

	require.Len(t, events.started, 1)
	assert.True(t, events.started[0].Equal(syncNow))
	require.Len(t, events.completed, 1)
	assert.Empty(t, events.failed)

	created := notifier.byType(notification.TypeSyncCreated)
	require.Len(t, created, 2)
	for _, n := range created {
		assert.Equal(t, "sync", n.Module)
		assert.NotEmpty(t, n.EntityID, "per-item notification must reference the local record")
	}
	entityTypes := []string{created[0].EntityType, created[1].EntityType}
	assert.ElementsMatch(t, []string{"room", "guest"}, entityTypes)

	require.Len(t, notifier.byType(notification.TypeSyncSummary), 1)
	summary := notifier.byType(notification.TypeSyncSummary)[0]
	assert.Equal(t, "sync", summary.Module)
	assert.Contains(t, summary.Message, "2 created")
	assert.Empty(t, notifier.byType(notification.TypeSyncFailed))
}

func TestOrchestratorFirstRunUsesRemoteMidnight(t *testing.T) {
	remote := &fakePMS{guests: []pms.Record{guestRecord()}}
	orch := buildOrchestrator(remote, NewCoordinator(), &fakeSyncLogStore{}, &fakeNotifier{}, &fakeEvents{},
		clock.NewMockClock(syncNow))

	_, err := orch.Run(context.Background())
	require.NoError(t, err)

	// 06:00 UTC is 02:00 in the remote's UTC-4 zone, so the first-run
	// floor is that day's remote midnight.
	assert.Equal(t, "2026-03-12 00:00:00", remote.guestsModifiedSince)
}

func TestOrchestratorPartialWhenPhaseFails(t *testing.T) {
	remote := &fakePMS{
		roomTypesErr: errors.New("pms: status 401"),
		guests:       []pms.Record{guestRecord()},
	}
	logs := &fakeSyncLogStore{}
	notifier := &fakeNotifier{}
	events := &fakeEvents{}
	orch := buildOrchestrator(remote, NewCoordinator(), logs, notifier, events, clock.NewMockClock(syncNow))

	report, err := orch.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, synclog.StatusPartial, report.Status)
	require.Len(t, report.Total.Errors, 1)
	assert.Contains(t, report.Total.Errors[0], "rooms:")

	// The broken catalog endpoint does not stop the guest pass.
	assert.Equal(t, 1, report.Guests.Created)

	require.Len(t, logs.completed, 1)
	assert.Equal(t, synclog.StatusPartial, logs.completed[0].Status)
	require.NotNil(t, logs.completed[0].Errors)
	assert.Contains(t, *logs.completed[0].Errors, "rooms:")

	assert.Len(t, notifier.byType(notification.TypeSyncSummary), 1)
	require.Len(t, events.completed, 1)
	assert.Empty(t, events.failed)
}

func TestOrchestratorFailedOnPanic(t *testing.T) {
	remote := &panicPMS{fakePMS: &fakePMS{}}
	logs := &fakeSyncLogStore{}
	notifier := &fakeNotifier{}
	events := &fakeEvents{}
	orch := buildOrchestrator(remote, NewCoordinator(), logs, notifier, events, clock.NewMockClock(syncNow))

	report, err := orch.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, synclog.StatusFailed, report.Status)
	require.Len(t, report.Total.Errors, 1)
	assert.Contains(t, report.Total.Errors[0], "panic")

	require.Len(t, logs.completed, 1)
	assert.Equal(t, synclog.StatusFailed, logs.completed[0].Status)

	require.Len(t, events.failed, 1)
	assert.Contains(t, events.failed[0], "panic")
	assert.Empty(t, events.completed)
	require.Len(t, notifier.byType(notification.TypeSyncFailed), 1)
	assert.Empty(t, notifier.byType(notification.TypeSyncSummary))

	// A failed run releases the slot for the next one.
	assert.False(t, orch.Status().Running)
}

func TestOrchestratorRejectsConcurrentRun(t *testing.T) {
	coord := NewCoordinator()
	require.NoError(t, coord.TryBegin(syncNow))

	logs := &fakeSyncLogStore{}
	events := &fakeEvents{}
	orch := buildOrchestrator(&fakePMS{}, coord, logs, &fakeNotifier{}, events, clock.NewMockClock(syncNow))

	report, err := orch.Run(context.Background())
	require.ErrorIs(t, err, ErrAlreadyRunning)
	assert.Nil(t, report)

	// Fast-fail happens before any audit row is written.
	assert.Empty(t, logs.createdLogs)
	assert.Empty(t, events.started)
}
