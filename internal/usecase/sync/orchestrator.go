package sync

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hotel-backoffice/internal/domain/notification"
	"hotel-backoffice/internal/domain/synclog"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/pkg/config"
)

// Orchestrator runs one full synchronization pass: rooms first (guests and
// reservations depend on rooms existing locally), then guests, then
// reservations, each pass idempotent on its own. Runs are serialized by the
// Coordinator; scheduled and manual triggers share the same path.
type Orchestrator struct {
	coordinator  *Coordinator
	rooms        *RoomReconciler
	guests       *GuestReconciler
	reservations *ReservationReconciler
	logs         SyncLogStore
	notifier     Notifier
	events       Events
	clock        clock.Clock
	skew         time.Duration
	tzOffset     int
	log          *slog.Logger
}

func NewOrchestrator(
	coordinator *Coordinator,
	rooms *RoomReconciler,
	guests *GuestReconciler,
	reservations *ReservationReconciler,
	logs SyncLogStore,
	notifier Notifier,
	events Events,
	clk clock.Clock,
	syncCfg config.SyncConfig,
	pmsCfg config.PMSConfig,
	log *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		coordinator:  coordinator,
		rooms:        rooms,
		guests:       guests,
		reservations: reservations,
		logs:         logs,
		notifier:     notifier,
		events:       events,
		clock:        clk,
		skew:         syncCfg.WatermarkSkew,
		tzOffset:     pmsCfg.TZOffset,
		log:          log,
	}
}

// Run executes one orchestration pass. A concurrent call fails fast with
// ErrAlreadyRunning before any sync log row is written.
func (o *Orchestrator) Run(ctx context.Context) (*Report, error) {
	startedAt := o.clock.Now()
	if err := o.coordinator.TryBegin(startedAt); err != nil {
		return nil, err
	}
	defer o.coordinator.End()

	log := synclog.NewSyncLog(synclog.TypeAll, startedAt)
	if err := o.logs.Create(ctx, log); err != nil {
		return nil, err
	}

	o.events.SyncStarted(startedAt)
	o.log.Info("sync started", "log_id", log.ID)

	report := &Report{LogID: log.ID.String(), StartedAt: startedAt}

	func() {
		defer func() {
			if r := recover(); r != nil {
				report.Status = synclog.StatusFailed
				report.Total.Errors = append(report.Total.Errors, fmt.Sprintf("panic: %v", r))
				o.log.Error("sync panicked", "log_id", log.ID, "panic", r)
			}
		}()
		o.runPhases(ctx, report)
	}()

	report.CompletedAt = o.clock.Now()
	if report.Status == "" {
		report.Status = outcome(report.Total)
	}

	o.persist(ctx, log, report)
	o.emit(ctx, report)

	o.log.Info("sync finished",
		"log_id", log.ID,
		"status", report.Status,
		"processed", report.Total.Processed,
		"created", report.Total.Created,
		"updated", report.Total.Updated,
		"errors", len(report.Total.Errors),
		"duration", report.Duration(),
	)
	return report, nil
}

// runPhases executes the three entity passes in their required order. A
// phase-level failure (for example the remote rejecting credentials) is
// recorded and the remaining phases still run, so one broken endpoint does
// not hide progress on the others.
func (o *Orchestrator) runPhases(ctx context.Context, report *Report) {
	watermark := o.computeWatermark(ctx)

	rooms, err := o.rooms.Run(ctx)
	report.Rooms = rooms
	report.Total.merge(rooms)
	if err != nil {
		report.Total.Errors = append(report.Total.Errors, fmt.Sprintf("rooms: %v", err))
	}

	guests, err := o.guests.Run(ctx, watermark)
	report.Guests = guests
	report.Total.merge(guests)
	if err != nil {
		report.Total.Errors = append(report.Total.Errors, fmt.Sprintf("guests: %v", err))
	}

	reservations, err := o.reservations.Run(ctx, watermark)
	report.Reservations = reservations
	report.Total.merge(reservations)
	if err != nil {
		report.Total.Errors = append(report.Total.Errors, fmt.Sprintf("reservations: %v", err))
	}
}

func (o *Orchestrator) computeWatermark(ctx context.Context) time.Time {
	var lastSuccess *time.Time
	last, err := o.logs.LastSuccessful(ctx, synclog.TypeAll)
	if err == nil && last.CompletedAt != nil {
		lastSuccess = last.CompletedAt
	} else if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		o.log.Warn("failed to load last successful sync, using first-run default", "error", err)
	}
	return ComputeWatermark(lastSuccess, o.clock.Now(), o.skew, o.tzOffset)
}

func outcome(total Result) synclog.Status {
	if len(total.Errors) > 0 {
		return synclog.StatusPartial
	}
	return synclog.StatusSuccess
}

func (o *Orchestrator) persist(ctx context.Context, log *synclog.SyncLog, report *Report) {
	var errText *string
	if len(report.Total.Errors) > 0 {
		joined := strings.Join(report.Total.Errors, "\n")
		errText = &joined
	}
	if err := log.Complete(report.Status, report.CompletedAt,
		report.Total.Processed, report.Total.Created, report.Total.Updated, errText); err != nil {
		o.log.Error("sync log transition rejected", "log_id", log.ID, "error", err)
		return
	}
	if err := o.logs.Complete(ctx, log); err != nil {
		o.log.Error("failed to persist sync log completion", "log_id", log.ID, "error", err)
	}
}

// emit fans the run outcome out to notifications and the live channel: one
// notification per created/updated item, one summary, and the lifecycle
// event for dashboards.
func (o *Orchestrator) emit(ctx context.Context, report *Report) {
	if report.Status == synclog.StatusFailed {
		msg := "synchronization failed"
		if len(report.Total.Errors) > 0 {
			msg = report.Total.Errors[len(report.Total.Errors)-1]
		}
		o.events.SyncFailed(msg)
		o.notifier.Notify(ctx, &notification.Notification{
			Type:    notification.TypeSyncFailed,
			Module:  "sync",
			Title:   "Synchronization failed",
			Message: msg,
		})
		return
	}

	o.notifyItems(ctx, "Room", report.Rooms)
	o.notifyItems(ctx, "Guest", report.Guests)
	o.notifyItems(ctx, "Reservation", report.Reservations)

	o.notifier.Notify(ctx, &notification.Notification{
		Type:   notification.TypeSyncSummary,
		Module: "sync",
		Title:  "Synchronization completed",
		Message: fmt.Sprintf("%d processed, %d created, %d updated, %d errors in %s",
			report.Total.Processed, report.Total.Created, report.Total.Updated,
			len(report.Total.Errors), report.Duration().Round(time.Millisecond)),
	})
	o.events.SyncCompleted(report)
}

func (o *Orchestrator) notifyItems(ctx context.Context, entity string, result Result) {
	entityType := strings.ToLower(entity)
	for _, item := range result.CreatedItems {
		o.notifier.Notify(ctx, &notification.Notification{
			Type:       notification.TypeSyncCreated,
			Module:     "sync",
			Title:      fmt.Sprintf("%s created", entity),
			Message:    fmt.Sprintf("%s %q imported from PMS", entity, item.Name),
			EntityType: entityType,
			EntityID:   item.ID,
		})
	}
	for _, item := range result.UpdatedItems {
		o.notifier.Notify(ctx, &notification.Notification{
			Type:       notification.TypeSyncUpdated,
			Module:     "sync",
			Title:      fmt.Sprintf("%s updated", entity),
			Message:    fmt.Sprintf("%s %q: %s", entity, item.Name, strings.Join(item.Changes, "; ")),
			EntityType: entityType,
			EntityID:   item.ID,
		})
	}
}

// Status reports whether a run is active and since when.
func (o *Orchestrator) Status() State {
	return o.coordinator.Status()
}
