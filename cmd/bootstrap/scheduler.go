package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"hotel-backoffice/internal/pkg/config"
	"hotel-backoffice/internal/usecase"
	syncuc "hotel-backoffice/internal/usecase/sync"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(
		StartSyncScheduler,
		StartNotificationCleanup,
	),
)

// StartSyncScheduler runs periodic PMS synchronization. Overlapping ticks are
// rejected by the orchestrator's coordinator, so a slow run simply causes the
// next tick to be skipped.
func StartSyncScheduler(lc fx.Lifecycle, cfg config.Config, syncUC usecase.SyncUseCase, logger *slog.Logger) {
	if !cfg.Sync.Enabled || !cfg.PMS.Enabled {
		logger.Info("sync scheduler disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(cfg.Sync.Interval)
				defer ticker.Stop()
				logger.Info("sync scheduler started", "interval", cfg.Sync.Interval)
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						report, err := syncUC.Trigger(ctx)
						if err != nil {
							if errors.Is(err, syncuc.ErrAlreadyRunning) {
								logger.Info("scheduled sync skipped, previous run still in progress")
								continue
							}
							logger.Error("scheduled sync failed", "error", err)
							continue
						}
						logger.Info("scheduled sync finished",
							"status", report.Status,
							"processed", report.Total.Processed,
							"duration", report.Duration(),
						)
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			<-done
			return nil
		},
	})
}

// StartNotificationCleanup prunes read notifications past their retention age.
func StartNotificationCleanup(lc fx.Lifecycle, cfg config.Config, notificationUC usecase.NotificationUseCase, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(cfg.Sync.NotificationCleanupEvery)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						deleted, err := notificationUC.Cleanup(ctx, cfg.Sync.NotificationMaxAge)
						if err != nil {
							logger.Error("notification cleanup failed", "error", err)
							continue
						}
						if deleted > 0 {
							logger.Info("notification cleanup finished", "deleted", deleted)
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			<-done
			return nil
		},
	})
}
