package response

import (
	"time"

	"hotel-backoffice/internal/domain/synclog"
	"hotel-backoffice/internal/usecase/sync"

	"github.com/google/uuid"
)

type SyncPhaseResponse struct {
	Processed int      `json:"processed"`
	Created   int      `json:"created"`
	Updated   int      `json:"updated"`
	Skipped   int      `json:"skipped"`
	Errors    []string `json:"errors,omitempty"`
}

type SyncReportResponse struct {
	LogID        string            `json:"logId"`
	Status       string            `json:"status"`
	StartedAt    time.Time         `json:"startedAt"`
	CompletedAt  time.Time         `json:"completedAt"`
	DurationMS   int64             `json:"durationMs"`
	Rooms        SyncPhaseResponse `json:"rooms"`
	Guests       SyncPhaseResponse `json:"guests"`
	Reservations SyncPhaseResponse `json:"reservations"`
	Errors       []string          `json:"errors,omitempty"`
}

type SyncStatusResponse struct {
	Running   bool       `json:"running"`
	StartedAt *time.Time `json:"startedAt,omitempty"`
}

type SyncLogResponse struct {
	ID               uuid.UUID  `json:"id"`
	Type             string     `json:"type"`
	Status           string     `json:"status"`
	StartedAt        time.Time  `json:"startedAt"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	RecordsProcessed int        `json:"recordsProcessed"`
	RecordsCreated   int        `json:"recordsCreated"`
	RecordsUpdated   int        `json:"recordsUpdated"`
	Errors           *string    `json:"errors,omitempty"`
}

func fromPhase(r sync.Result) SyncPhaseResponse {
	return SyncPhaseResponse{
		Processed: r.Processed,
		Created:   r.Created,
		Updated:   r.Updated,
		Skipped:   r.Skipped,
		Errors:    r.Errors,
	}
}

func FromSyncReport(report *sync.Report) *SyncReportResponse {
	return &SyncReportResponse{
		LogID:        report.LogID,
		Status:       string(report.Status),
		StartedAt:    report.StartedAt,
		CompletedAt:  report.CompletedAt,
		DurationMS:   report.Duration().Milliseconds(),
		Rooms:        fromPhase(report.Rooms),
		Guests:       fromPhase(report.Guests),
		Reservations: fromPhase(report.Reservations),
		Errors:       report.Total.Errors,
	}
}

func FromSyncState(state sync.State) *SyncStatusResponse {
	resp := &SyncStatusResponse{Running: state.Running}
	if state.Running {
		startedAt := state.StartedAt
		resp.StartedAt = &startedAt
	}
	return resp
}

func FromSyncLog(l *synclog.SyncLog) *SyncLogResponse {
	return &SyncLogResponse{
		ID:               l.ID,
		Type:             string(l.Type),
		Status:           string(l.Status),
		StartedAt:        l.StartedAt,
		CompletedAt:      l.CompletedAt,
		RecordsProcessed: l.RecordsProcessed,
		RecordsCreated:   l.RecordsCreated,
		RecordsUpdated:   l.RecordsUpdated,
		Errors:           l.Errors,
	}
}

func FromSyncLogs(logs []*synclog.SyncLog) []*SyncLogResponse {
	out := make([]*SyncLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, FromSyncLog(l))
	}
	return out
}
