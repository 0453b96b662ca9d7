package synclog

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrAlreadyTerminal = errors.New("sync log already has a terminal status")

type Type string

const (
	TypeRooms        Type = "rooms"
	TypeGuests       Type = "guests"
	TypeReservations Type = "reservations"
	TypeAll          Type = "all"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusSuccess    Status = "success"
	StatusFailed     Status = "failed"
	StatusPartial    Status = "partial"
)

func (s Status) IsTerminal() bool {
	return s == StatusSuccess || s == StatusFailed || s == StatusPartial
}

// SyncLog is the audit record for one orchestration run. It is created
// in_progress and moved to exactly one terminal status at run end.
type SyncLog struct {
	ID               uuid.UUID
	Type             Type
	Status           Status
	StartedAt        time.Time
	CompletedAt      *time.Time
	RecordsProcessed int
	RecordsCreated   int
	RecordsUpdated   int
	Errors           *string
	CreatedAt        time.Time
}

func NewSyncLog(t Type, startedAt time.Time) *SyncLog {
	return &SyncLog{
		ID:        uuid.New(),
		Type:      t,
		Status:    StatusInProgress,
		StartedAt: startedAt,
	}
}

// Complete applies the terminal transition. Calling it twice is a programming
// error surfaced as ErrAlreadyTerminal rather than a silent overwrite.
func (l *SyncLog) Complete(status Status, completedAt time.Time, processed, created, updated int, errText *string) error {
	if l.Status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if !status.IsTerminal() {
		return errors.New("completion status must be terminal")
	}
	l.Status = status
	l.CompletedAt = &completedAt
	l.RecordsProcessed = processed
	l.RecordsCreated = created
	l.RecordsUpdated = updated
	l.Errors = errText
	return nil
}
