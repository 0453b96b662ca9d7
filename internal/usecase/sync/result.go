package sync

import (
	"time"

	"hotel-backoffice/internal/domain/synclog"
)

// ChangedItem identifies one created or updated record along with the
// human-readable change summaries that feed notification text.
type ChangedItem struct {
	ID      string
	Name    string
	Changes []string
}

// Result is the outcome of one reconciler pass over one entity type.
type Result struct {
	Processed int
	Created   int
	Updated   int
	// Skipped counts records whose normalized fields matched local state.
	Skipped int
	// Unresolvable counts records that cannot be reconciled at all (for
	// example a guest without an email), kept apart from no-change skips.
	Unresolvable int
	CreatedItems []ChangedItem
	UpdatedItems []ChangedItem
	Errors       []string
}

func (r *Result) merge(other Result) {
	r.Processed += other.Processed
	r.Created += other.Created
	r.Updated += other.Updated
	r.Skipped += other.Skipped
	r.Unresolvable += other.Unresolvable
	r.CreatedItems = append(r.CreatedItems, other.CreatedItems...)
	r.UpdatedItems = append(r.UpdatedItems, other.UpdatedItems...)
	r.Errors = append(r.Errors, other.Errors...)
}

// Report is the aggregate outcome of one orchestration run, returned
// synchronously to manual triggers and persisted as a sync log row.
type Report struct {
	LogID        string
	Status       synclog.Status
	StartedAt    time.Time
	CompletedAt  time.Time
	Rooms        Result
	Guests       Result
	Reservations Result
	Total        Result
}

func (r *Report) Duration() time.Duration {
	return r.CompletedAt.Sub(r.StartedAt)
}
