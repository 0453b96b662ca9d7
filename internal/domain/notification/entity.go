package notification

import "errors"

var ErrEmptyMessage = errors.New("notification message cannot be empty")

type Type string

const (
	TypeSyncCreated Type = "sync_created"
	TypeSyncUpdated Type = "sync_updated"
	TypeSyncSummary Type = "sync_summary"
	TypeSyncFailed  Type = "sync_failed"
	TypeBooking     Type = "booking"
	TypeContact     Type = "contact"
)

// Notification is one staff alert. Module names the producing subsystem
// (sync, reservations, contacts) and the entity reference points at the
// record the alert is about, so the dashboard can link through to it.
type Notification struct {
	Type       Type
	Module     string
	Title      string
	Message    string
	EntityType string
	EntityID   string
	Read       bool
}

func (n *Notification) Validate() error {
	if n.Message == "" {
		return ErrEmptyMessage
	}
	if n.Type == "" {
		n.Type = TypeSyncSummary
	}
	return nil
}
