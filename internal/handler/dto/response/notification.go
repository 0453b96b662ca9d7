package response

import (
	"time"

	"hotel-backoffice/internal/infra/repository"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	Module     string    `json:"module,omitempty"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	EntityType string    `json:"entityType,omitempty"`
	EntityID   string    `json:"entityId,omitempty"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromNotification(rec *repository.NotificationRecord) *NotificationResponse {
	return &NotificationResponse{
		ID:         rec.ID,
		Type:       string(rec.Type),
		Module:     rec.Module,
		Title:      rec.Title,
		Message:    rec.Message,
		EntityType: rec.EntityType,
		EntityID:   rec.EntityID,
		Read:       rec.Read,
		CreatedAt:  rec.CreatedAt,
	}
}

func FromNotifications(recs []*repository.NotificationRecord) []*NotificationResponse {
	out := make([]*NotificationResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, FromNotification(rec))
	}
	return out
}
