package response

import (
	"time"

	"hotel-backoffice/internal/infra/repository"

	"github.com/google/uuid"
)

type ContactResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromContact(rec *repository.ContactRecord) *ContactResponse {
	return &ContactResponse{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		Phone:     rec.Phone,
		Subject:   rec.Subject,
		Message:   rec.Message,
		Status:    string(rec.Status),
		CreatedAt: rec.CreatedAt,
	}
}

func FromContacts(recs []*repository.ContactRecord) []*ContactResponse {
	out := make([]*ContactResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, FromContact(rec))
	}
	return out
}
