package response

import (
	"time"

	"hotel-backoffice/internal/infra/repository"

	"github.com/google/uuid"
)

type ClientResponse struct {
	ID         uuid.UUID `json:"id"`
	FullName   string    `json:"fullName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Country    string    `json:"country,omitempty"`
	City       string    `json:"city,omitempty"`
	Zip        string    `json:"zip,omitempty"`
	Address    string    `json:"address,omitempty"`
	ExternalID *string   `json:"externalId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromClient(rec *repository.ClientRecord) *ClientResponse {
	return &ClientResponse{
		ID:         rec.ID,
		FullName:   rec.FullName,
		Email:      rec.Email,
		Phone:      rec.Phone,
		Country:    rec.Country,
		City:       rec.City,
		Zip:        rec.Zip,
		Address:    rec.Address,
		ExternalID: rec.ExternalID,
		CreatedAt:  rec.CreatedAt,
	}
}

func FromClients(recs []*repository.ClientRecord) []*ClientResponse {
	out := make([]*ClientResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, FromClient(rec))
	}
	return out
}
