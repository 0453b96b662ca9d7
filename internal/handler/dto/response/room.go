package response

import (
	"time"

	"hotel-backoffice/internal/infra/repository"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	RoomNumber  string    `json:"roomNumber"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	BedType     string    `json:"bedType"`
	PriceCents  int64     `json:"priceCents"`
	Capacity    int       `json:"capacity"`
	MaxChildren int       `json:"maxChildren"`
	UnitCount   int       `json:"unitCount"`
	Amenities   []string  `json:"amenities"`
	Images      []string  `json:"images"`
	Status      string    `json:"status"`
	ExternalID  *string   `json:"externalId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromRoom(rec *repository.RoomRecord) *RoomResponse {
	return &RoomResponse{
		ID:          rec.ID,
		Name:        rec.Name,
		RoomNumber:  rec.RoomNumber,
		Type:        rec.Type,
		Description: rec.Description,
		BedType:     rec.BedType,
		PriceCents:  rec.PriceCents,
		Capacity:    rec.Capacity,
		MaxChildren: rec.MaxChildren,
		UnitCount:   rec.UnitCount,
		Amenities:   rec.Amenities,
		Images:      rec.Images,
		Status:      string(rec.Status),
		ExternalID:  rec.ExternalID,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}

func FromRooms(recs []*repository.RoomRecord) []*RoomResponse {
	out := make([]*RoomResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, FromRoom(rec))
	}
	return out
}
