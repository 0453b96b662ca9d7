package request

import "hotel-backoffice/internal/domain/room"

type RoomRequest struct {
	Name        string   `json:"name" binding:"required"`
	RoomNumber  string   `json:"roomNumber" binding:"required"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	BedType     string   `json:"bedType"`
	PriceCents  int64    `json:"priceCents" binding:"min=0"`
	Capacity    int      `json:"capacity" binding:"required,min=1"`
	MaxChildren int      `json:"maxChildren" binding:"min=0"`
	UnitCount   int      `json:"unitCount" binding:"min=0"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
	Status      string   `json:"status"`
}

func (r RoomRequest) ToDomain() *room.Room {
	return &room.Room{
		Name:        r.Name,
		RoomNumber:  r.RoomNumber,
		Type:        r.Type,
		Description: r.Description,
		BedType:     r.BedType,
		PriceCents:  r.PriceCents,
		Capacity:    r.Capacity,
		MaxChildren: r.MaxChildren,
		UnitCount:   r.UnitCount,
		Amenities:   r.Amenities,
		Images:      r.Images,
		Status:      room.Status(r.Status),
	}
}
