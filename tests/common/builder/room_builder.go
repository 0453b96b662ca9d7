//go:build unit || e2e

package builder

import (
	domroom "hotel-backoffice/internal/domain/room"
	reqdto "hotel-backoffice/internal/handler/dto/request"
)

type RoomBuilder struct {
	Name        string
	RoomNumber  string
	Type        string
	Description string
	BedType     string
	PriceCents  int64
	Capacity    int
	MaxChildren int
	UnitCount   int
	Amenities   []string
	Images      []string
	ExternalID  *string
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		Name:        "Deluxe King Suite",
		RoomNumber:  "101",
		Type:        "suite",
		Description: "Spacious suite with sea view",
		BedType:     "king",
		PriceCents:  15000,
		Capacity:    3,
		MaxChildren: 1,
		UnitCount:   1,
		Amenities:   []string{"wifi", "minibar"},
		Images:      []string{},
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) BuildDomain() *domroom.Room {
	return &domroom.Room{
		Name:        b.Name,
		RoomNumber:  b.RoomNumber,
		Type:        b.Type,
		Description: b.Description,
		BedType:     b.BedType,
		PriceCents:  b.PriceCents,
		Capacity:    b.Capacity,
		MaxChildren: b.MaxChildren,
		UnitCount:   b.UnitCount,
		Amenities:   b.Amenities,
		Images:      b.Images,
		Status:      domroom.StatusAvailable,
		ExternalID:  b.ExternalID,
	}
}

func (b *RoomBuilder) BuildRequestDTO() reqdto.RoomRequest {
	return reqdto.RoomRequest{
		Name:        b.Name,
		RoomNumber:  b.RoomNumber,
		Type:        b.Type,
		Description: b.Description,
		BedType:     b.BedType,
		PriceCents:  b.PriceCents,
		Capacity:    b.Capacity,
		MaxChildren: b.MaxChildren,
		UnitCount:   b.UnitCount,
		Amenities:   b.Amenities,
		Images:      b.Images,
	}
}
