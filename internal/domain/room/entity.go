package room

import (
	"errors"
	"strings"
)

var (
	ErrEmptyRoomNumber = errors.New("room number cannot be empty")
	ErrEmptyName       = errors.New("room name cannot be empty")
	ErrNegativePrice   = errors.New("nightly price cannot be negative")
	ErrInvalidCapacity = errors.New("capacity must be at least one guest")
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusMaintenance:
		return true
	default:
		return false
	}
}

// Room is a bookable unit type. PMS-synced fields (price, description,
// capacity, amenities) are the reconciler's to overwrite; Images are locally
// curated and only filled by sync when empty. ExternalID is the PMS room-type
// identifier and is unique when present.
type Room struct {
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
	Status      Status
	ExternalID  *string
}

func (r *Room) Validate() error {
	if strings.TrimSpace(r.RoomNumber) == "" {
		return ErrEmptyRoomNumber
	}
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	if r.PriceCents < 0 {
		return ErrNegativePrice
	}
	if r.Capacity < 1 {
		return ErrInvalidCapacity
	}
	if r.Status == "" {
		r.Status = StatusAvailable
	}
	return nil
}

// BedTypeFromName derives a bed description from room-type naming
// conventions; the PMS catalog rarely carries an explicit bed type.
func BedTypeFromName(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "king"):
		return "king"
	case strings.Contains(lower, "queen"):
		return "queen"
	case strings.Contains(lower, "twin"):
		return "twin"
	case strings.Contains(lower, "double") || strings.Contains(lower, "doble"):
		return "double"
	case strings.Contains(lower, "single") || strings.Contains(lower, "sencilla"):
		return "single"
	default:
		return ""
	}
}

// CategoryFromName maps a room-type display name onto the local category
// vocabulary. Unrecognized names fall back to "double".
func CategoryFromName(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "suite"):
		return "suite"
	case strings.Contains(lower, "family") || strings.Contains(lower, "familiar"):
		return "family"
	case strings.Contains(lower, "quad") || strings.Contains(lower, "cuadruple"):
		return "quad"
	case strings.Contains(lower, "single") || strings.Contains(lower, "sencilla"):
		return "single"
	default:
		return "double"
	}
}
