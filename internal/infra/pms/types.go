package pms

import "time"

// Record is one raw item from a PMS list endpoint. Field names vary across
// endpoint versions, so extraction happens downstream against fallback chains
// rather than a fixed struct.
type Record map[string]any

// RoomType is one entry of the property's room-type catalog.
type RoomType struct {
	ID               string   `json:"roomTypeID"`
	Name             string   `json:"roomTypeName"`
	NameShort        string   `json:"roomTypeNameShort"`
	Description      string   `json:"roomTypeDescription"`
	MaxGuests        int      `json:"maxGuests"`
	AdultsIncluded   int      `json:"adultsIncluded"`
	ChildrenIncluded int      `json:"childrenIncluded"`
	UnitsAvailable   int      `json:"roomsAvailable"`
	Rate             float64  `json:"roomRate"`
	Features         []string `json:"roomTypeFeatures"`
	Photos           []string `json:"roomTypePhotos"`
}

// Availability is per-room-type availability for one date range.
type Availability struct {
	RoomTypeID     string  `json:"roomTypeID"`
	RoomTypeName   string  `json:"roomTypeName"`
	RoomsAvailable int     `json:"roomsAvailable"`
	Rate           float64 `json:"roomRate"`
}

// ListParams controls incremental list pulls. A zero ModifiedSince means a
// full pull.
type ListParams struct {
	ModifiedSince string
	PageSize      int
}

// CreateReservationParams is the outbound booking pushed to the PMS.
type CreateReservationParams struct {
	RoomTypeID string
	CheckIn    time.Time
	CheckOut   time.Time
	Adults     int
	Children   int
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Country    string
}

// CreateReservationResult carries the remote identifiers assigned on success.
type CreateReservationResult struct {
	ReservationID string
	GuestID       string
	Status        string
}
