package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RoomID          uuid.UUID `json:"roomId" binding:"required"`
	ClientID        uuid.UUID `json:"clientId" binding:"required"`
	CheckIn         time.Time `json:"checkIn" binding:"required"`
	CheckOut        time.Time `json:"checkOut" binding:"required"`
	Adults          int       `json:"adults" binding:"required,min=1"`
	Children        int       `json:"children" binding:"min=0"`
	SpecialRequests string    `json:"specialRequests"`
}

type UpdateReservationRequest struct {
	CheckIn  time.Time `json:"checkIn" binding:"required"`
	CheckOut time.Time `json:"checkOut" binding:"required"`
	Adults   int       `json:"adults" binding:"required,min=1"`
	Children int       `json:"children" binding:"min=0"`
}

type CheckAvailabilityRequest struct {
	RoomID   uuid.UUID `form:"roomId" binding:"required"`
	CheckIn  time.Time `form:"checkIn" binding:"required" time_format:"2006-01-02"`
	CheckOut time.Time `form:"checkOut" binding:"required" time_format:"2006-01-02"`
}
