package response

import (
	"time"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/infra/repository"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID              uuid.UUID `json:"id"`
	RoomID          uuid.UUID `json:"roomId"`
	ClientID        uuid.UUID `json:"clientId"`
	CheckIn         string    `json:"checkIn"`
	CheckOut        string    `json:"checkOut"`
	Nights          int       `json:"nights"`
	Adults          int       `json:"adults"`
	Children        int       `json:"children"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	Status          string    `json:"status"`
	ExternalID      *string   `json:"externalId,omitempty"`
}

type ReservationListResponse struct {
	ID              uuid.UUID `json:"id"`
	RoomID          uuid.UUID `json:"roomId"`
	RoomName        string    `json:"roomName"`
	ClientID        uuid.UUID `json:"clientId"`
	ClientName      string    `json:"clientName"`
	ClientEmail     string    `json:"clientEmail"`
	CheckIn         string    `json:"checkIn"`
	CheckOut        string    `json:"checkOut"`
	Adults          int       `json:"adults"`
	Children        int       `json:"children"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	Status          string    `json:"status"`
	ExternalID      *string   `json:"externalId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

const dateLayout = "2006-01-02"

func FromReservation(res *reservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:              res.ID(),
		RoomID:          res.RoomID(),
		ClientID:        res.ClientID(),
		CheckIn:         res.Stay().CheckIn().Format(dateLayout),
		CheckOut:        res.Stay().CheckOut().Format(dateLayout),
		Nights:          res.Stay().Nights(),
		Adults:          res.Adults(),
		Children:        res.Children(),
		SpecialRequests: res.SpecialRequests(),
		TotalPriceCents: res.TotalPrice().Cents(),
		Status:          string(res.Status()),
		ExternalID:      res.ExternalID(),
	}
}

func FromReservationView(v *repository.ReservationView) *ReservationListResponse {
	return &ReservationListResponse{
		ID:              v.ID,
		RoomID:          v.RoomID,
		RoomName:        v.RoomName,
		ClientID:        v.ClientID,
		ClientName:      v.ClientName,
		ClientEmail:     v.ClientEmail,
		CheckIn:         v.CheckIn.Format(dateLayout),
		CheckOut:        v.CheckOut.Format(dateLayout),
		Adults:          v.Adults,
		Children:        v.Children,
		TotalPriceCents: v.TotalPriceCents,
		Status:          string(v.Status),
		ExternalID:      v.ExternalID,
		CreatedAt:       v.CreatedAt,
	}
}

func FromReservationViews(views []*repository.ReservationView) []*ReservationListResponse {
	out := make([]*ReservationListResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromReservationView(v))
	}
	return out
}
