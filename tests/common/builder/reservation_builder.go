//go:build unit || e2e

package builder

import (
	"time"

	domres "hotel-backoffice/internal/domain/reservation"
	reqdto "hotel-backoffice/internal/handler/dto/request"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	RoomID          uuid.UUID
	ClientID        uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	Adults          int
	Children        int
	SpecialRequests string
	TotalCents      int64
	Now             time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		RoomID:          uuid.New(),
		ClientID:        uuid.New(),
		CheckIn:         now.AddDate(0, 0, 7),
		CheckOut:        now.AddDate(0, 0, 10),
		Adults:          2,
		Children:        0,
		SpecialRequests: "late arrival",
		TotalCents:      45000,
		Now:             now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() (*domres.Reservation, error) {
	stay, err := domres.NewFutureStayRange(b.CheckIn, b.CheckOut, b.Now)
	if err != nil {
		return nil, err
	}
	total, err := domres.NewMoney(b.TotalCents)
	if err != nil {
		return nil, err
	}
	return domres.NewReservation(b.RoomID, b.ClientID, stay, b.Adults, b.Children, b.SpecialRequests, total)
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RoomID:          b.RoomID,
		ClientID:        b.ClientID,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Adults:          b.Adults,
		Children:        b.Children,
		SpecialRequests: b.SpecialRequests,
	}
}
