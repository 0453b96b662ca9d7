package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoAdults          = errors.New("reservation requires at least one adult")
	ErrNegativeChildren  = errors.New("child count cannot be negative")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrDeleteConfirmed   = errors.New("confirmed reservation must be cancelled before deletion")
)

type Reservation struct {
	id              uuid.UUID
	roomID          uuid.UUID
	clientID        uuid.UUID
	stay            StayRange
	adults          int
	children        int
	specialRequests string
	totalPrice      Money
	status          Status
	externalID      *string
	// externalCreatedAt is the PMS-side creation timestamp,
	// written once on first import and never overwritten.
	externalCreatedAt *time.Time
	createdAt         time.Time
	updatedAt         time.Time
}

func NewReservation(
	roomID, clientID uuid.UUID,
	stay StayRange,
	adults, children int,
	specialRequests string,
	totalPrice Money,
) (*Reservation, error) {
	if adults < 1 {
		return nil, ErrNoAdults
	}
	if children < 0 {
		return nil, ErrNegativeChildren
	}

	return &Reservation{
		id:              uuid.New(),
		roomID:          roomID,
		clientID:        clientID,
		stay:            stay,
		adults:          adults,
		children:        children,
		specialRequests: specialRequests,
		totalPrice:      totalPrice,
		status:          StatusPending,
	}, nil
}

// NewImportedReservation builds a reservation from PMS data. Unlike manual
// bookings it may start in any mapped status and carry historical dates.
func NewImportedReservation(
	roomID, clientID uuid.UUID,
	stay StayRange,
	adults, children int,
	specialRequests string,
	totalPrice Money,
	status Status,
	externalID string,
	externalCreatedAt *time.Time,
) (*Reservation, error) {
	if adults < 1 {
		adults = 1
	}
	if children < 0 {
		children = 0
	}

	res := &Reservation{
		id:              uuid.New(),
		roomID:          roomID,
		clientID:        clientID,
		stay:            stay,
		adults:          adults,
		children:        children,
		specialRequests: specialRequests,
		totalPrice:      totalPrice,
		status:          status,
	}
	res.AttachExternal(externalID, externalCreatedAt)
	return res, nil
}

// ApplyRemoteState overwrites the PMS-owned fields during reconciliation.
// The caller is responsible for diffing first so no-op writes are avoided.
func (r *Reservation) ApplyRemoteState(
	stay StayRange,
	adults, children int,
	specialRequests string,
	totalPrice Money,
	status Status,
) {
	r.stay = stay
	if adults >= 1 {
		r.adults = adults
	}
	if children >= 0 {
		r.children = children
	}
	r.specialRequests = specialRequests
	r.totalPrice = totalPrice
	r.status = status
}

// Reschedule moves the booking to new dates. The caller re-validates room
// availability; price is recomputed from the new night count.
func (r *Reservation) Reschedule(stay StayRange, adults, children int, totalPrice Money) error {
	if r.status.IsTerminal() {
		return ErrInvalidTransition
	}
	if adults < 1 {
		return ErrNoAdults
	}
	if children < 0 {
		return ErrNegativeChildren
	}
	r.stay = stay
	r.adults = adults
	r.children = children
	r.totalPrice = totalPrice
	return nil
}

func ReconstructReservation(
	id, roomID, clientID uuid.UUID,
	stay StayRange,
	adults, children int,
	specialRequests string,
	totalPrice Money,
	status Status,
	externalID *string,
	externalCreatedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:                id,
		roomID:            roomID,
		clientID:          clientID,
		stay:              stay,
		adults:            adults,
		children:          children,
		specialRequests:   specialRequests,
		totalPrice:        totalPrice,
		status:            status,
		externalID:        externalID,
		externalCreatedAt: externalCreatedAt,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (r *Reservation) TransitionTo(next Status) error {
	if !r.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	r.status = next
	return nil
}

func (r *Reservation) Confirm() error { return r.TransitionTo(StatusConfirmed) }

func (r *Reservation) Cancel() error { return r.TransitionTo(StatusCancelled) }

func (r *Reservation) IsActive() bool {
	return r.status != StatusCancelled
}

// CanDelete guards hard deletion: a confirmed booking must be cancelled first.
func (r *Reservation) CanDelete() error {
	if r.status == StatusConfirmed {
		return ErrDeleteConfirmed
	}
	return nil
}

// AttachExternal links the reservation to its PMS counterpart. The external
// creation timestamp is preserved once set.
func (r *Reservation) AttachExternal(externalID string, externalCreatedAt *time.Time) {
	r.externalID = &externalID
	if r.externalCreatedAt == nil && externalCreatedAt != nil {
		t := *externalCreatedAt
		r.externalCreatedAt = &t
	}
}

func (r *Reservation) ID() uuid.UUID                 { return r.id }
func (r *Reservation) RoomID() uuid.UUID             { return r.roomID }
func (r *Reservation) ClientID() uuid.UUID           { return r.clientID }
func (r *Reservation) Stay() StayRange               { return r.stay }
func (r *Reservation) Adults() int                   { return r.adults }
func (r *Reservation) Children() int                 { return r.children }
func (r *Reservation) SpecialRequests() string       { return r.specialRequests }
func (r *Reservation) TotalPrice() Money             { return r.totalPrice }
func (r *Reservation) Status() Status                { return r.status }
func (r *Reservation) ExternalID() *string           { return r.externalID }
func (r *Reservation) ExternalCreatedAt() *time.Time { return r.externalCreatedAt }
func (r *Reservation) CreatedAt() time.Time          { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time          { return r.updatedAt }
