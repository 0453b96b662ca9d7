package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"hotel-backoffice/internal/domain/notification"
	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/pms"
	"hotel-backoffice/internal/infra/repository"
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createMaxRetries = 3

var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrRoomUnavailable     = errors.New("room is not available for the requested dates")
	ErrAlreadyExported     = errors.New("reservation already exists in the pms")
	ErrRoomNotLinked       = errors.New("room is not linked to a pms room type")
	ErrExportDisabled      = errors.New("pms integration is disabled")
	ErrExportFailed        = errors.New("pms rejected the booking")
)

type ReservationRepository interface {
	Create(ctx context.Context, db repository.DBTX, res *reservation.Reservation) error
	Update(ctx context.Context, db repository.DBTX, res *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	ListViews(ctx context.Context) ([]*repository.ReservationView, error)
	Delete(ctx context.Context, db repository.DBTX, id uuid.UUID) error
	CountOverlapping(ctx context.Context, db repository.DBTX, roomID uuid.UUID, stay reservation.StayRange, excludeID *uuid.UUID) (int64, error)
}

type RoomReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*repository.RoomRecord, error)
}

type ClientReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*repository.ClientRecord, error)
}

type Notifier interface {
	Notify(ctx context.Context, n *notification.Notification)
}

type CreateReservationInput struct {
	RoomID          uuid.UUID
	ClientID        uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	Adults          int
	Children        int
	SpecialRequests string
}

type UpdateReservationInput struct {
	CheckIn  time.Time
	CheckOut time.Time
	Adults   int
	Children int
}

type ReservationUseCase interface {
	Create(ctx context.Context, input CreateReservationInput) (*reservation.Reservation, error)
	Get(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	List(ctx context.Context) ([]*repository.ReservationView, error)
	Reschedule(ctx context.Context, id uuid.UUID, input UpdateReservationInput) (*reservation.Reservation, error)
	Confirm(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Cancel(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CheckAvailability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error)
	Export(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
}

type reservationUseCaseImpl struct {
	reservations ReservationRepository
	rooms        RoomReader
	clients      ClientReader
	notifier     Notifier
	pms          pms.Client
	pmsEnabled   bool
	db           *pgxpool.Pool
	clock        clock.Clock
}

func NewReservationUseCase(
	reservations ReservationRepository,
	rooms RoomReader,
	clients ClientReader,
	notifier Notifier,
	pmsClient pms.Client,
	pmsEnabled bool,
	db *pgxpool.Pool,
	clk clock.Clock,
) ReservationUseCase {
	return &reservationUseCaseImpl{
		reservations: reservations,
		rooms:        rooms,
		clients:      clients,
		notifier:     notifier,
		pms:          pmsClient,
		pmsEnabled:   pmsEnabled,
		db:           db,
		clock:        clk,
	}
}

// Create books a room. The availability check and the insert run in one
// transaction, and the exclusion constraint on the reservations table backs
// the same invariant at the storage level, so two concurrent bookings of the
// same room cannot both commit.
func (u *reservationUseCaseImpl) Create(ctx context.Context, input CreateReservationInput) (*reservation.Reservation, error) {
	stay, err := reservation.NewFutureStayRange(input.CheckIn, input.CheckOut, u.clock.Now())
	if err != nil {
		return nil, err
	}

	roomRec, err := u.rooms.FindByID(ctx, input.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Wrap(err, "room lookup failed")
	}

	nightly, err := reservation.NewMoney(roomRec.PriceCents)
	if err != nil {
		return nil, err
	}
	total := nightly.MultiplyNights(stay.Nights())

	res, err := reservation.NewReservation(
		input.RoomID, input.ClientID, stay,
		input.Adults, input.Children, input.SpecialRequests, total,
	)
	if err != nil {
		return nil, err
	}

	created, err := shared.RunInTxWithRetry(ctx, u.db, createMaxRetries, func(tx repository.DBTX) (*reservation.Reservation, error) {
		overlapping, err := u.reservations.CountOverlapping(ctx, tx, input.RoomID, stay, nil)
		if err != nil {
			return nil, err
		}
		if overlapping > 0 {
			return nil, ErrRoomUnavailable
		}
		if err := u.reservations.Create(ctx, tx, res); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return nil, ErrRoomUnavailable
			}
			return nil, err
		}
		return res, nil
	})
	if err != nil {
		return nil, err
	}

	u.notifier.Notify(ctx, &notification.Notification{
		Type:       notification.TypeBooking,
		Module:     "reservations",
		Title:      "New reservation",
		Message:    "Room " + roomRec.Name + " booked for " + stay.String(),
		EntityType: "reservation",
		EntityID:   created.ID().String(),
	})

	return created, nil
}

func (u *reservationUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := u.reservations.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "reservation lookup failed")
	}
	return res, nil
}

func (u *reservationUseCaseImpl) List(ctx context.Context) ([]*repository.ReservationView, error) {
	return u.reservations.ListViews(ctx)
}

// Reschedule moves an existing booking to new dates, re-validating
// availability while excluding the booking itself from the overlap check.
func (u *reservationUseCaseImpl) Reschedule(ctx context.Context, id uuid.UUID, input UpdateReservationInput) (*reservation.Reservation, error) {
	res, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	stay, err := reservation.NewFutureStayRange(input.CheckIn, input.CheckOut, u.clock.Now())
	if err != nil {
		return nil, err
	}

	roomRec, err := u.rooms.FindByID(ctx, res.RoomID())
	if err != nil {
		return nil, errs.Wrap(err, "room lookup failed")
	}
	nightly, err := reservation.NewMoney(roomRec.PriceCents)
	if err != nil {
		return nil, err
	}

	return shared.RunInTx(ctx, u.db, func(tx repository.DBTX) (*reservation.Reservation, error) {
		resID := res.ID()
		overlapping, err := u.reservations.CountOverlapping(ctx, tx, res.RoomID(), stay, &resID)
		if err != nil {
			return nil, err
		}
		if overlapping > 0 {
			return nil, ErrRoomUnavailable
		}

		if err := res.Reschedule(stay, input.Adults, input.Children, nightly.MultiplyNights(stay.Nights())); err != nil {
			return nil, err
		}
		if err := u.reservations.Update(ctx, tx, res); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return nil, ErrRoomUnavailable
			}
			return nil, err
		}
		return res, nil
	})
}

func (u *reservationUseCaseImpl) Confirm(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	return u.transition(ctx, id, (*reservation.Reservation).Confirm)
}

func (u *reservationUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	return u.transition(ctx, id, (*reservation.Reservation).Cancel)
}

func (u *reservationUseCaseImpl) transition(ctx context.Context, id uuid.UUID, apply func(*reservation.Reservation) error) (*reservation.Reservation, error) {
	res, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(res); err != nil {
		return nil, err
	}
	if err := u.reservations.Update(ctx, u.db, res); err != nil {
		return nil, errs.Wrap(err, "failed to persist status change")
	}
	return res, nil
}

func (u *reservationUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := u.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := res.CanDelete(); err != nil {
		return err
	}
	if err := u.reservations.Delete(ctx, u.db, id); err != nil {
		return errs.Wrap(err, "failed to delete reservation")
	}
	slog.Info("reservation deleted", "id", id)
	return nil
}

func (u *reservationUseCaseImpl) CheckAvailability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	stay, err := reservation.NewStayRange(checkIn, checkOut)
	if err != nil {
		return false, err
	}
	overlapping, err := u.reservations.CountOverlapping(ctx, u.db, roomID, stay, nil)
	if err != nil {
		return false, err
	}
	return overlapping == 0, nil
}

// Export pushes a locally created reservation to the PMS and stores the
// reservation id it assigns, so the next sync run recognises the booking as
// already present instead of importing a duplicate. The room must be linked
// to a PMS room type; guest details travel with the push.
func (u *reservationUseCaseImpl) Export(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	if !u.pmsEnabled {
		return nil, ErrExportDisabled
	}

	res, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.ExternalID() != nil {
		return nil, ErrAlreadyExported
	}

	roomRec, err := u.rooms.FindByID(ctx, res.RoomID())
	if err != nil {
		return nil, errs.Wrap(err, "room lookup failed")
	}
	if roomRec.ExternalID == nil {
		return nil, ErrRoomNotLinked
	}

	clientRec, err := u.clients.FindByID(ctx, res.ClientID())
	if err != nil {
		return nil, errs.Wrap(err, "client lookup failed")
	}
	firstName, lastName := splitGuestName(clientRec.FullName)

	pushed, err := u.pms.CreateReservation(ctx, pms.CreateReservationParams{
		RoomTypeID: *roomRec.ExternalID,
		CheckIn:    res.Stay().CheckIn(),
		CheckOut:   res.Stay().CheckOut(),
		Adults:     res.Adults(),
		Children:   res.Children(),
		FirstName:  firstName,
		LastName:   lastName,
		Email:      clientRec.Email,
		Phone:      clientRec.Phone,
		Country:    clientRec.Country,
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "pms create reservation failed"), ErrExportFailed)
	}

	res.AttachExternal(pushed.ReservationID, nil)
	if err := u.reservations.Update(ctx, u.db, res); err != nil {
		return nil, errs.Wrap(err, "failed to store pms reservation id")
	}

	slog.Info("reservation exported to pms",
		"id", id, "external_id", pushed.ReservationID, "pms_status", pushed.Status)
	return res, nil
}

func splitGuestName(full string) (string, string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "Guest", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
