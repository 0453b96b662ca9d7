package repository

import (
	"context"
	"time"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ReservationView is the joined read model for listings.
type ReservationView struct {
	ID              uuid.UUID
	RoomID          uuid.UUID
	RoomName        string
	ClientID        uuid.UUID
	ClientName      string
	ClientEmail     string
	CheckIn         time.Time
	CheckOut        time.Time
	Adults          int
	Children        int
	SpecialRequests string
	TotalPriceCents int64
	Status          reservation.Status
	ExternalID      *string
	CreatedAt       time.Time
}

type ReservationRepository struct {
	db DBTX
}

func NewReservationRepository(db DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

const reservationColumns = `id, room_id, client_id, check_in, check_out, adults, children,
	special_requests, total_price_cents, status, external_id, external_created_at,
	created_at, updated_at`

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id, roomID, clientID uuid.UUID
		checkIn, checkOut    time.Time
		adults, children     int
		specialRequests      string
		totalPriceCents      int64
		status               string
		externalID           *string
		externalCreatedAt    *time.Time
		createdAt, updatedAt time.Time
	)
	err := row.Scan(
		&id, &roomID, &clientID, &checkIn, &checkOut, &adults, &children,
		&specialRequests, &totalPriceCents, &status, &externalID, &externalCreatedAt,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	stay, err := reservation.NewStayRange(checkIn, checkOut)
	if err != nil {
		return nil, errs.Wrap(err, "stored stay range is invalid")
	}
	price, err := reservation.NewMoney(totalPriceCents)
	if err != nil {
		return nil, errs.Wrap(err, "stored price is invalid")
	}

	return reservation.ReconstructReservation(
		id, roomID, clientID, stay, adults, children, specialRequests,
		price, reservation.Status(status), externalID, externalCreatedAt,
		createdAt, updatedAt,
	), nil
}

func (r *ReservationRepository) Create(ctx context.Context, db DBTX, res *reservation.Reservation) error {
	_, err := db.Exec(ctx, `
		INSERT INTO reservations (id, room_id, client_id, check_in, check_out, adults,
			children, special_requests, total_price_cents, status, external_id, external_created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		res.ID(), res.RoomID(), res.ClientID(),
		res.Stay().CheckIn(), res.Stay().CheckOut(),
		res.Adults(), res.Children(), res.SpecialRequests(),
		res.TotalPrice().Cents(), string(res.Status()),
		res.ExternalID(), res.ExternalCreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, db DBTX, res *reservation.Reservation) error {
	tag, err := db.Exec(ctx, `
		UPDATE reservations SET room_id = $2, client_id = $3, check_in = $4, check_out = $5,
			adults = $6, children = $7, special_requests = $8, total_price_cents = $9,
			status = $10, external_id = $11, external_created_at = $12, updated_at = now()
		WHERE id = $1`,
		res.ID(), res.RoomID(), res.ClientID(),
		res.Stay().CheckIn(), res.Stay().CheckOut(),
		res.Adults(), res.Children(), res.SpecialRequests(),
		res.TotalPrice().Cents(), string(res.Status()),
		res.ExternalID(), res.ExternalCreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := scanReservation(r.db.QueryRow(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) FindByExternalID(ctx context.Context, externalID string) (*reservation.Reservation, error) {
	res, err := scanReservation(r.db.QueryRow(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE external_id = $1`, externalID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by external id", err)
	}
	return res, nil
}

func (r *ReservationRepository) ListViews(ctx context.Context) ([]*ReservationView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.room_id, rm.name, r.client_id, c.full_name, c.email,
			r.check_in, r.check_out, r.adults, r.children, r.special_requests,
			r.total_price_cents, r.status, r.external_id, r.created_at
		FROM reservations r
		JOIN rooms rm ON rm.id = r.room_id
		JOIN clients c ON c.id = r.client_id
		ORDER BY r.check_in DESC, r.created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var views []*ReservationView
	for rows.Next() {
		var v ReservationView
		var status string
		err := rows.Scan(
			&v.ID, &v.RoomID, &v.RoomName, &v.ClientID, &v.ClientName, &v.ClientEmail,
			&v.CheckIn, &v.CheckOut, &v.Adults, &v.Children, &v.SpecialRequests,
			&v.TotalPriceCents, &status, &v.ExternalID, &v.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation view", err)
		}
		v.Status = reservation.Status(status)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return views, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, db DBTX, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// CountOverlapping counts non-cancelled reservations on the room whose stay
// intersects the half-open [checkIn, checkOut) range. excludeID skips the
// reservation being rescheduled so it does not collide with itself.
func (r *ReservationRepository) CountOverlapping(
	ctx context.Context, db DBTX,
	roomID uuid.UUID, stay reservation.StayRange,
	excludeID *uuid.UUID,
) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, `
		SELECT COUNT(*) FROM reservations
		WHERE room_id = $1
		  AND status <> 'cancelled'
		  AND check_in < $3
		  AND check_out > $2
		  AND ($4::uuid IS NULL OR id <> $4)`,
		roomID, stay.CheckIn(), stay.CheckOut(), excludeID,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping reservations", err)
	}
	return count, nil
}

func (r *ReservationRepository) CountActiveByRoom(ctx context.Context, roomID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM reservations WHERE room_id = $1 AND status <> 'cancelled'`,
		roomID,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count room reservations", err)
	}
	return count, nil
}

func (r *ReservationRepository) CountActiveByClient(ctx context.Context, clientID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM reservations WHERE client_id = $1 AND status <> 'cancelled'`,
		clientID,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count client reservations", err)
	}
	return count, nil
}
