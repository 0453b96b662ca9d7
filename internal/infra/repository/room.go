package repository

import (
	"context"
	"time"

	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RoomRecord pairs the domain value with its storage identity.
type RoomRecord struct {
	ID uuid.UUID
	room.Room
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RoomRepository struct {
	db DBTX
}

func NewRoomRepository(db DBTX) *RoomRepository {
	return &RoomRepository{db: db}
}

const roomColumns = `id, name, room_number, type, description, bed_type, price_cents,
	capacity, max_children, unit_count, amenities, images, status, external_id,
	created_at, updated_at`

func scanRoom(row pgx.Row) (*RoomRecord, error) {
	var rec RoomRecord
	var status string
	err := row.Scan(
		&rec.ID, &rec.Name, &rec.RoomNumber, &rec.Type, &rec.Description,
		&rec.BedType, &rec.PriceCents, &rec.Capacity, &rec.MaxChildren,
		&rec.UnitCount, &rec.Amenities, &rec.Images, &status, &rec.ExternalID,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.Status = room.Status(status)
	return &rec, nil
}

func (r *RoomRepository) Create(ctx context.Context, db DBTX, rm *room.Room) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, `
		INSERT INTO rooms (name, room_number, type, description, bed_type, price_cents,
			capacity, max_children, unit_count, amenities, images, status, external_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`,
		rm.Name, rm.RoomNumber, rm.Type, rm.Description, rm.BedType, rm.PriceCents,
		rm.Capacity, rm.MaxChildren, rm.UnitCount, rm.Amenities, rm.Images,
		string(rm.Status), rm.ExternalID,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create room", err)
	}
	return id, nil
}

func (r *RoomRepository) Update(ctx context.Context, db DBTX, id uuid.UUID, rm *room.Room) error {
	tag, err := db.Exec(ctx, `
		UPDATE rooms SET name = $2, room_number = $3, type = $4, description = $5,
			bed_type = $6, price_cents = $7, capacity = $8, max_children = $9,
			unit_count = $10, amenities = $11, images = $12, status = $13,
			external_id = $14, updated_at = now()
		WHERE id = $1`,
		id, rm.Name, rm.RoomNumber, rm.Type, rm.Description, rm.BedType,
		rm.PriceCents, rm.Capacity, rm.MaxChildren, rm.UnitCount, rm.Amenities,
		rm.Images, string(rm.Status), rm.ExternalID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*RoomRecord, error) {
	rec, err := scanRoom(r.db.QueryRow(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return rec, nil
}

func (r *RoomRepository) FindByExternalID(ctx context.Context, externalID string) (*RoomRecord, error) {
	rec, err := scanRoom(r.db.QueryRow(ctx, `SELECT `+roomColumns+` FROM rooms WHERE external_id = $1`, externalID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by external id", err)
	}
	return rec, nil
}

func (r *RoomRepository) FindAll(ctx context.Context) ([]*RoomRecord, error) {
	rows, err := r.db.Query(ctx, `SELECT `+roomColumns+` FROM rooms ORDER BY room_number`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var recs []*RoomRecord
	for rows.Next() {
		rec, err := scanRoom(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	return recs, nil
}

// FindOldest returns the earliest-created room, used as the fallback
// assignment when an imported reservation names a room type we do not carry.
func (r *RoomRepository) FindOldest(ctx context.Context) (*RoomRecord, error) {
	rec, err := scanRoom(r.db.QueryRow(ctx, `SELECT `+roomColumns+` FROM rooms ORDER BY created_at ASC LIMIT 1`))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no rooms exist", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find oldest room", err)
	}
	return rec, nil
}

func (r *RoomRepository) Delete(ctx context.Context, db DBTX, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// FindSyncedNotIn returns rooms carrying an external id that is not in keep.
// The reconciler deletes these after a full catalog pull; an empty keep list
// matches every synced room.
func (r *RoomRepository) FindSyncedNotIn(ctx context.Context, keep []string) ([]*RoomRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+roomColumns+` FROM rooms
		WHERE external_id IS NOT NULL AND external_id <> ALL($1)`,
		keep,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find stale synced rooms", err)
	}
	defer rows.Close()

	var recs []*RoomRecord
	for rows.Next() {
		rec, err := scanRoom(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to find stale synced rooms", err)
	}
	return recs, nil
}
