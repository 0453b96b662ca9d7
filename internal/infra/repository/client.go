package repository

import (
	"context"
	"time"

	"hotel-backoffice/internal/domain/client"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ClientRecord struct {
	ID uuid.UUID
	client.Client
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ClientRepository struct {
	db DBTX
}

func NewClientRepository(db DBTX) *ClientRepository {
	return &ClientRepository{db: db}
}

const clientColumns = `id, full_name, email, phone, country, city, zip, address,
	external_id, created_at, updated_at`

func scanClient(row pgx.Row) (*ClientRecord, error) {
	var rec ClientRecord
	err := row.Scan(
		&rec.ID, &rec.FullName, &rec.Email, &rec.Phone, &rec.Country,
		&rec.City, &rec.Zip, &rec.Address, &rec.ExternalID,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ClientRepository) Create(ctx context.Context, db DBTX, c *client.Client) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, `
		INSERT INTO clients (full_name, email, phone, country, city, zip, address, external_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		c.FullName, c.Email, c.Phone, c.Country, c.City, c.Zip, c.Address, c.ExternalID,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create client", err)
	}
	return id, nil
}

func (r *ClientRepository) Update(ctx context.Context, db DBTX, id uuid.UUID, c *client.Client) error {
	tag, err := db.Exec(ctx, `
		UPDATE clients SET full_name = $2, email = $3, phone = $4, country = $5,
			city = $6, zip = $7, address = $8, external_id = $9, updated_at = now()
		WHERE id = $1`,
		id, c.FullName, c.Email, c.Phone, c.Country, c.City, c.Zip, c.Address, c.ExternalID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update client", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("client not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*ClientRecord, error) {
	rec, err := scanClient(r.db.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find client", err)
	}
	return rec, nil
}

func (r *ClientRepository) FindByEmail(ctx context.Context, email string) (*ClientRecord, error) {
	rec, err := scanClient(r.db.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE email = $1`, email))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find client by email", err)
	}
	return rec, nil
}

func (r *ClientRepository) FindByExternalID(ctx context.Context, externalID string) (*ClientRecord, error) {
	rec, err := scanClient(r.db.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE external_id = $1`, externalID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find client by external id", err)
	}
	return rec, nil
}

func (r *ClientRepository) FindAll(ctx context.Context) ([]*ClientRecord, error) {
	rows, err := r.db.Query(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY full_name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list clients", err)
	}
	defer rows.Close()

	var recs []*ClientRecord
	for rows.Next() {
		rec, err := scanClient(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan client", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list clients", err)
	}
	return recs, nil
}

func (r *ClientRepository) Delete(ctx context.Context, db DBTX, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete client", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("client not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
