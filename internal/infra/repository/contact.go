package repository

import (
	"context"
	"time"

	"hotel-backoffice/internal/domain/contact"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ContactRecord struct {
	ID uuid.UUID
	contact.Contact
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ContactRepository struct {
	db DBTX
}

func NewContactRepository(db DBTX) *ContactRepository {
	return &ContactRepository{db: db}
}

const contactColumns = `id, name, email, phone, subject, message, status, created_at, updated_at`

func scanContact(row pgx.Row) (*ContactRecord, error) {
	var rec ContactRecord
	var status string
	err := row.Scan(
		&rec.ID, &rec.Name, &rec.Email, &rec.Phone, &rec.Subject,
		&rec.Message, &status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.Status = contact.Status(status)
	return &rec, nil
}

func (r *ContactRepository) Create(ctx context.Context, c *contact.Contact) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO contacts (name, email, phone, subject, message, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		c.Name, c.Email, c.Phone, c.Subject, c.Message, string(c.Status),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create contact", err)
	}
	return id, nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id uuid.UUID) (*ContactRecord, error) {
	rec, err := scanContact(r.db.QueryRow(ctx, `SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("contact not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find contact", err)
	}
	return rec, nil
}

func (r *ContactRepository) FindAll(ctx context.Context) ([]*ContactRecord, error) {
	rows, err := r.db.Query(ctx, `SELECT `+contactColumns+` FROM contacts ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list contacts", err)
	}
	defer rows.Close()

	var recs []*ContactRecord
	for rows.Next() {
		rec, err := scanContact(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan contact", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list contacts", err)
	}
	return recs, nil
}

func (r *ContactRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status contact.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE contacts SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update contact status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("contact not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete contact", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("contact not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
