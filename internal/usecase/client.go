package usecase

import (
	"context"
	"errors"

	"hotel-backoffice/internal/domain/client"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/repository"
	"hotel-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound        = errors.New("client not found")
	ErrClientHasReservations = errors.New("client has active reservations")
)

type ClientRepository interface {
	Create(ctx context.Context, db repository.DBTX, c *client.Client) (uuid.UUID, error)
	Update(ctx context.Context, db repository.DBTX, id uuid.UUID, c *client.Client) error
	FindByID(ctx context.Context, id uuid.UUID) (*repository.ClientRecord, error)
	FindByEmail(ctx context.Context, email string) (*repository.ClientRecord, error)
	FindAll(ctx context.Context) ([]*repository.ClientRecord, error)
	Delete(ctx context.Context, db repository.DBTX, id uuid.UUID) error
}

type ClientUseCase interface {
	Create(ctx context.Context, c *client.Client) (*repository.ClientRecord, error)
	Update(ctx context.Context, id uuid.UUID, c *client.Client) (*repository.ClientRecord, error)
	Get(ctx context.Context, id uuid.UUID) (*repository.ClientRecord, error)
	List(ctx context.Context) ([]*repository.ClientRecord, error)
	FindOrCreate(ctx context.Context, c *client.Client) (*repository.ClientRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientUseCaseImpl struct {
	clients      ClientRepository
	reservations ReservationCounter
	db           repository.DBTX
}

func NewClientUseCase(clients ClientRepository, reservations ReservationCounter, db repository.DBTX) ClientUseCase {
	return &clientUseCaseImpl{clients: clients, reservations: reservations, db: db}
}

func (u *clientUseCaseImpl) Create(ctx context.Context, c *client.Client) (*repository.ClientRecord, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	id, err := u.clients.Create(ctx, u.db, c)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create client")
	}
	return u.clients.FindByID(ctx, id)
}

func (u *clientUseCaseImpl) Update(ctx context.Context, id uuid.UUID, c *client.Client) (*repository.ClientRecord, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := u.clients.Update(ctx, u.db, id, c); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, errs.Wrap(err, "failed to update client")
	}
	return u.clients.FindByID(ctx, id)
}

func (u *clientUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*repository.ClientRecord, error) {
	rec, err := u.clients.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, errs.Wrap(err, "client lookup failed")
	}
	return rec, nil
}

func (u *clientUseCaseImpl) List(ctx context.Context) ([]*repository.ClientRecord, error) {
	return u.clients.FindAll(ctx)
}

// FindOrCreate resolves a guest by normalized email, creating the record on
// first sight and updating it in place only when fields genuinely differ.
// Two bookings with the same email and differently-spaced names therefore
// produce exactly one client.
func (u *clientUseCaseImpl) FindOrCreate(ctx context.Context, c *client.Client) (*repository.ClientRecord, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	existing, err := u.clients.FindByEmail(ctx, c.Email)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrap(err, "client lookup failed")
		}
		return u.Create(ctx, c)
	}

	changed := existing.FullName != c.FullName ||
		(c.Phone != "" && existing.Phone != c.Phone) ||
		(c.Country != "" && existing.Country != c.Country)
	if !changed {
		return existing, nil
	}

	merged := existing.Client
	merged.FullName = c.FullName
	if c.Phone != "" {
		merged.Phone = c.Phone
	}
	if c.Country != "" {
		merged.Country = c.Country
	}
	if err := u.clients.Update(ctx, u.db, existing.ID, &merged); err != nil {
		return nil, errs.Wrap(err, "failed to update client")
	}
	return u.clients.FindByID(ctx, existing.ID)
}

func (u *clientUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	active, err := u.reservations.CountActiveByClient(ctx, id)
	if err != nil {
		return errs.Wrap(err, "failed to check client reservations")
	}
	if active > 0 {
		return ErrClientHasReservations
	}
	if err := u.clients.Delete(ctx, u.db, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrClientNotFound
		}
		return errs.Wrap(err, "failed to delete client")
	}
	return nil
}
