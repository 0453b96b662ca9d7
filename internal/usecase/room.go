package usecase

import (
	"context"
	"errors"

	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/repository"
	"hotel-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRoomNumberTaken     = errors.New("room number already in use")
	ErrRoomHasReservations = errors.New("room has active reservations")
)

type RoomRepository interface {
	Create(ctx context.Context, db repository.DBTX, rm *room.Room) (uuid.UUID, error)
	Update(ctx context.Context, db repository.DBTX, id uuid.UUID, rm *room.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*repository.RoomRecord, error)
	FindAll(ctx context.Context) ([]*repository.RoomRecord, error)
	Delete(ctx context.Context, db repository.DBTX, id uuid.UUID) error
}

type ReservationCounter interface {
	CountActiveByRoom(ctx context.Context, roomID uuid.UUID) (int64, error)
	CountActiveByClient(ctx context.Context, clientID uuid.UUID) (int64, error)
}

type RoomUseCase interface {
	Create(ctx context.Context, rm *room.Room) (*repository.RoomRecord, error)
	Update(ctx context.Context, id uuid.UUID, rm *room.Room) (*repository.RoomRecord, error)
	Get(ctx context.Context, id uuid.UUID) (*repository.RoomRecord, error)
	List(ctx context.Context) ([]*repository.RoomRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomUseCaseImpl struct {
	rooms        RoomRepository
	reservations ReservationCounter
	db           repository.DBTX
}

func NewRoomUseCase(rooms RoomRepository, reservations ReservationCounter, db repository.DBTX) RoomUseCase {
	return &roomUseCaseImpl{rooms: rooms, reservations: reservations, db: db}
}

func (u *roomUseCaseImpl) Create(ctx context.Context, rm *room.Room) (*repository.RoomRecord, error) {
	if err := rm.Validate(); err != nil {
		return nil, err
	}
	id, err := u.rooms.Create(ctx, u.db, rm)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrRoomNumberTaken
		}
		return nil, errs.Wrap(err, "failed to create room")
	}
	return u.rooms.FindByID(ctx, id)
}

func (u *roomUseCaseImpl) Update(ctx context.Context, id uuid.UUID, rm *room.Room) (*repository.RoomRecord, error) {
	if err := rm.Validate(); err != nil {
		return nil, err
	}
	if err := u.rooms.Update(ctx, u.db, id, rm); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrRoomNumberTaken
		}
		return nil, errs.Wrap(err, "failed to update room")
	}
	return u.rooms.FindByID(ctx, id)
}

func (u *roomUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*repository.RoomRecord, error) {
	rec, err := u.rooms.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Wrap(err, "room lookup failed")
	}
	return rec, nil
}

func (u *roomUseCaseImpl) List(ctx context.Context) ([]*repository.RoomRecord, error) {
	return u.rooms.FindAll(ctx)
}

func (u *roomUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	active, err := u.reservations.CountActiveByRoom(ctx, id)
	if err != nil {
		return errs.Wrap(err, "failed to check room reservations")
	}
	if active > 0 {
		return ErrRoomHasReservations
	}
	if err := u.rooms.Delete(ctx, u.db, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return errs.Wrap(err, "failed to delete room")
	}
	return nil
}
