package usecase

import (
	"context"
	"errors"

	"hotel-backoffice/internal/domain/contact"
	"hotel-backoffice/internal/domain/notification"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/repository"
	"hotel-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrContactNotFound = errors.New("contact message not found")

type ContactRepository interface {
	Create(ctx context.Context, c *contact.Contact) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*repository.ContactRecord, error)
	FindAll(ctx context.Context) ([]*repository.ContactRecord, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status contact.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ContactUseCase interface {
	Submit(ctx context.Context, c *contact.Contact) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*repository.ContactRecord, error)
	List(ctx context.Context) ([]*repository.ContactRecord, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status contact.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type contactUseCaseImpl struct {
	contacts ContactRepository
	notifier Notifier
}

func NewContactUseCase(contacts ContactRepository, notifier Notifier) ContactUseCase {
	return &contactUseCaseImpl{contacts: contacts, notifier: notifier}
}

func (u *contactUseCaseImpl) Submit(ctx context.Context, c *contact.Contact) (uuid.UUID, error) {
	if err := c.Validate(); err != nil {
		return uuid.Nil, err
	}
	id, err := u.contacts.Create(ctx, c)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to save contact message")
	}

	u.notifier.Notify(ctx, &notification.Notification{
		Type:       notification.TypeContact,
		Module:     "contacts",
		Title:      "New contact message",
		Message:    c.Name + ": " + c.Subject,
		EntityType: "contact",
		EntityID:   id.String(),
	})
	return id, nil
}

func (u *contactUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*repository.ContactRecord, error) {
	rec, err := u.contacts.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, errs.Wrap(err, "contact lookup failed")
	}
	return rec, nil
}

func (u *contactUseCaseImpl) List(ctx context.Context) ([]*repository.ContactRecord, error) {
	return u.contacts.FindAll(ctx)
}

func (u *contactUseCaseImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status contact.Status) error {
	if !status.IsValid() {
		return contact.ErrInvalidStatus
	}
	if err := u.contacts.UpdateStatus(ctx, id, status); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrContactNotFound
		}
		return errs.Wrap(err, "failed to update contact status")
	}
	return nil
}

func (u *contactUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.contacts.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrContactNotFound
		}
		return errs.Wrap(err, "failed to delete contact")
	}
	return nil
}
