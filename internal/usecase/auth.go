package usecase

import (
	"context"
	"errors"

	"hotel-backoffice/internal/domain/user"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/pkg/jwt"
	"hotel-backoffice/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

type AuthResult struct {
	Token string
	User  *user.User
}

type AuthUseCase interface {
	Login(ctx context.Context, email, plainPassword string) (*AuthResult, error)
	Register(ctx context.Context, email, plainPassword string, role user.Role) (*user.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type authUseCaseImpl struct {
	users UserRepository
	jwt   *jwt.Service
}

func NewAuthUseCase(users UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{users: users, jwt: jwtService}
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (*AuthResult, error) {
	u, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Wrap(err, "login lookup failed")
	}

	if err := password.Verify(u.PasswordHash(), plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwt.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to issue token")
	}
	return &AuthResult{Token: token, User: u}, nil
}

func (a *authUseCaseImpl) Register(ctx context.Context, email, plainPassword string, role user.Role) (*user.User, error) {
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u, err := user.NewUser(email, hash, role)
	if err != nil {
		return nil, err
	}

	if err := a.users.Create(ctx, u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Wrap(err, "failed to create user")
	}
	return u, nil
}

func (a *authUseCaseImpl) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, err := a.users.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "user lookup failed")
	}
	return u, nil
}
