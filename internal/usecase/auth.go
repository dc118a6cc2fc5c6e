package usecase

import (
	"context"
	"errors"

	"brewpoints/internal/domain/user"
	"brewpoints/internal/infra"
	"brewpoints/internal/pkg/clock"
	"brewpoints/internal/pkg/jwt"
	"brewpoints/internal/pkg/password"
	"brewpoints/internal/usecase/queries"
	"brewpoints/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type AuthUseCase interface {
	SignUp(ctx context.Context, credentials user.Credentials, fullName string) (string, *queries.AuthorizedUserView, error)
	Login(ctx context.Context, credentials user.Credentials) (string, *queries.AuthorizedUserView, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error)
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type authUseCaseImpl struct {
	uow         shared.UnitOfWork
	userQueries queries.UserQueries
	jwtService  *jwt.Service
	clock       clock.Clock
}

func NewAuthUseCase(uow shared.UnitOfWork, userQueries queries.UserQueries, jwtService *jwt.Service, clk clock.Clock) AuthUseCase {
	return &authUseCaseImpl{
		uow:         uow,
		userQueries: userQueries,
		jwtService:  jwtService,
		clock:       clk,
	}
}

func (a *authUseCaseImpl) SignUp(ctx context.Context, credentials user.Credentials, fullName string) (string, *queries.AuthorizedUserView, error) {
	hash, err := password.Hash(credentials.Password().Value())
	if err != nil {
		return "", nil, err
	}

	entity := user.NewUser(credentials.Email(), hash, fullName, user.RoleCustomer)

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, txErr := tx.Users().Create(ctx, entity)
		return txErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return "", nil, ErrEmailTaken
		}
		return "", nil, err
	}

	token, err := a.jwtService.GenerateToken(entity.ID(), entity.Role())
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	view := &queries.AuthorizedUserView{
		ID:       entity.ID(),
		Email:    entity.Email().Value(),
		FullName: entity.FullName(),
		Role:     entity.Role().String(),
		IsActive: entity.IsActive(),
	}
	return token, view, nil
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, *queries.AuthorizedUserView, error) {
	snap, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !snap.IsActive {
		return "", nil, ErrUserInactive
	}

	if err := password.Compare(snap.PasswordHash, credentials.Password().Value()); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return "", nil, ErrTokenValidation
	}

	token, err := a.jwtService.GenerateToken(snap.ID, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, snap.ID, a.clock.Now())
	})
	if err != nil {
		return "", nil, err
	}

	view, err := a.userQueries.GetByID(ctx, snap.ID)
	if err != nil {
		return "", nil, ErrUserNotFound
	}

	return token, view, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error) {
	view, err := a.userQueries.GetByID(ctx, userID)
	if err != nil || view == nil {
		return nil, ErrUserNotFound
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	return view, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	return claims.UserID, role, nil
}
