package repository

import (
	"context"
	"time"

	"brewpoints/internal/domain/user"
	"brewpoints/internal/infra"
	"brewpoints/internal/infra/db"
	"brewpoints/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) shared.UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	const insert = `
		INSERT INTO users (id, email, password_hash, full_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, insert,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.FullName(), u.Role().String(), u.IsActive())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err, writeErrKind(err))
	}

	return u.ID(), nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	const update = `UPDATE users SET last_login = $2, updated_at = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, update, userID, at)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err, writeErrKind(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}

	return nil
}
