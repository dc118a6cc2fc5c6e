package repository

import (
	"context"
	"time"

	"brewpoints/internal/infra"
	"brewpoints/internal/infra/db"
	"brewpoints/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) shared.NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

func (r *NotificationRepository) Create(ctx context.Context, title, message string, createdBy uuid.UUID, at time.Time) (uuid.UUID, error) {
	const insert = `
		INSERT INTO notifications (id, title, message, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	id := uuid.New()
	_, err := r.db.Exec(ctx, insert, id, title, message, createdBy, at)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create notification", err, writeErrKind(err))
	}

	return id, nil
}
