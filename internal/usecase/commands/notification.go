package commands

import (
	"context"
	"strings"

	"brewpoints/internal/pkg/clock"
	"brewpoints/internal/pkg/errs"
	"brewpoints/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidNotification = errs.New("notification title and message are required")

type NotificationCommands interface {
	// Broadcast is fire-and-forget: a single insert, no delivery tracking.
	Broadcast(ctx context.Context, title, message string, createdBy uuid.UUID) (uuid.UUID, error)
}

type notificationUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewNotificationUseCase(uow shared.UnitOfWork, clk clock.Clock) NotificationCommands {
	return &notificationUseCaseImpl{
		uow:   uow,
		clock: clk,
	}
}

func (n *notificationUseCaseImpl) Broadcast(ctx context.Context, title, message string, createdBy uuid.UUID) (uuid.UUID, error) {
	title = strings.TrimSpace(title)
	message = strings.TrimSpace(message)
	if title == "" || message == "" {
		return uuid.Nil, ErrInvalidNotification
	}

	var id uuid.UUID
	err := n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var txErr error
		id, txErr = tx.Notifications().Create(ctx, title, message, createdBy, n.clock.Now())
		return txErr
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrStorageUnavailable)
	}
	return id, nil
}
