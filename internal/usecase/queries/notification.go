package queries

import "context"

type NotificationQueries interface {
	ListRecent(ctx context.Context, limit int) ([]*NotificationView, error)
}

type NotificationViewRepo interface {
	FindRecent(ctx context.Context, limit int32) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	repo NotificationViewRepo
}

func NewNotificationQueries(repo NotificationViewRepo) NotificationQueries {
	return &notificationQueriesImpl{repo: repo}
}

func (q *notificationQueriesImpl) ListRecent(ctx context.Context, limit int) ([]*NotificationView, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return q.repo.FindRecent(ctx, int32(limit))
}
