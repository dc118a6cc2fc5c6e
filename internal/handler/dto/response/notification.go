package response

import (
	"time"

	"brewpoints/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func FromNotificationView(rm *queries.NotificationView) *NotificationResponse {
	return &NotificationResponse{
		ID:        rm.ID,
		Title:     rm.Title,
		Message:   rm.Message,
		CreatedAt: rm.CreatedAt,
	}
}

func FromNotificationViews(rms []*queries.NotificationView) []*NotificationResponse {
	resp := make([]*NotificationResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromNotificationView(rm)
	}
	return resp
}
