package response

import (
	"time"

	"ezrent/internal/domain/notification"
	"ezrent/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID            uuid.UUID            `json:"id"`
	RecipientRole string               `json:"recipientRole"`
	BookingID     uuid.UUID            `json:"bookingId"`
	Payload       notification.Payload `json:"payload"`
	Read          bool                 `json:"read"`
	CreatedAt     time.Time            `json:"createdAt"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

func FromNotificationViews(vs []*queries.NotificationView) []*NotificationResponse {
	out := make([]*NotificationResponse, len(vs))
	for i, v := range vs {
		out[i] = &NotificationResponse{
			ID:            v.ID,
			RecipientRole: v.RecipientRole,
			BookingID:     v.BookingID,
			Payload:       v.Payload,
			Read:          v.Read,
			CreatedAt:     v.CreatedAt,
		}
	}
	return out
}
