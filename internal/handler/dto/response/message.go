package response

import (
	"time"

	"ezrent/internal/usecase/queries"

	"github.com/google/uuid"
)

type MessageResponse struct {
	ID          uuid.UUID  `json:"id"`
	SenderID    uuid.UUID  `json:"senderId"`
	RecipientID uuid.UUID  `json:"recipientId"`
	BookingID   *uuid.UUID `json:"bookingId,omitempty"`
	Body        string     `json:"body"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func FromMessageViews(vs []*queries.MessageView) []*MessageResponse {
	out := make([]*MessageResponse, len(vs))
	for i, v := range vs {
		out[i] = &MessageResponse{
			ID:          v.ID,
			SenderID:    v.SenderID,
			RecipientID: v.RecipientID,
			BookingID:   v.BookingID,
			Body:        v.Body,
			CreatedAt:   v.CreatedAt,
		}
	}
	return out
}
