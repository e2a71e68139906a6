package request

import (
	"ezrent/internal/usecase/commands"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	RecipientID uuid.UUID  `json:"recipientId" binding:"required"`
	BookingID   *uuid.UUID `json:"bookingId,omitempty"`
	Body        string     `json:"body" binding:"required,max=2000"`
}

func (r SendMessageRequest) ToCommand() commands.SendMessageRequest {
	return commands.SendMessageRequest{
		RecipientID: r.RecipientID,
		BookingID:   r.BookingID,
		Body:        r.Body,
	}
}
