package converter

import (
	"encoding/json"

	"ezrent/internal/domain/message"
	"ezrent/internal/domain/notification"
	sqlc "ezrent/internal/infra/sqlc/generated"
	"ezrent/internal/pkg/pgconv"
)

func NotificationToCreateParams(n *notification.Notification) (sqlc.CreateNotificationParams, error) {
	payload, err := json.Marshal(n.Payload())
	if err != nil {
		return sqlc.CreateNotificationParams{}, err
	}
	return sqlc.CreateNotificationParams{
		ID:            n.ID(),
		RecipientID:   n.RecipientID(),
		RecipientRole: n.RecipientRole().String(),
		BookingID:     n.BookingID(),
		Payload:       payload,
		Read:          n.IsRead(),
		CreatedAt:     pgconv.TimeToPgtype(n.CreatedAt()),
	}, nil
}

func MessageToCreateParams(m *message.Message) sqlc.CreateMessageParams {
	return sqlc.CreateMessageParams{
		ID:          m.ID(),
		SenderID:    m.SenderID(),
		RecipientID: m.RecipientID(),
		BookingID:   pgconv.UUIDPtrToPgtype(m.BookingID()),
		Body:        m.Body(),
		CreatedAt:   pgconv.TimeToPgtype(m.CreatedAt()),
	}
}
