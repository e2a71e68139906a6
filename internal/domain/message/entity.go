package message

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrEmptyBody     = errors.New("message body cannot be empty")
	ErrBodyTooLong   = errors.New("message body must be at most 2000 characters")
	ErrSelfRecipient = errors.New("cannot send a message to yourself")
)

const maxBodyLength = 2000

// Message is a direct chat message. It is deliberately not tied to the booking
// notification feed; bookingID only gives the conversation context.
type Message struct {
	id          uuid.UUID
	senderID    uuid.UUID
	recipientID uuid.UUID
	bookingID   *uuid.UUID
	body        string
	createdAt   time.Time
}

func NewMessage(senderID, recipientID uuid.UUID, bookingID *uuid.UUID, body string, now time.Time) (*Message, error) {
	if senderID == recipientID {
		return nil, ErrSelfRecipient
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyBody
	}
	if utf8.RuneCountInString(body) > maxBodyLength {
		return nil, ErrBodyTooLong
	}
	return &Message{
		id:          uuid.New(),
		senderID:    senderID,
		recipientID: recipientID,
		bookingID:   bookingID,
		body:        body,
		createdAt:   now,
	}, nil
}

func (m *Message) ID() uuid.UUID          { return m.id }
func (m *Message) SenderID() uuid.UUID    { return m.senderID }
func (m *Message) RecipientID() uuid.UUID { return m.recipientID }
func (m *Message) BookingID() *uuid.UUID  { return m.bookingID }
func (m *Message) Body() string           { return m.body }
func (m *Message) CreatedAt() time.Time   { return m.createdAt }
