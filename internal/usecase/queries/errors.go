package queries

import "ezrent/internal/pkg/errs"

var (
	ErrUserNotFound    = errs.New("user not found")
	ErrItemNotFound    = errs.New("item not found")
	ErrBookingNotFound = errs.New("booking not found")
	ErrAccessDenied    = errs.New("access denied")
	ErrInvalidFilter   = errs.New("invalid filter")
)
