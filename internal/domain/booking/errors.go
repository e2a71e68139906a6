package booking

import "errors"

var (
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrNotAuthorized        = errors.New("actor may not perform this transition")
	ErrNotParty             = errors.New("actor is not a party to this booking")
	ErrOwnItem              = errors.New("owners cannot book their own items")
	ErrInvalidPeriod        = errors.New("rental period end must not be before start")
	ErrPeriodTooLong        = errors.New("rental period exceeds the maximum length")
	ErrPeriodInPast         = errors.New("rental period cannot start in the past")
	ErrInvalidPickup        = errors.New("pickup date must fall inside the rental period")
	ErrInvalidReturn        = errors.New("return date must fall inside the rental period and not before pickup")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)
