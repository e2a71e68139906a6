package commands

import (
	"ezrent/internal/infra"
	"ezrent/internal/pkg/errs"
)

var (
	ErrItemUnavailable      = errs.New("item unavailable")
	ErrInvalidTransition    = errs.New("invalid status transition")
	ErrNotAuthorized        = errs.New("not authorized")
	ErrItemNotFound         = errs.New("item not found")
	ErrBookingNotFound      = errs.New("booking not found")
	ErrNotificationNotFound = errs.New("notification not found")
	ErrUserNotFound         = errs.New("user not found")
	ErrEmailTaken           = errs.New("email already registered")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUploadRejected       = errs.New("upload rejected")
	ErrTokenGeneration      = errs.New("token generation failed")
)

// invalid marks a value-object or entity validation failure so that it surfaces as a 400
// with the domain message intact.
func invalid(err error) error {
	return errs.Mark(err, errs.ErrDomainValidation)
}

// notFoundAs maps a repository NOT_FOUND to the given sentinel and leaves other errors alone.
func notFoundAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
