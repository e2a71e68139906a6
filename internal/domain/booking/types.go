package booking

import "ezrent/internal/domain/user"

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusDeclined  Status = "declined"
	StatusPaid      Status = "paid"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDeclined, StatusPaid, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusDeclined, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// RestoresInventory reports whether entering s hands the reserved unit back to the item.
func (s Status) RestoresInventory() bool {
	return s == StatusDeclined || s == StatusCancelled
}

// RecordsHistory reports whether entering s appends a history entry.
func (s Status) RecordsHistory() bool {
	return s == StatusCompleted
}

type edge struct {
	from Status
	to   Status
}

// transitions is the complete lifecycle: every allowed edge and the role that may trigger it.
var transitions = map[edge]user.Role{
	{StatusPending, StatusApproved}:   user.RoleOwner,
	{StatusPending, StatusDeclined}:   user.RoleOwner,
	{StatusApproved, StatusPaid}:      user.RoleCustomer,
	{StatusPaid, StatusCompleted}:     user.RoleOwner,
	{StatusPending, StatusCancelled}:  user.RoleCustomer,
	{StatusApproved, StatusCancelled}: user.RoleCustomer,
}

// CheckTransition validates from→to for actor. A missing edge is ErrInvalidTransition
// regardless of who asks; an existing edge owned by the other role is ErrNotAuthorized.
func CheckTransition(from, to Status, actor user.Role) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	allowed, ok := transitions[edge{from: from, to: to}]
	if !ok {
		return ErrInvalidTransition
	}
	if allowed != actor {
		return ErrNotAuthorized
	}
	return nil
}

// NextStatuses lists the statuses actor may move a booking to from the given state.
func NextStatuses(from Status, actor user.Role) []Status {
	var out []Status
	for _, to := range []Status{StatusApproved, StatusDeclined, StatusPaid, StatusCompleted, StatusCancelled} {
		if role, ok := transitions[edge{from: from, to: to}]; ok && role == actor {
			out = append(out, to)
		}
	}
	return out
}

type PaymentMethod string

const (
	PaymentCard         PaymentMethod = "card"
	PaymentCash         PaymentMethod = "cash"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	pm := PaymentMethod(s)
	if !pm.IsValid() {
		return "", ErrInvalidPaymentMethod
	}
	return pm, nil
}

func (p PaymentMethod) String() string {
	return string(p)
}

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCard, PaymentCash, PaymentBankTransfer:
		return true
	default:
		return false
	}
}
