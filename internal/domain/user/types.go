package user

type Role string

const (
	RoleCustomer Role = "customer"
	RoleOwner    Role = "owner"
)

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleOwner:
		return true
	default:
		return false
	}
}

// Counterparty returns the other side of a booking.
func (r Role) Counterparty() Role {
	if r == RoleOwner {
		return RoleCustomer
	}
	return RoleOwner
}
