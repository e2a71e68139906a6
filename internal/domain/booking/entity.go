package booking

import (
	"time"

	"ezrent/internal/domain/money"
	"ezrent/internal/domain/user"
	"ezrent/internal/pkg/clock"

	"github.com/google/uuid"
)

// ItemSpec is the slice of an item a booking needs at creation time.
type ItemSpec struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	PricePerDay money.Money
}

type Booking struct {
	id            uuid.UUID
	itemID        uuid.UUID
	customerID    uuid.UUID
	ownerID       uuid.UUID
	status        Status
	pricePerDay   money.Money
	period        RentalPeriod
	paymentMethod PaymentMethod
	pickupDate    time.Time
	returnDate    time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

// Change describes one applied transition.
type Change struct {
	From Status
	To   Status
}

// NewBooking builds a pending booking. pickup and ret default to the period bounds.
func NewBooking(
	clk clock.Clock,
	item ItemSpec,
	customerID uuid.UUID,
	period RentalPeriod,
	method PaymentMethod,
	pickup, ret *time.Time,
) (*Booking, error) {
	if customerID == item.OwnerID {
		return nil, ErrOwnItem
	}
	if !method.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}
	if period.Start().Before(clock.Today(clk)) {
		return nil, ErrPeriodInPast
	}

	pickupDate := period.Start()
	if pickup != nil {
		if !period.Contains(*pickup) {
			return nil, ErrInvalidPickup
		}
		pickupDate = clock.TruncateDay(*pickup)
	}
	returnDate := period.End()
	if ret != nil {
		if !period.Contains(*ret) {
			return nil, ErrInvalidReturn
		}
		returnDate = clock.TruncateDay(*ret)
	}
	if returnDate.Before(pickupDate) {
		return nil, ErrInvalidReturn
	}

	now := clk.Now()
	return &Booking{
		id:            uuid.New(),
		itemID:        item.ID,
		customerID:    customerID,
		ownerID:       item.OwnerID,
		status:        StatusPending,
		pricePerDay:   item.PricePerDay,
		period:        period,
		paymentMethod: method,
		pickupDate:    pickupDate,
		returnDate:    returnDate,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructBooking(
	id, itemID, customerID, ownerID uuid.UUID,
	status Status,
	pricePerDay money.Money,
	period RentalPeriod,
	method PaymentMethod,
	pickupDate, returnDate time.Time,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		itemID:        itemID,
		customerID:    customerID,
		ownerID:       ownerID,
		status:        status,
		pricePerDay:   pricePerDay,
		period:        period,
		paymentMethod: method,
		pickupDate:    pickupDate,
		returnDate:    returnDate,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Transition moves the booking to `to` on behalf of the actor.
// The actor must be the booking's customer or owner in the role they claim.
func (b *Booking) Transition(actorID uuid.UUID, actorRole user.Role, to Status, now time.Time) (Change, error) {
	if !b.IsParty(actorID, actorRole) {
		return Change{}, ErrNotParty
	}
	if err := CheckTransition(b.status, to, actorRole); err != nil {
		return Change{}, err
	}
	change := Change{From: b.status, To: to}
	b.status = to
	b.updatedAt = now
	return change, nil
}

func (b *Booking) IsParty(userID uuid.UUID, role user.Role) bool {
	switch role {
	case user.RoleOwner:
		return userID == b.ownerID
	case user.RoleCustomer:
		return userID == b.customerID
	default:
		return false
	}
}

// Counterparty returns the user on the other side from actorRole.
func (b *Booking) Counterparty(actorRole user.Role) (uuid.UUID, user.Role) {
	if actorRole == user.RoleOwner {
		return b.customerID, user.RoleCustomer
	}
	return b.ownerID, user.RoleOwner
}

func (b *Booking) Days() int { return b.period.Days() }

func (b *Booking) TotalAmount() money.Money {
	return b.pricePerDay.Mul(b.period.Days())
}

// CommissionPercent is the platform's cut of every booking total.
const CommissionPercent = 30

func (b *Booking) Commission() money.Money {
	return b.TotalAmount().Percent(CommissionPercent)
}

// OwnerPayout is what the owner receives after commission.
func (b *Booking) OwnerPayout() money.Money {
	return b.TotalAmount().Sub(b.Commission())
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) ItemID() uuid.UUID            { return b.itemID }
func (b *Booking) CustomerID() uuid.UUID        { return b.customerID }
func (b *Booking) OwnerID() uuid.UUID           { return b.ownerID }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PricePerDay() money.Money     { return b.pricePerDay }
func (b *Booking) Period() RentalPeriod         { return b.period }
func (b *Booking) PaymentMethod() PaymentMethod { return b.paymentMethod }
func (b *Booking) PickupDate() time.Time        { return b.pickupDate }
func (b *Booking) ReturnDate() time.Time        { return b.returnDate }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
