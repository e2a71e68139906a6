package money

import (
	"errors"
	"fmt"
)

var (
	ErrNegativeAmount = errors.New("amount cannot be negative")
	ErrAmountTooLarge = errors.New("amount exceeds the supported maximum")
)

// MaxAmount keeps every product of an amount and a percentage well inside int64.
const MaxAmount int64 = 1_000_000_000_000

// Money is an amount in minor units (cents). The marketplace runs in a single currency.
type Money struct {
	cents int64
}

func New(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	if cents > MaxAmount {
		return Money{}, ErrAmountTooLarge
	}
	return Money{cents: cents}, nil
}

// FromCents is for values already validated by the database.
func FromCents(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) Mul(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

// Percent returns pct% of m rounded half up to the nearest cent.
func (m Money) Percent(pct int64) Money {
	return Money{cents: (m.cents*pct + 50) / 100}
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
