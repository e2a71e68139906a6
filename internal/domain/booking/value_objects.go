package booking

import (
	"time"

	"ezrent/internal/pkg/clock"
)

const (
	day = 24 * time.Hour

	// MaxRentalDays bounds a single booking, counting both ends.
	MaxRentalDays = 365
)

// RentalPeriod is an inclusive range of calendar days in UTC.
type RentalPeriod struct {
	start time.Time
	end   time.Time
}

func NewRentalPeriod(start, end time.Time) (RentalPeriod, error) {
	if start.IsZero() || end.IsZero() {
		return RentalPeriod{}, ErrInvalidPeriod
	}
	s, e := clock.TruncateDay(start), clock.TruncateDay(end)
	if e.Before(s) {
		return RentalPeriod{}, ErrInvalidPeriod
	}
	if e.Sub(s) >= MaxRentalDays*day {
		return RentalPeriod{}, ErrPeriodTooLong
	}
	return RentalPeriod{start: s, end: e}, nil
}

func (p RentalPeriod) Start() time.Time { return p.start }
func (p RentalPeriod) End() time.Time   { return p.end }

// Days counts both ends, so a same-day rental is one day.
func (p RentalPeriod) Days() int {
	return int(p.end.Sub(p.start)/day) + 1
}

func (p RentalPeriod) Contains(t time.Time) bool {
	d := clock.TruncateDay(t)
	return !d.Before(p.start) && !d.After(p.end)
}
