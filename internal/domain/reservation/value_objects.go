package reservation

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidStayRange = errors.New("check-out date must be after check-in date")
	ErrStayInPast       = errors.New("check-in date cannot be in the past")
	ErrNegativeMoney    = errors.New("money cannot be negative")
)

// StayRange is a half-open date interval [checkIn, checkOut): the check-out
// day itself is free, so back-to-back bookings on the same room do not clash.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	checkIn = truncateToDate(checkIn)
	checkOut = truncateToDate(checkOut)

	if !checkOut.After(checkIn) {
		return StayRange{}, ErrInvalidStayRange
	}

	return StayRange{checkIn: checkIn, checkOut: checkOut}, nil
}

// NewFutureStayRange additionally rejects check-in dates before today.
// Used for manual bookings; PMS imports may carry historical stays.
func NewFutureStayRange(checkIn, checkOut time.Time, now time.Time) (StayRange, error) {
	sr, err := NewStayRange(checkIn, checkOut)
	if err != nil {
		return StayRange{}, err
	}
	if sr.checkIn.Before(truncateToDate(now)) {
		return StayRange{}, ErrStayInPast
	}
	return sr, nil
}

func (sr StayRange) CheckIn() time.Time  { return sr.checkIn }
func (sr StayRange) CheckOut() time.Time { return sr.checkOut }

func (sr StayRange) Nights() int {
	return int(sr.checkOut.Sub(sr.checkIn).Hours() / 24)
}

// Overlaps reports whether two half-open ranges intersect:
// a.checkIn < b.checkOut AND b.checkIn < a.checkOut.
func (sr StayRange) Overlaps(other StayRange) bool {
	return sr.checkIn.Before(other.checkOut) && other.checkIn.Before(sr.checkOut)
}

func (sr StayRange) String() string {
	return fmt.Sprintf("[%s,%s)", sr.checkIn.Format("2006-01-02"), sr.checkOut.Format("2006-01-02"))
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

// MoneyFromFloat converts a decimal amount (as the PMS reports rates) to
// cents, rounding half away from zero.
func MoneyFromFloat(amount float64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: int64(amount*100 + 0.5)}, nil
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) Float() float64 { return float64(m.cents) / 100.0 }

func (m Money) IsZero() bool { return m.cents == 0 }

func (m Money) MultiplyNights(nights int) Money {
	return Money{cents: m.cents * int64(nights)}
}
