package money

import (
	"errors"
	"math"
	"time"
)

// MaxCents bounds amounts accepted from decimal input at 1,000,000.00.
const MaxCents int64 = 100_000_000

var (
	ErrNegativeAmount = errors.New("money cannot be negative")
	ErrAmountTooLarge = errors.New("money exceeds the maximum amount")
)

// Money is an amount in cents.
type Money struct {
	cents int64
}

func FromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

// FromDecimal converts a decimal amount (e.g. 12.5) to cents, rounding half away from zero.
func FromDecimal(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errors.New("money must be a finite number")
	}
	if amount > float64(MaxCents)/100 {
		return Money{}, ErrAmountTooLarge
	}
	return FromCents(int64(math.Round(amount * 100)))
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Decimal() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

// PerHour prices d at m per hour. Whole minutes only; sub-minute remainders are dropped.
// The product saturates at math.MaxInt64 instead of wrapping.
func (m Money) PerHour(d time.Duration) Money {
	minutes := int64(d / time.Minute)
	if minutes <= 0 || m.cents == 0 {
		return Money{}
	}
	if minutes > math.MaxInt64/m.cents {
		return Money{cents: math.MaxInt64}
	}
	return Money{cents: m.cents * minutes / 60}
}
