//go:build unit

package booking_test

import (
	"testing"
	"time"

	"badminton-club/internal/domain/booking"
	"badminton-club/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationPolicies(t *testing.T) {
	tests := []struct {
		start, end string
		wholeHour  time.Duration
		exact      time.Duration
	}{
		{start: "09:00", end: "11:00", wholeHour: 2 * time.Hour, exact: 2 * time.Hour},
		{start: "09:15", end: "09:45", wholeHour: 0, exact: 30 * time.Minute},
		{start: "09:30", end: "11:00", wholeHour: 2 * time.Hour, exact: 90 * time.Minute},
		{start: "09:45", end: "10:15", wholeHour: time.Hour, exact: 30 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.start+"-"+tt.end, func(t *testing.T) {
			slot := mustSlot(t, tt.start, tt.end)
			assert.Equal(t, tt.wholeHour, booking.WholeHourDuration(slot))
			assert.Equal(t, tt.exact, booking.ExactDuration(slot))
		})
	}
}

func TestDurationPolicyByName(t *testing.T) {
	slot := mustSlot(t, "09:15", "09:45")

	p, err := booking.DurationPolicyByName("")
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), p(slot))

	p, err = booking.DurationPolicyByName(booking.DurationPolicyWholeHour)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), p(slot))

	p, err = booking.DurationPolicyByName(booking.DurationPolicyExact)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, p(slot))

	_, err = booking.DurationPolicyByName("rounded")
	assert.Error(t, err)
}

func TestDefaultPriceCalculator(t *testing.T) {
	rate, err := money.FromDecimal(50)
	require.NoError(t, err)

	calc := booking.NewDefaultPriceCalculator(nil)
	assert.Equal(t, int64(10000), calc.TotalAmount(rate, mustSlot(t, "09:00", "11:00")).Cents())
	assert.Equal(t, int64(0), calc.TotalAmount(rate, mustSlot(t, "09:15", "09:45")).Cents())

	exact := booking.NewDefaultPriceCalculator(booking.ExactDuration)
	assert.Equal(t, int64(7500), exact.TotalAmount(rate, mustSlot(t, "09:30", "11:00")).Cents())
}
