//go:build unit

package booking_test

import (
	"testing"

	"badminton-club/internal/domain/booking"
	"badminton-club/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, start, end string) booking.Slot {
	t.Helper()
	slot, err := booking.ParseSlot(start, end)
	require.NoError(t, err)
	return slot
}

func TestCheckAvailability(t *testing.T) {
	existing := builder.NewBookingBuilder().WithSlot("10:00", "11:00").BuildDomain()

	tests := []struct {
		name      string
		existing  []*booking.Booking
		start     string
		end       string
		available bool
	}{
		{name: "no bookings", existing: nil, start: "10:00", end: "11:00", available: true},
		{name: "identical slot", existing: []*booking.Booking{existing}, start: "10:00", end: "11:00", available: false},
		{name: "partial overlap at start", existing: []*booking.Booking{existing}, start: "09:30", end: "10:30", available: false},
		{name: "partial overlap at end", existing: []*booking.Booking{existing}, start: "10:30", end: "11:30", available: false},
		{name: "contained", existing: []*booking.Booking{existing}, start: "10:15", end: "10:45", available: false},
		{name: "containing", existing: []*booking.Booking{existing}, start: "09:00", end: "12:00", available: false},
		{name: "touching before", existing: []*booking.Booking{existing}, start: "09:00", end: "10:00", available: true},
		{name: "touching after", existing: []*booking.Booking{existing}, start: "11:00", end: "12:00", available: true},
		{name: "nil entries are ignored", existing: []*booking.Booking{nil}, start: "10:00", end: "11:00", available: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := booking.CheckAvailability(tt.existing, mustSlot(t, tt.start, tt.end))
			assert.Equal(t, tt.available, got.Available)
			if tt.available {
				assert.Empty(t, got.Conflicts)
			} else {
				require.Len(t, got.Conflicts, 1)
				assert.Equal(t, existing.ID(), got.Conflicts[0].ID())
			}
		})
	}
}

func TestCheckAvailability_StatusFiltering(t *testing.T) {
	slot := mustSlot(t, "10:00", "11:00")

	t.Run("cancelled bookings never block", func(t *testing.T) {
		cancelled := builder.NewBookingBuilder().WithSlot("10:00", "11:00").Cancelled().BuildDomain()
		got := booking.CheckAvailability([]*booking.Booking{cancelled}, slot)
		assert.True(t, got.Available)
	})

	t.Run("confirmed bookings block", func(t *testing.T) {
		confirmed := builder.NewBookingBuilder().WithSlot("10:30", "11:30").Confirmed().BuildDomain()
		got := booking.CheckAvailability([]*booking.Booking{confirmed}, slot)
		assert.False(t, got.Available)
	})

	t.Run("only overlapping active bookings are reported", func(t *testing.T) {
		active := builder.NewBookingBuilder().WithSlot("10:30", "11:30").BuildDomain()
		cancelled := builder.NewBookingBuilder().WithSlot("10:00", "11:00").Cancelled().BuildDomain()
		elsewhere := builder.NewBookingBuilder().WithSlot("13:00", "14:00").BuildDomain()

		got := booking.CheckAvailability([]*booking.Booking{active, cancelled, elsewhere}, slot)
		assert.False(t, got.Available)
		require.Len(t, got.Conflicts, 1)
		assert.Equal(t, active.ID(), got.Conflicts[0].ID())
	})
}

func TestDaySchedule_Check(t *testing.T) {
	schedule := booking.DaySchedule{
		Version:  3,
		Bookings: []*booking.Booking{builder.NewBookingBuilder().WithSlot("18:00", "20:00").BuildDomain()},
	}

	assert.False(t, schedule.Check(mustSlot(t, "19:00", "21:00")).Available)
	assert.True(t, schedule.Check(mustSlot(t, "20:00", "21:00")).Available)
}
