//go:build unit

package booking_test

import (
	"testing"

	"badminton-club/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	tests := []struct {
		in    string
		errIs error
	}{
		{in: "2025-03-10"},
		{in: " 2025-12-31 "},
		{in: "2025-3-10", errIs: booking.ErrInvalidDate},
		{in: "2025-02-30", errIs: booking.ErrInvalidDate},
		{in: "10/03/2025", errIs: booking.ErrInvalidDate},
		{in: "", errIs: booking.ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := booking.NewDate(tt.in)
			if tt.errIs == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.errIs)
			}
		})
	}
}

func TestParseTimeOfDay(t *testing.T) {
	got, err := booking.ParseTimeOfDay("09:05")
	require.NoError(t, err)
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 5, got.Minute())
	assert.Equal(t, "09:05", got.String())

	got, err = booking.ParseTimeOfDay("9:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", got.String())

	for _, in := range []string{"24:00", "12:60", "noon", "12", ""} {
		_, err := booking.ParseTimeOfDay(in)
		assert.ErrorIs(t, err, booking.ErrInvalidTimeOfDay, in)
	}
}

func TestSlot(t *testing.T) {
	_, err := booking.ParseSlot("11:00", "10:00")
	assert.ErrorIs(t, err, booking.ErrInvalidTimeSlot)

	_, err = booking.ParseSlot("10:00", "10:00")
	assert.ErrorIs(t, err, booking.ErrInvalidTimeSlot)

	_, err = booking.ParseSlot("10:00", "25:00")
	assert.ErrorIs(t, err, booking.ErrInvalidTimeOfDay)

	a := mustSlot(t, "10:00", "11:00")
	assert.True(t, a.Overlaps(mustSlot(t, "10:59", "12:00")))
	assert.False(t, a.Overlaps(mustSlot(t, "11:00", "12:00")))
	assert.False(t, mustSlot(t, "11:00", "12:00").Overlaps(a))
	assert.Equal(t, "10:00-11:00", a.String())
}

func TestNewNote(t *testing.T) {
	assert.Equal(t, booking.DefaultNote, booking.NewNote(nil).String())

	s := "  racket hire "
	assert.Equal(t, "racket hire", booking.NewNote(&s).String())
}
