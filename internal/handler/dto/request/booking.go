package request

import (
	"badminton-club/internal/domain/booking"

	"github.com/google/uuid"
)

// CourtID stays a string: an id that is not a UUID names no court and is
// reported as not found rather than as a malformed request.
type CreateBookingRequest struct {
	CourtID   string  `json:"courtId" binding:"required"`
	Date      string  `json:"date" binding:"required"`
	StartTime string  `json:"startTime" binding:"required"`
	EndTime   string  `json:"endTime" binding:"required"`
	Notes     *string `json:"notes,omitempty"`
}

type BookingSlot struct {
	Date booking.Date
	Slot booking.Slot
}

func (r *CreateBookingRequest) ToDomain() (BookingSlot, error) {
	return parseBookingSlot(r.Date, r.StartTime, r.EndTime)
}

func (r *CreateBookingRequest) ParseCourtID() (uuid.UUID, bool) {
	return parseCourtID(r.CourtID)
}

type AvailabilityQuery struct {
	CourtID   string `form:"courtId" binding:"required"`
	Date      string `form:"date" binding:"required"`
	StartTime string `form:"startTime" binding:"required"`
	EndTime   string `form:"endTime" binding:"required"`
}

func (q *AvailabilityQuery) ToDomain() (BookingSlot, error) {
	return parseBookingSlot(q.Date, q.StartTime, q.EndTime)
}

func (q *AvailabilityQuery) ParseCourtID() (uuid.UUID, bool) {
	return parseCourtID(q.CourtID)
}

func parseBookingSlot(date, start, end string) (BookingSlot, error) {
	d, err := booking.NewDate(date)
	if err != nil {
		return BookingSlot{}, err
	}
	slot, err := booking.ParseSlot(start, end)
	if err != nil {
		return BookingSlot{}, err
	}
	return BookingSlot{Date: d, Slot: slot}, nil
}

func parseCourtID(s string) (uuid.UUID, bool) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
