//go:build unit || e2e

package builder

import (
	"badminton-club/internal/domain/booking"
	"badminton-club/internal/domain/money"
	reqdto "badminton-club/internal/handler/dto/request"
	"badminton-club/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID            uuid.UUID
	CourtID       uuid.UUID
	UserID        uuid.UUID
	Date          string
	StartTime     string
	EndTime       string
	TotalAmount   float64
	Status        booking.Status
	PaymentStatus booking.PaymentStatus
	Notes         *string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:            uuid.New(),
		CourtID:       uuid.New(),
		UserID:        uuid.New(),
		Date:          "2025-03-10",
		StartTime:     "10:00",
		EndTime:       "11:00",
		TotalAmount:   50,
		Status:        booking.StatusPending,
		PaymentStatus: booking.PaymentPending,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	date, err := booking.NewDate(b.Date)
	if err != nil {
		panic(err)
	}
	slot, err := booking.ParseSlot(b.StartTime, b.EndTime)
	if err != nil {
		panic(err)
	}
	amount, err := money.FromDecimal(b.TotalAmount)
	if err != nil {
		panic(err)
	}
	return booking.ReconstructBooking(
		b.ID, b.CourtID, b.UserID, date, slot, amount,
		b.Status, b.PaymentStatus, booking.NewNote(b.Notes),
		fixedTime, fixedTime,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return queries.NewBookingView(b.BuildDomain())
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CourtID:   b.CourtID.String(),
		Date:      b.Date,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Notes:     b.Notes,
	}
}

func (b *BookingBuilder) WithCourt(id uuid.UUID) *BookingBuilder {
	b.CourtID = id
	return b
}

func (b *BookingBuilder) WithUser(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithSlot(start, end string) *BookingBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *BookingBuilder) WithNotes(notes string) *BookingBuilder {
	b.Notes = &notes
	return b
}

func (b *BookingBuilder) Cancelled() *BookingBuilder {
	b.Status = booking.StatusCancelled
	return b
}

func (b *BookingBuilder) Confirmed() *BookingBuilder {
	b.Status = booking.StatusConfirmed
	return b
}
