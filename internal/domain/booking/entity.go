package booking

import (
	"time"

	"badminton-club/internal/domain/money"

	"github.com/google/uuid"
)

type Booking struct {
	id            uuid.UUID
	courtID       uuid.UUID
	userID        uuid.UUID
	date          Date
	slot          Slot
	totalAmount   money.Money
	status        Status
	paymentStatus PaymentStatus
	note          Note
	createdAt     time.Time
	updatedAt     time.Time
}

func ReconstructBooking(
	id, courtID, userID uuid.UUID,
	date Date,
	slot Slot,
	totalAmount money.Money,
	status Status,
	paymentStatus PaymentStatus,
	note Note,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		courtID:       courtID,
		userID:        userID,
		date:          date,
		slot:          slot,
		totalAmount:   totalAmount,
		status:        status,
		paymentStatus: paymentStatus,
		note:          note,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

// Blocks reports whether b prevents a new reservation of slot on the same court and date.
func (b *Booking) Blocks(slot Slot) bool {
	return b.status.BlocksSlot() && b.slot.Overlaps(slot)
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) CourtID() uuid.UUID           { return b.courtID }
func (b *Booking) UserID() uuid.UUID            { return b.userID }
func (b *Booking) Date() Date                   { return b.date }
func (b *Booking) Slot() Slot                   { return b.slot }
func (b *Booking) TotalAmount() money.Money     { return b.totalAmount }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) Note() Note                   { return b.note }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
