// Package events defines the integration events published after a write commits.
package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	SourceBookings = "badminton-club.bookings"
	SourceUsers    = "badminton-club.users"
)

type Header struct {
	ID             string    `json:"id"`
	PublishedAt    time.Time `json:"published_at"`
	IdempotencyKey string    `json:"idempotency_key"`
}

// NewHeader keys idempotency on the aggregate so redelivered events can be deduplicated.
func NewHeader(aggregateID uuid.UUID, now time.Time) Header {
	return Header{
		ID:             uuid.NewString(),
		PublishedAt:    now,
		IdempotencyKey: aggregateID.String(),
	}
}

type BookingCreated struct {
	Header Header `json:"header"`

	BookingID   uuid.UUID `json:"booking_id"`
	CourtID     uuid.UUID `json:"court_id"`
	UserID      uuid.UUID `json:"user_id"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status"`
}

func (BookingCreated) EventSource() string { return SourceBookings }

type UserRegistered struct {
	Header Header `json:"header"`

	UserID         uuid.UUID `json:"user_id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	MembershipType string    `json:"membership_type"`
}

func (UserRegistered) EventSource() string { return SourceUsers }

// Sourced events name the bounded context that emitted them.
type Sourced interface {
	EventSource() string
}
