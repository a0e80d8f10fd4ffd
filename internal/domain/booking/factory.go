package booking

import (
	"errors"

	"badminton-club/internal/domain/court"
	"badminton-club/internal/pkg/clock"

	"github.com/google/uuid"
)

var ErrCourtNotBookable = errors.New("court is inactive")

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
	NewID           func() uuid.UUID
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
		NewID:           uuid.New,
	}
}

// Build assembles a new pending booking. It does not check availability; callers
// admit the slot before persisting the result.
func (f *Factory) Build(
	userID uuid.UUID,
	courtEntity *court.Court,
	date Date,
	slot Slot,
	notes *string,
) (*Booking, error) {
	if !courtEntity.IsBookable() {
		return nil, ErrCourtNotBookable
	}

	now := f.Clock.Now().UTC()

	return &Booking{
		id:            f.NewID(),
		courtID:       courtEntity.ID(),
		userID:        userID,
		date:          date,
		slot:          slot,
		totalAmount:   f.PriceCalculator.TotalAmount(courtEntity.HourlyRate(), slot),
		status:        StatusPending,
		paymentStatus: PaymentPending,
		note:          NewNote(notes),
		createdAt:     now,
		updatedAt:     now,
	}, nil
}
