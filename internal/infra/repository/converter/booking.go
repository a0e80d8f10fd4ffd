package converter

import (
	"fmt"
	"time"

	"badminton-club/internal/domain/booking"
	"badminton-club/internal/domain/money"
	"badminton-club/internal/infra/kvstore"
	"badminton-club/internal/infra/repository/record"

	"github.com/google/uuid"
)

func BookingToRecord(b *booking.Booking) record.Booking {
	key := record.BookingKey(b.ID())
	slotSK := record.BookingSlotSK(b.Date().String(), b.Slot().Start().String())
	return record.Booking{
		Keys: kvstore.Keys{
			PK:     key,
			SK:     key,
			GSI1PK: record.UserKey(b.UserID()),
			GSI1SK: slotSK,
			GSI2PK: record.CourtKey(b.CourtID()),
			GSI2SK: slotSK,
		},
		EntityType:       record.EntityBooking,
		ID:               b.ID().String(),
		CourtID:          b.CourtID().String(),
		UserID:           b.UserID().String(),
		Date:             b.Date().String(),
		StartTime:        b.Slot().Start().String(),
		EndTime:          b.Slot().End().String(),
		TotalAmountCents: b.TotalAmount().Cents(),
		Status:           b.Status().String(),
		PaymentStatus:    b.PaymentStatus().String(),
		Notes:            b.Note().String(),
		CreatedAt:        b.CreatedAt(),
		UpdatedAt:        b.UpdatedAt(),
	}
}

func BookingToDomain(r record.Booking) (*booking.Booking, error) {
	ids, err := parseUUIDs(r.ID, r.CourtID, r.UserID)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", r.ID, err)
	}
	date, err := booking.NewDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", r.ID, err)
	}
	slot, err := booking.ParseSlot(r.StartTime, r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", r.ID, err)
	}
	amount, err := money.FromCents(r.TotalAmountCents)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", r.ID, err)
	}
	status := booking.Status(r.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("booking %s: unknown status %q", r.ID, r.Status)
	}
	paymentStatus := booking.PaymentStatus(r.PaymentStatus)
	if !paymentStatus.IsValid() {
		return nil, fmt.Errorf("booking %s: unknown payment status %q", r.ID, r.PaymentStatus)
	}
	notes := r.Notes

	return booking.ReconstructBooking(
		ids[0], ids[1], ids[2],
		date,
		slot,
		amount,
		status,
		paymentStatus,
		booking.NewNote(&notes),
		r.CreatedAt, r.UpdatedAt,
	), nil
}

func BookingsToDomain(rs []record.Booking) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(rs))
	for _, r := range rs {
		b, err := BookingToDomain(r)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func ScheduleToRecord(courtID uuid.UUID, date booking.Date, version int64, updatedAt time.Time) record.Schedule {
	return record.Schedule{
		Keys:       kvstore.Keys{PK: record.CourtKey(courtID), SK: record.ScheduleSK(date.String())},
		EntityType: record.EntitySchedule,
		CourtID:    courtID.String(),
		Date:       date.String(),
		Version:    version,
		UpdatedAt:  updatedAt,
	}
}

func parseUUIDs(values ...string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, len(values))
	for i, v := range values {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", v, err)
		}
		out[i] = id
	}
	return out, nil
}
