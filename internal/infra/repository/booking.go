package repository

import (
	"context"
	"errors"
	"log/slog"

	"badminton-club/internal/domain/booking"
	"badminton-club/internal/infra"
	"badminton-club/internal/infra/kvstore"
	"badminton-club/internal/infra/repository/converter"
	"badminton-club/internal/infra/repository/record"

	"github.com/google/uuid"
)

type BookingRepository struct {
	store  kvstore.Store
	logger *slog.Logger
}

func NewBookingRepository(store kvstore.Store, logger *slog.Logger) *BookingRepository {
	return &BookingRepository{store: store, logger: logger}
}

// LoadDaySchedule reads the admission version before the bookings, so any
// booking committed after the version was read also moved the version.
func (r *BookingRepository) LoadDaySchedule(ctx context.Context, courtID uuid.UUID, date booking.Date) (*booking.DaySchedule, error) {
	var schedule record.Schedule
	err := r.store.Get(ctx, record.CourtKey(courtID), record.ScheduleSK(date.String()), &schedule)
	if err != nil && !errors.Is(err, kvstore.ErrNotFound) {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read court schedule", err)
	}

	bookings, err := r.FindByCourtAndDate(ctx, courtID, date)
	if err != nil {
		return nil, err
	}
	return &booking.DaySchedule{Version: schedule.Version, Bookings: bookings}, nil
}

func (r *BookingRepository) FindByCourtAndDate(ctx context.Context, courtID uuid.UUID, date booking.Date) ([]*booking.Booking, error) {
	var recs []record.Booking
	err := r.store.QueryIndex(ctx, kvstore.IndexGSI2, record.CourtKey(courtID), record.BookingDayPrefix(date.String()), &recs)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to query court bookings", err)
	}
	return r.toDomain(recs)
}

// Admit stores b and bumps the day's version in one transaction. It fails
// with KindConflict when another booking was admitted after readVersion.
func (r *BookingRepository) Admit(ctx context.Context, b *booking.Booking, readVersion int64) error {
	err := r.store.TransactWrite(ctx,
		kvstore.Put(converter.BookingToRecord(b), kvstore.IfNotExists()),
		kvstore.Put(
			converter.ScheduleToRecord(b.CourtID(), b.Date(), readVersion+1, b.CreatedAt()),
			kvstore.IfVersion(readVersion),
		),
	)
	if err != nil {
		if errors.Is(err, kvstore.ErrConditionFailed) {
			return infra.WrapRepoErr(r.logger, infra.KindConflict, "court schedule changed during admission", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to store booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	key := record.BookingKey(id)
	var rec record.Booking
	if err := r.store.Get(ctx, key, key, &rec); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get booking", err)
	}
	b, err := converter.BookingToDomain(rec)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindCorruption, "invalid booking item", err)
	}
	return b, nil
}

func (r *BookingRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error) {
	var recs []record.Booking
	err := r.store.QueryIndex(ctx, kvstore.IndexGSI1, record.UserKey(userID), record.BookingPrefix, &recs)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to query user bookings", err)
	}
	return r.toDomain(recs)
}

func (r *BookingRepository) toDomain(recs []record.Booking) ([]*booking.Booking, error) {
	bookings, err := converter.BookingsToDomain(recs)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindCorruption, "invalid booking item", err)
	}
	return bookings, nil
}
