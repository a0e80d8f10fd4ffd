package queries

import (
	"context"

	"badminton-club/internal/domain/booking"
	reqdto "badminton-club/internal/handler/dto/request"
	"badminton-club/internal/infra"
	"badminton-club/internal/pkg/errs"
	"badminton-club/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound      = errs.New("booking not found")
	ErrInvalidBookingWindow = errs.New("invalid booking window")
)

type BookingQueries interface {
	CheckAvailability(ctx context.Context, q reqdto.AvailabilityQuery) (*AvailabilityView, error)
	GetByID(ctx context.Context, caller shared.Caller, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error)
	FindByCourtAndDate(ctx context.Context, courtID uuid.UUID, date booking.Date) ([]*booking.Booking, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	courts   CourtReadStore
}

func NewBookingQueries(bookings BookingReadStore, courts CourtReadStore) BookingQueries {
	return &bookingQueriesImpl{
		bookings: bookings,
		courts:   courts,
	}
}

// CheckAvailability answers without writing anything; an unknown or
// inactive court is reported as not found rather than as unavailable.
func (q *bookingQueriesImpl) CheckAvailability(ctx context.Context, req reqdto.AvailabilityQuery) (*AvailabilityView, error) {
	window, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingWindow)
	}

	courtID, ok := req.ParseCourtID()
	if !ok {
		return nil, ErrCourtNotFound
	}
	c, err := q.courts.FindByID(ctx, courtID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !c.IsBookable() {
		return nil, ErrCourtNotFound
	}

	existing, err := q.bookings.FindByCourtAndDate(ctx, courtID, window.Date)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return NewAvailabilityView(booking.CheckAvailability(existing, window.Slot)), nil
}

// GetByID hides bookings of other members behind not found.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, caller shared.Caller, id uuid.UUID) (*BookingView, error) {
	b, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !caller.IsAdmin() && !b.IsOwnedBy(caller.UserID) {
		return nil, ErrBookingNotFound
	}
	return NewBookingView(b), nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	bookings, err := q.bookings.FindByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	views := make([]*BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, NewBookingView(b))
	}
	return views, nil
}
