package commands

import (
	"context"
	"log/slog"
	"time"

	"badminton-club/internal/domain/booking"
	"badminton-club/internal/domain/court"
	reqdto "badminton-club/internal/handler/dto/request"
	"badminton-club/internal/infra"
	"badminton-club/internal/pkg/clock"
	"badminton-club/internal/pkg/errs"
	"badminton-club/internal/usecase/events"
	"badminton-club/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrCourtNotFound           = errs.New("court not found")
	ErrInvalidBookingRequest   = errs.New("invalid booking request")
	ErrSlotUnavailable         = errs.New("slot unavailable")
	ErrAdmissionContention     = errs.New("admission contention")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookingRepository interface {
	LoadDaySchedule(ctx context.Context, courtID uuid.UUID, date booking.Date) (*booking.DaySchedule, error)
	Admit(ctx context.Context, b *booking.Booking, readVersion int64) error
}

type CourtRepository interface {
	Create(ctx context.Context, c *court.Court) error
	FindByID(ctx context.Context, id uuid.UUID) (*court.Court, error)
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (*queries.BookingView, error)
}

type BookingCommandsConfig struct {
	AdmissionAttempts int
	PublishTimeout    time.Duration
}

type bookingCommandsImpl struct {
	bookingRepo    BookingRepository
	courtRepo      CourtRepository
	bookingFactory *booking.Factory
	events         afterCommit
	clock          clock.Clock
	maxAttempts    int
	logger         *slog.Logger
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	bookingFactory *booking.Factory,
	publisher events.Publisher,
	clock clock.Clock,
	cfg BookingCommandsConfig,
	logger *slog.Logger,
) BookingCommands {
	attempts := cfg.AdmissionAttempts
	if attempts < 1 {
		attempts = 1
	}
	return &bookingCommandsImpl{
		bookingRepo:    bookingRepo,
		courtRepo:      courtRepo,
		bookingFactory: bookingFactory,
		events:         afterCommit{publisher: publisher, timeout: cfg.PublishTimeout, logger: logger},
		clock:          clock,
		maxAttempts:    attempts,
		logger:         logger,
	}
}

func (u *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID uuid.UUID,
) (*queries.BookingView, error) {
	window, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingRequest)
	}

	courtEntity, err := u.bookableCourt(ctx, req)
	if err != nil {
		return nil, err
	}

	created, err := u.admit(ctx, courtEntity, userID, window, req.Notes)
	if err != nil {
		return nil, err
	}

	u.events.publish(ctx, events.BookingCreated{
		Header:      events.NewHeader(created.ID(), u.clock.Now()),
		BookingID:   created.ID(),
		CourtID:     created.CourtID(),
		UserID:      created.UserID(),
		Date:        created.Date().String(),
		StartTime:   created.Slot().Start().String(),
		EndTime:     created.Slot().End().String(),
		TotalAmount: created.TotalAmount().Decimal(),
		Status:      created.Status().String(),
	})

	return queries.NewBookingView(created), nil
}

func (u *bookingCommandsImpl) bookableCourt(ctx context.Context, req reqdto.CreateBookingRequest) (*court.Court, error) {
	courtID, ok := req.ParseCourtID()
	if !ok {
		return nil, ErrCourtNotFound
	}

	courtEntity, err := u.courtRepo.FindByID(ctx, courtID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !courtEntity.IsBookable() {
		return nil, ErrCourtNotFound
	}
	return courtEntity, nil
}

// admit runs read-check-write until the schedule version it read is still
// current at write time. A lost race means nothing was written, so the cycle
// is simply repeated against fresh data.
func (u *bookingCommandsImpl) admit(
	ctx context.Context,
	courtEntity *court.Court,
	userID uuid.UUID,
	window reqdto.BookingSlot,
	notes *string,
) (*booking.Booking, error) {
	var candidate *booking.Booking

	for attempt := 1; attempt <= u.maxAttempts; attempt++ {
		schedule, err := u.bookingRepo.LoadDaySchedule(ctx, courtEntity.ID(), window.Date)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if availability := schedule.Check(window.Slot); !availability.Available {
			u.logger.InfoContext(ctx, "booking rejected: slot taken",
				"court_id", courtEntity.ID(),
				"date", window.Date.String(),
				"slot", window.Slot.String(),
				"conflicts", len(availability.Conflicts),
			)
			return nil, ErrSlotUnavailable
		}

		if candidate == nil {
			candidate, err = u.bookingFactory.Build(userID, courtEntity, window.Date, window.Slot, notes)
			if err != nil {
				return nil, errs.Mark(err, ErrCourtNotFound)
			}
		}

		err = u.bookingRepo.Admit(ctx, candidate, schedule.Version)
		if err == nil {
			return candidate, nil
		}
		if !infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		u.logger.InfoContext(ctx, "booking admission raced, retrying",
			"court_id", courtEntity.ID(),
			"date", window.Date.String(),
			"attempt", attempt,
		)
	}

	return nil, ErrAdmissionContention
}
