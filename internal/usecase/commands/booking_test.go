//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"badminton-club/internal/domain/booking"
	"badminton-club/internal/infra"
	"badminton-club/internal/infra/repository"
	"badminton-club/internal/pkg/clock"
	"badminton-club/internal/pkg/errs"
	"badminton-club/internal/usecase/commands"
	"badminton-club/internal/usecase/events"
	"badminton-club/tests/common/builder"
	"badminton-club/tests/common/kvtest"
	commandsmock "badminton-club/tests/mock/commands"
	eventsmock "badminton-club/tests/mock/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var (
	testNow    = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctx       context.Context
	mockCtrl  *gomock.Controller
	publisher *eventsmock.MockPublisher
	store     *kvtest.MemoryStore
	courts    *repository.CourtRepository
	bookings  *repository.BookingRepository
	clock     *clock.FixedClock
	factory   *booking.Factory
	useCase   commands.BookingCommands
	userID    uuid.UUID
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.publisher = eventsmock.NewMockPublisher(s.mockCtrl)
	s.store = kvtest.NewMemoryStore()
	s.courts = repository.NewCourtRepository(s.store, testLogger)
	s.bookings = repository.NewBookingRepository(s.store, testLogger)
	s.clock = clock.NewFixedClock(testNow)
	s.factory = booking.NewFactory(s.clock, booking.NewDefaultPriceCalculator(nil))
	s.useCase = s.newUseCase(s.bookings, s.courts, 3)
	s.userID = uuid.New()
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *BookingCommandsTestSuite) newUseCase(b commands.BookingRepository, c commands.CourtRepository, attempts int) commands.BookingCommands {
	return commands.NewBookingCommands(b, c, s.factory, s.publisher, s.clock,
		commands.BookingCommandsConfig{AdmissionAttempts: attempts, PublishTimeout: time.Second}, testLogger)
}

func (s *BookingCommandsTestSuite) seedCourt(b *builder.CourtBuilder) uuid.UUID {
	c := b.BuildDomain()
	s.Require().NoError(s.courts.Create(s.ctx, c))
	return c.ID()
}

func (s *BookingCommandsTestSuite) storedBookings(courtID uuid.UUID, date string) []*booking.Booking {
	d, err := booking.NewDate(date)
	s.Require().NoError(err)
	got, err := s.bookings.FindByCourtAndDate(s.ctx, courtID, d)
	s.Require().NoError(err)
	return got
}

func (s *BookingCommandsTestSuite) TestCreateBooking_Success() {
	courtID := s.seedCourt(builder.NewCourtBuilder().WithHourlyRate(50))
	req := builder.NewBookingBuilder().WithCourt(courtID).WithSlot("09:00", "11:00").BuildDTO()

	var published events.BookingCreated
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.AssignableToTypeOf(events.BookingCreated{})).
		DoAndReturn(func(_ context.Context, event any) error {
			published = event.(events.BookingCreated)
			return nil
		}).Times(1)

	view, err := s.useCase.CreateBooking(s.ctx, req, s.userID)

	s.Require().NoError(err)
	s.Equal(courtID, view.CourtID)
	s.Equal(s.userID, view.UserID)
	s.Equal("2025-03-10", view.Date)
	s.Equal("09:00", view.StartTime)
	s.Equal("11:00", view.EndTime)
	s.InDelta(100.0, view.TotalAmount, 1e-9)
	s.Equal("pending", view.Status)
	s.Equal("pending", view.PaymentStatus)
	s.Equal(booking.DefaultNote, view.Notes)
	s.Equal(testNow, view.CreatedAt)
	s.Equal(view.CreatedAt, view.UpdatedAt)

	s.Equal(view.ID, published.BookingID)
	s.Equal(view.ID.String(), published.Header.IdempotencyKey)
	s.Equal("09:00", published.StartTime)
	s.Len(s.storedBookings(courtID, "2025-03-10"), 1)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_ScenarioA() {
	courtID := s.seedCourt(builder.NewCourtBuilder().WithHourlyRate(50))
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	_, err := s.useCase.CreateBooking(s.ctx,
		builder.NewBookingBuilder().WithCourt(courtID).WithSlot("10:00", "11:00").BuildDTO(), s.userID)
	s.Require().NoError(err)

	_, err = s.useCase.CreateBooking(s.ctx,
		builder.NewBookingBuilder().WithCourt(courtID).WithSlot("10:30", "11:30").BuildDTO(), uuid.New())
	s.True(errs.Is(err, commands.ErrSlotUnavailable))

	touching, err := s.useCase.CreateBooking(s.ctx,
		builder.NewBookingBuilder().WithCourt(courtID).WithSlot("11:00", "12:00").BuildDTO(), uuid.New())
	s.Require().NoError(err)
	s.InDelta(50.0, touching.TotalAmount, 1e-9)

	s.Len(s.storedBookings(courtID, "2025-03-10"), 2)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_CancelledBookingFreesSlot() {
	courtID := s.seedCourt(builder.NewCourtBuilder())
	cancelled := builder.NewBookingBuilder().WithCourt(courtID).WithSlot("10:00", "11:00").Cancelled().BuildDomain()
	s.Require().NoError(s.bookings.Admit(s.ctx, cancelled, 0))
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := s.useCase.CreateBooking(s.ctx,
		builder.NewBookingBuilder().WithCourt(courtID).WithSlot("10:00", "11:00").BuildDTO(), s.userID)

	s.Require().NoError(err)
	s.Len(s.storedBookings(courtID, "2025-03-10"), 2)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_SubHourSlotIsFree() {
	courtID := s.seedCourt(builder.NewCourtBuilder().WithHourlyRate(50))
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	view, err := s.useCase.CreateBooking(s.ctx,
		builder.NewBookingBuilder().WithCourt(courtID).WithSlot("09:15", "09:45").BuildDTO(), s.userID)

	s.Require().NoError(err)
	s.Zero(view.TotalAmount)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_CourtNotFound() {
	tests := []struct {
		name    string
		courtID string
	}{
		{name: "unknown court", courtID: uuid.NewString()},
		{name: "not a uuid", courtID: "court-1"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			req := builder.NewBookingBuilder().BuildDTO()
			req.CourtID = tt.courtID

			view, err := s.useCase.CreateBooking(s.ctx, req, s.userID)

			s.Nil(view)
			s.True(errs.Is(err, commands.ErrCourtNotFound))
			s.Zero(s.store.Calls["transact"])
		})
	}

	s.Run("inactive court", func() {
		courtID := s.seedCourt(builder.NewCourtBuilder().AsInactive())

		_, err := s.useCase.CreateBooking(s.ctx, builder.NewBookingBuilder().WithCourt(courtID).BuildDTO(), s.userID)

		s.True(errs.Is(err, commands.ErrCourtNotFound))
	})
}

func (s *BookingCommandsTestSuite) TestCreateBooking_InvalidWindow() {
	courtID := s.seedCourt(builder.NewCourtBuilder())
	tests := []struct {
		name       string
		date       string
		start, end string
	}{
		{name: "end before start", date: "2025-03-10", start: "11:00", end: "10:00"},
		{name: "empty slot", date: "2025-03-10", start: "10:00", end: "10:00"},
		{name: "bad time", date: "2025-03-10", start: "10:00", end: "25:00"},
		{name: "bad date", date: "10-03-2025", start: "10:00", end: "11:00"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			req := builder.NewBookingBuilder().WithCourt(courtID).WithDate(tt.date).WithSlot(tt.start, tt.end).BuildDTO()

			_, err := s.useCase.CreateBooking(s.ctx, req, s.userID)

			s.True(errs.Is(err, commands.ErrInvalidBookingRequest))
		})
	}
	s.Zero(s.store.Calls["transact"])
}

func (s *BookingCommandsTestSuite) TestCreateBooking_RetriesAfterLosingRace() {
	courtID := s.seedCourt(builder.NewCourtBuilder())
	competitor := builder.NewBookingBuilder().WithCourt(courtID).WithSlot("08:00", "09:00").BuildDomain()
	s.store.BeforeTransact = func(ctx context.Context) {
		s.Require().NoError(s.bookings.Admit(ctx, competitor, 0))
	}
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	view, err := s.useCase.CreateBooking(s.ctx,
		builder.NewBookingBuilder().WithCourt(courtID).WithSlot("10:00", "11:00").BuildDTO(), s.userID)

	s.Require().NoError(err)
	s.NotNil(view)
	s.Len(s.storedBookings(courtID, "2025-03-10"), 2)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_RaceLostToOverlappingBooking() {
	courtID := s.seedCourt(builder.NewCourtBuilder())
	competitor := builder.NewBookingBuilder().WithCourt(courtID).WithSlot("10:30", "11:30").BuildDomain()
	s.store.BeforeTransact = func(ctx context.Context) {
		s.Require().NoError(s.bookings.Admit(ctx, competitor, 0))
	}

	_, err := s.useCase.CreateBooking(s.ctx,
		builder.NewBookingBuilder().WithCourt(courtID).WithSlot("10:00", "11:00").BuildDTO(), s.userID)

	s.True(errs.Is(err, commands.ErrSlotUnavailable))
	stored := s.storedBookings(courtID, "2025-03-10")
	s.Require().Len(stored, 1)
	s.Equal(competitor.ID(), stored[0].ID())
}

func (s *BookingCommandsTestSuite) TestCreateBooking_ConcurrentRequestsAdmitOne() {
	courtID := s.seedCourt(builder.NewCourtBuilder())
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	useCase := s.newUseCase(s.bookings, s.courts, 10)

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := builder.NewBookingBuilder().WithCourt(courtID).WithSlot("18:00", "20:00").BuildDTO()
			_, err := useCase.CreateBooking(s.ctx, req, uuid.New())
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
				return
			}
			s.True(errs.Is(err, commands.ErrSlotUnavailable) || errs.Is(err, commands.ErrAdmissionContention), err.Error())
		}()
	}
	wg.Wait()

	s.Equal(1, successes)
	s.Len(s.storedBookings(courtID, "2025-03-10"), 1)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_ContentionExhaustsAttempts() {
	bookingRepo := commandsmock.NewMockBookingRepository(s.mockCtrl)
	courtRepo := commandsmock.NewMockCourtRepository(s.mockCtrl)
	c := builder.NewCourtBuilder().BuildDomain()
	conflict := infra.WrapRepoErr(testLogger, infra.KindConflict, "court schedule changed during admission", nil)

	courtRepo.EXPECT().FindByID(gomock.Any(), c.ID()).Return(c, nil).Times(1)
	bookingRepo.EXPECT().LoadDaySchedule(gomock.Any(), c.ID(), gomock.Any()).
		Return(&booking.DaySchedule{Version: 4}, nil).Times(2)
	bookingRepo.EXPECT().Admit(gomock.Any(), gomock.Any(), int64(4)).Return(conflict).Times(2)

	_, err := s.newUseCase(bookingRepo, courtRepo, 2).CreateBooking(s.ctx,
		builder.NewBookingBuilder().WithCourt(c.ID()).BuildDTO(), s.userID)

	s.True(errs.Is(err, commands.ErrAdmissionContention))
}

func (s *BookingCommandsTestSuite) TestCreateBooking_StoreFailures() {
	c := builder.NewCourtBuilder().BuildDomain()
	req := builder.NewBookingBuilder().WithCourt(c.ID()).BuildDTO()
	dbErr := infra.WrapRepoErr(testLogger, infra.KindDBFailure, "failed", errors.New("connection refused"))

	s.Run("court lookup", func() {
		bookingRepo := commandsmock.NewMockBookingRepository(s.mockCtrl)
		courtRepo := commandsmock.NewMockCourtRepository(s.mockCtrl)
		courtRepo.EXPECT().FindByID(gomock.Any(), c.ID()).Return(nil, dbErr)

		_, err := s.newUseCase(bookingRepo, courtRepo, 3).CreateBooking(s.ctx, req, s.userID)
		s.True(errs.Is(err, commands.ErrDatabaseOperationFailed))
	})

	s.Run("schedule read", func() {
		bookingRepo := commandsmock.NewMockBookingRepository(s.mockCtrl)
		courtRepo := commandsmock.NewMockCourtRepository(s.mockCtrl)
		courtRepo.EXPECT().FindByID(gomock.Any(), c.ID()).Return(c, nil)
		bookingRepo.EXPECT().LoadDaySchedule(gomock.Any(), c.ID(), gomock.Any()).Return(nil, dbErr)

		_, err := s.newUseCase(bookingRepo, courtRepo, 3).CreateBooking(s.ctx, req, s.userID)
		s.True(errs.Is(err, commands.ErrDatabaseOperationFailed))
	})

	s.Run("admission write is not retried", func() {
		bookingRepo := commandsmock.NewMockBookingRepository(s.mockCtrl)
		courtRepo := commandsmock.NewMockCourtRepository(s.mockCtrl)
		courtRepo.EXPECT().FindByID(gomock.Any(), c.ID()).Return(c, nil)
		bookingRepo.EXPECT().LoadDaySchedule(gomock.Any(), c.ID(), gomock.Any()).Return(&booking.DaySchedule{}, nil).Times(1)
		bookingRepo.EXPECT().Admit(gomock.Any(), gomock.Any(), int64(0)).Return(dbErr).Times(1)

		_, err := s.newUseCase(bookingRepo, courtRepo, 3).CreateBooking(s.ctx, req, s.userID)
		s.True(errs.Is(err, commands.ErrDatabaseOperationFailed))
	})
}

func (s *BookingCommandsTestSuite) TestCreateBooking_PublishFailureIsNotFatal() {
	courtID := s.seedCourt(builder.NewCourtBuilder())
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis unavailable")).Times(1)

	view, err := s.useCase.CreateBooking(s.ctx, builder.NewBookingBuilder().WithCourt(courtID).BuildDTO(), s.userID)

	s.Require().NoError(err)
	s.NotNil(view)
	s.Len(s.storedBookings(courtID, "2025-03-10"), 1)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_PublishOutlivesRequestContext() {
	courtID := s.seedCourt(builder.NewCourtBuilder())
	ctx, cancel := context.WithCancel(s.ctx)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(pubCtx context.Context, _ any) error {
			cancel()
			s.NoError(pubCtx.Err())
			_, hasDeadline := pubCtx.Deadline()
			s.True(hasDeadline)
			return nil
		}).Times(1)

	_, err := s.useCase.CreateBooking(ctx, builder.NewBookingBuilder().WithCourt(courtID).BuildDTO(), s.userID)
	s.Require().NoError(err)
}
