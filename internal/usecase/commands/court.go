package commands

import (
	"context"
	"log/slog"

	reqdto "badminton-club/internal/handler/dto/request"
	"badminton-club/internal/pkg/clock"
	"badminton-club/internal/pkg/errs"
	"badminton-club/internal/usecase/queries"
	"badminton-club/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAdminRequired = errs.New("admin role required")
	ErrInvalidCourt  = errs.New("invalid court")
)

type CourtCommands interface {
	CreateCourt(ctx context.Context, req reqdto.CreateCourtRequest, caller shared.Caller) (*queries.CourtView, error)
}

type courtCommandsImpl struct {
	courtRepo CourtRepository
	clock     clock.Clock
	logger    *slog.Logger
}

func NewCourtCommands(courtRepo CourtRepository, clock clock.Clock, logger *slog.Logger) CourtCommands {
	return &courtCommandsImpl{
		courtRepo: courtRepo,
		clock:     clock,
		logger:    logger,
	}
}

func (u *courtCommandsImpl) CreateCourt(ctx context.Context, req reqdto.CreateCourtRequest, caller shared.Caller) (*queries.CourtView, error) {
	if !caller.IsAdmin() {
		return nil, ErrAdminRequired
	}

	courtEntity, err := req.ToDomain(uuid.New(), u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCourt)
	}

	if err := u.courtRepo.Create(ctx, courtEntity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.logger.InfoContext(ctx, "court created", "court_id", courtEntity.ID(), "created_by", caller.UserID)
	return queries.NewCourtView(courtEntity), nil
}
