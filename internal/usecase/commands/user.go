package commands

import (
	"context"

	reqdto "badminton-club/internal/handler/dto/request"
	"badminton-club/internal/infra"
	"badminton-club/internal/pkg/clock"
	"badminton-club/internal/pkg/errs"
	"badminton-club/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound   = errs.New("user not found")
	ErrInvalidProfile = errs.New("invalid profile")
)

type UserCommands interface {
	UpdateProfile(ctx context.Context, req reqdto.UpdateProfileRequest, userID uuid.UUID) (*queries.UserView, error)
}

type userCommandsImpl struct {
	userRepo UserRepository
	clock    clock.Clock
}

func NewUserCommands(userRepo UserRepository, clock clock.Clock) UserCommands {
	return &userCommandsImpl{
		userRepo: userRepo,
		clock:    clock,
	}
}

func (u *userCommandsImpl) UpdateProfile(ctx context.Context, req reqdto.UpdateProfileRequest, userID uuid.UUID) (*queries.UserView, error) {
	member, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	changes, err := req.ToDomain(member.Name())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidProfile)
	}
	if changes.IsEmpty() {
		return queries.NewUserView(member), nil
	}

	member.ApplyProfile(changes, u.clock.Now())
	if err := u.userRepo.UpdateProfile(ctx, member); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return queries.NewUserView(member), nil
}
