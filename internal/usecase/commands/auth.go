package commands

import (
	"context"
	"log/slog"
	"time"

	"badminton-club/internal/domain/user"
	reqdto "badminton-club/internal/handler/dto/request"
	"badminton-club/internal/infra"
	"badminton-club/internal/pkg/clock"
	"badminton-club/internal/pkg/errs"
	"badminton-club/internal/pkg/jwt"
	"badminton-club/internal/pkg/password"
	"badminton-club/internal/usecase/events"
	"badminton-club/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidRegistration  = errs.New("invalid registration")
	ErrUserAlreadyExists    = errs.New("user already exists")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	UpdateProfile(ctx context.Context, u *user.User) error
}

type AuthResult struct {
	Token string
	User  *queries.UserView
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
	events     afterCommit
	clock      clock.Clock
	logger     *slog.Logger
}

func NewAuthCommands(
	userRepo UserRepository,
	jwtService *jwt.Service,
	publisher events.Publisher,
	clock clock.Clock,
	publishTimeout time.Duration,
	logger *slog.Logger,
) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		events:     afterCommit{publisher: publisher, timeout: publishTimeout, logger: logger},
		clock:      clock,
		logger:     logger,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error) {
	reg, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRegistration)
	}

	hash, err := password.HashPassword(reg.Password.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	now := a.clock.Now()
	member := user.NewMember(reg.Email, hash, reg.Name, reg.Phone, reg.MembershipType, reg.SkillLevel, now)

	if err := a.userRepo.Create(ctx, member); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrUserAlreadyExists
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	a.events.publish(ctx, events.UserRegistered{
		Header:         events.NewHeader(member.ID(), now),
		UserID:         member.ID(),
		Email:          member.Email().Value(),
		FirstName:      member.Name().First(),
		LastName:       member.Name().Last(),
		MembershipType: member.MembershipType().String(),
	})

	return a.issue(member)
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	member, err := a.userRepo.FindByEmail(ctx, credentials.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same answer as a wrong password.
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(member.PasswordHash(), credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !member.IsActive() {
		return nil, ErrUserInactive
	}

	return a.issue(member)
}

func (a *authCommandsImpl) issue(member *user.User) (*AuthResult, error) {
	token, err := a.jwtService.GenerateToken(member.ID(), member.Email().Value(), member.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &AuthResult{
		Token: token,
		User:  queries.NewUserView(member),
	}, nil
}
