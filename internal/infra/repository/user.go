package repository

import (
	"context"
	"errors"
	"log/slog"

	"badminton-club/internal/domain/user"
	"badminton-club/internal/infra"
	"badminton-club/internal/infra/kvstore"
	"badminton-club/internal/infra/repository/converter"
	"badminton-club/internal/infra/repository/record"

	"github.com/google/uuid"
)

type UserRepository struct {
	store  kvstore.Store
	logger *slog.Logger
}

func NewUserRepository(store kvstore.Store, logger *slog.Logger) *UserRepository {
	return &UserRepository{store: store, logger: logger}
}

// Create claims the e-mail address and stores the user atomically.
// KindConflict means the address is already registered.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	err := r.store.TransactWrite(ctx,
		kvstore.Put(converter.EmailClaimToRecord(u), kvstore.IfNotExists()),
		kvstore.Put(converter.UserToRecord(u), kvstore.IfNotExists()),
	)
	if err != nil {
		if errors.Is(err, kvstore.ErrConditionFailed) {
			return infra.WrapRepoErr(r.logger, infra.KindConflict, "email already registered", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var rec record.User
	if err := r.store.Get(ctx, record.UserKey(id), record.UserProfileSK, &rec); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get user", err)
	}
	return r.toDomain(rec)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	var recs []record.User
	err := r.store.QueryIndex(ctx, kvstore.IndexGSI1, record.EmailKey(email.Value()), "USER#", &recs)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to query user by email", err)
	}
	if len(recs) == 0 {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "user not found", nil)
	}
	return r.toDomain(recs[0])
}

func (r *UserRepository) UpdateProfile(ctx context.Context, u *user.User) error {
	err := r.store.Update(ctx, record.UserKey(u.ID()), record.UserProfileSK, converter.ProfileFields(u))
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return infra.WrapRepoErr(r.logger, infra.KindNotFound, "user not found", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to update user", err)
	}
	return nil
}

func (r *UserRepository) toDomain(rec record.User) (*user.User, error) {
	u, err := converter.UserToDomain(rec)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindCorruption, "invalid user item", err)
	}
	return u, nil
}
