package repository

import (
	"context"
	"errors"
	"log/slog"

	"badminton-club/internal/domain/court"
	"badminton-club/internal/infra"
	"badminton-club/internal/infra/kvstore"
	"badminton-club/internal/infra/repository/converter"
	"badminton-club/internal/infra/repository/record"

	"github.com/google/uuid"
)

type CourtRepository struct {
	store  kvstore.Store
	logger *slog.Logger
}

func NewCourtRepository(store kvstore.Store, logger *slog.Logger) *CourtRepository {
	return &CourtRepository{store: store, logger: logger}
}

func (r *CourtRepository) Create(ctx context.Context, c *court.Court) error {
	err := r.store.Put(ctx, kvstore.Put(converter.CourtToRecord(c), kvstore.IfNotExists()))
	if err != nil {
		if errors.Is(err, kvstore.ErrConditionFailed) {
			return infra.WrapRepoErr(r.logger, infra.KindConflict, "court already exists", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to create court", err)
	}
	return nil
}

func (r *CourtRepository) FindByID(ctx context.Context, id uuid.UUID) (*court.Court, error) {
	key := record.CourtKey(id)
	var rec record.Court
	if err := r.store.Get(ctx, key, key, &rec); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "court not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get court", err)
	}
	c, err := converter.CourtToDomain(rec)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindCorruption, "invalid court item", err)
	}
	return c, nil
}

func (r *CourtRepository) FindAll(ctx context.Context) ([]*court.Court, error) {
	var recs []record.Court
	if err := r.store.Scan(ctx, map[string]string{"entityType": record.EntityCourt}, &recs); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list courts", err)
	}
	courts := make([]*court.Court, 0, len(recs))
	for _, rec := range recs {
		c, err := converter.CourtToDomain(rec)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindCorruption, "invalid court item", err)
		}
		courts = append(courts, c)
	}
	return courts, nil
}
