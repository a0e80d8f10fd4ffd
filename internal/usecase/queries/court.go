package queries

import (
	"context"

	"badminton-club/internal/domain/court"
	"badminton-club/internal/infra"
	"badminton-club/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCourtNotFound           = errs.New("court not found")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CourtQueries interface {
	ListActive(ctx context.Context) ([]*CourtView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CourtView, error)
}

type CourtReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*court.Court, error)
	FindAll(ctx context.Context) ([]*court.Court, error)
}

type courtQueriesImpl struct {
	readStore CourtReadStore
}

func NewCourtQueries(readStore CourtReadStore) CourtQueries {
	return &courtQueriesImpl{
		readStore: readStore,
	}
}

func (q *courtQueriesImpl) ListActive(ctx context.Context) ([]*CourtView, error) {
	courts, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	views := make([]*CourtView, 0, len(courts))
	for _, c := range courts {
		if c.IsActive() {
			views = append(views, NewCourtView(c))
		}
	}
	return views, nil
}

func (q *courtQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CourtView, error) {
	c, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return NewCourtView(c), nil
}
