//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"badminton-club/internal/domain/court"
	"badminton-club/internal/infra"
	"badminton-club/internal/pkg/errs"
	"badminton-club/internal/usecase/queries"
	"badminton-club/tests/common/builder"
	queriesmock "badminton-club/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCourtQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("lists active courts only", func(t *testing.T) {
		store := queriesmock.NewMockCourtReadStore(gomock.NewController(t))
		active := builder.NewCourtBuilder().WithName("Court 1").BuildDomain()
		inactive := builder.NewCourtBuilder().WithName("Court 2").AsInactive().BuildDomain()
		store.EXPECT().FindAll(gomock.Any()).Return([]*court.Court{active, inactive}, nil)

		views, err := queries.NewCourtQueries(store).ListActive(ctx)

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "Court 1", views[0].Name)
		assert.Equal(t, "indoor", views[0].Type)
	})

	t.Run("list failure", func(t *testing.T) {
		store := queriesmock.NewMockCourtReadStore(gomock.NewController(t))
		store.EXPECT().FindAll(gomock.Any()).
			Return(nil, infra.WrapRepoErr(testLogger, infra.KindDBFailure, "failed", errors.New("boom")))

		_, err := queries.NewCourtQueries(store).ListActive(ctx)

		assert.True(t, errs.Is(err, queries.ErrDatabaseOperationFailed))
	})

	t.Run("get by id", func(t *testing.T) {
		store := queriesmock.NewMockCourtReadStore(gomock.NewController(t))
		c := builder.NewCourtBuilder().WithHourlyRate(22.5).BuildDomain()
		store.EXPECT().FindByID(gomock.Any(), c.ID()).Return(c, nil)

		view, err := queries.NewCourtQueries(store).GetByID(ctx, c.ID())

		require.NoError(t, err)
		assert.InDelta(t, 22.5, view.HourlyRate, 1e-9)
	})

	t.Run("get missing", func(t *testing.T) {
		store := queriesmock.NewMockCourtReadStore(gomock.NewController(t))
		store.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr(testLogger, infra.KindNotFound, "court not found", nil))

		_, err := queries.NewCourtQueries(store).GetByID(ctx, uuid.New())

		assert.True(t, errs.Is(err, queries.ErrCourtNotFound))
	})
}
