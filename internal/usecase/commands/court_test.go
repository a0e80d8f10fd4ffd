//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"badminton-club/internal/domain/court"
	"badminton-club/internal/domain/user"
	"badminton-club/internal/infra"
	"badminton-club/internal/pkg/clock"
	"badminton-club/internal/pkg/errs"
	"badminton-club/internal/usecase/commands"
	"badminton-club/internal/usecase/shared"
	"badminton-club/tests/common/builder"
	commandsmock "badminton-club/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateCourt(t *testing.T) {
	admin := shared.Caller{UserID: uuid.New(), Email: "admin@example.com", Role: user.RoleAdmin}
	member := shared.Caller{UserID: uuid.New(), Email: "member@example.com", Role: user.RoleMember}

	newUseCase := func(t *testing.T) (commands.CourtCommands, *commandsmock.MockCourtRepository) {
		ctrl := gomock.NewController(t)
		repo := commandsmock.NewMockCourtRepository(ctrl)
		return commands.NewCourtCommands(repo, clock.NewFixedClock(testNow), testLogger), repo
	}

	t.Run("admin creates an active court", func(t *testing.T) {
		uc, repo := newUseCase(t)
		var stored *court.Court
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *court.Court) error {
				stored = c
				return nil
			})

		view, err := uc.CreateCourt(context.Background(), builder.NewCourtBuilder().WithHourlyRate(35).BuildDTO(), admin)

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, stored.ID(), view.ID)
		assert.True(t, view.IsActive)
		assert.InDelta(t, 35.0, view.HourlyRate, 1e-9)
		assert.Equal(t, court.DefaultDescription, view.Description)
		assert.Equal(t, testNow, view.CreatedAt)
	})

	t.Run("members may not create courts", func(t *testing.T) {
		uc, _ := newUseCase(t)

		_, err := uc.CreateCourt(context.Background(), builder.NewCourtBuilder().BuildDTO(), member)

		assert.True(t, errs.Is(err, commands.ErrAdminRequired))
	})

	t.Run("invalid court", func(t *testing.T) {
		uc, _ := newUseCase(t)

		_, err := uc.CreateCourt(context.Background(), builder.NewCourtBuilder().WithName(" ").BuildDTO(), admin)

		assert.True(t, errs.Is(err, commands.ErrInvalidCourt))
		assert.ErrorIs(t, err, court.ErrEmptyCourtName)
	})

	t.Run("store failure", func(t *testing.T) {
		uc, repo := newUseCase(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr(testLogger, infra.KindDBFailure, "failed", errors.New("boom")))

		_, err := uc.CreateCourt(context.Background(), builder.NewCourtBuilder().BuildDTO(), admin)

		assert.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed))
	})
}
