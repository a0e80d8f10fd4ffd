//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"badminton-club/internal/domain/user"
	"badminton-club/internal/handler/api"
	reqdto "badminton-club/internal/handler/dto/request"
	resdto "badminton-club/internal/handler/dto/response"
	"badminton-club/internal/usecase/commands"
	"badminton-club/internal/usecase/queries"
	"badminton-club/internal/usecase/shared"
	"badminton-club/tests/common/builder"
	"badminton-club/tests/common/httptest"
	commandsmock "badminton-club/tests/mock/commands"
	queriesmock "badminton-club/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUserCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.UserHandler
	caller       shared.Caller
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewUserHandler(s.mockCommands, s.mockQueries)
	s.caller = shared.Caller{UserID: uuid.New(), Email: "player@example.com", Role: user.RoleMember}

	auth := fakeAuth(s.caller)
	s.router.GET("/users/me", auth, s.handler.Me)
	s.router.PATCH("/users/me", auth, s.handler.UpdateMe)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestMe() {
	view := builder.NewUserBuilder().WithID(s.caller.UserID).BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetProfile(gomock.Any(), s.caller.UserID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/me", nil, "bearer-token")

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.caller.UserID.String(), body.ID)
		s.Equal("Jane", body.FirstName)
		s.Equal("basic", body.MembershipType)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queryError     error
			expectedStatus int
			expectedMsg    string
		}{
			{"user missing", queries.ErrUserNotFound, http.StatusNotFound, "User not found"},
			{"user inactive", queries.ErrUserInactive, http.StatusForbidden, "Account is deactivated"},
			{"store failure", errors.New("store down"), http.StatusInternalServerError, "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetProfile(gomock.Any(), s.caller.UserID).Return(nil, tc.queryError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/me", nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *UserHandlerTestSuite) TestUpdateMe() {
	first := "Janet"
	level := "advanced"
	reqBody := reqdto.UpdateProfileRequest{FirstName: &first, SkillLevel: &level}
	view := builder.NewUserBuilder().WithID(s.caller.UserID).WithName("Janet", "Smith").BuildView()

	s.Run("success: returns the updated profile", func() {
		s.mockCommands.EXPECT().UpdateProfile(gomock.Any(), reqBody, s.caller.UserID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/users/me", reqBody, "bearer-token")

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Janet", body.FirstName)
		s.Equal("Smith", body.LastName)
	})

	s.Run("success: empty patch is passed through", func() {
		s.mockCommands.EXPECT().UpdateProfile(gomock.Any(), reqdto.UpdateProfileRequest{}, s.caller.UserID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/users/me", map[string]any{}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/users/me",
			map[string]any{"firstName": 42}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"invalid change", commands.ErrInvalidProfile, http.StatusBadRequest, "Invalid request"},
			{"user missing", commands.ErrUserNotFound, http.StatusNotFound, "User not found"},
			{"store failure", errors.New("store down"), http.StatusInternalServerError, "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateProfile(gomock.Any(), reqBody, s.caller.UserID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/users/me", reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
