//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"badminton-club/internal/handler/dto/request"
	"badminton-club/internal/handler/dto/response"
	"badminton-club/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// RegisterMember signs a new member up through the API and returns the issued token.
func RegisterMember(t *testing.T, router *gin.Engine, email string) (string, response.UserResponse) {
	t.Helper()

	body := request.RegisterRequest{
		FirstName: "Test",
		LastName:  "Player",
		Email:     email,
		Password:  "password123",
		Phone:     "0400000000",
	}
	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/register", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res response.AuthResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	require.NotEmpty(t, res.Token)
	return res.Token, res.User
}

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.AuthResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	require.NotEmpty(t, res.Token)
	return res.Token
}
