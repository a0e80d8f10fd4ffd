//go:build unit

package middleware_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"badminton-club/internal/handler/httperr"
	"badminton-club/internal/handler/middleware"
	"badminton-club/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())

	r.GET("/panic", func(c *gin.Context) {
		panic("court schedule corrupted")
	})
	r.GET("/public", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusConflict, errors.New("contention"), "Court schedule is busy, please retry", nil)
	})
	r.GET("/private", func(c *gin.Context) {
		c.Set("request_id", "req-42")
		_ = c.Error(errors.New("unexpected"))
	})
	r.GET("/status-only", func(c *gin.Context) {
		c.AbortWithStatus(http.StatusTeapot)
	})
	return r
}

func TestErrorMiddleware(t *testing.T) {
	r := newErrorRouter()

	t.Run("panic is recovered as 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("public error keeps its status and message", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/public", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "please retry")
	})

	t.Run("private error becomes a generic 500 and is logged with the request id", func(t *testing.T) {
		var logs bytes.Buffer
		prev := slog.Default()
		slog.SetDefault(slog.New(slog.NewJSONHandler(&logs, nil)))
		t.Cleanup(func() { slog.SetDefault(prev) })

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")

		assert.NotContains(t, rec.Body.String(), "unexpected")
		assert.Contains(t, logs.String(), `"request_id":"req-42"`)
		assert.Contains(t, logs.String(), `"path":"/private"`)
		assert.Contains(t, logs.String(), "unexpected")
	})

	t.Run("bare status is preserved", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/status-only", nil, "")
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})
}
