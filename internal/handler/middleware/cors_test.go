//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"
	"time"

	"badminton-club/internal/handler/middleware"
	"badminton-club/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCORSRouter(cfg config.CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(cfg))
	r.GET("/api/courts", func(c *gin.Context) {
		c.JSON(http.StatusOK, []string{})
	})
	return r
}

func corsRequest(r *gin.Engine, origin string) *nethttptest.ResponseRecorder {
	req := nethttptest.NewRequest(http.MethodGet, "/api/courts", nil)
	req.Header.Set("Origin", origin)
	w := nethttptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORSMiddleware(t *testing.T) {
	base := config.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}

	t.Run("configured origin gets credentials and the booking headers exposed", func(t *testing.T) {
		w := corsRequest(newCORSRouter(base), "http://localhost:3000")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

		exposed := strings.ToLower(w.Header().Get("Access-Control-Expose-Headers"))
		assert.Contains(t, exposed, "content-length")
		assert.Contains(t, exposed, "x-request-id")
		assert.Contains(t, exposed, "location")
	})

	t.Run("unknown origin is refused", func(t *testing.T) {
		w := corsRequest(newCORSRouter(base), "http://evil.example.com")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("wildcard origin drops credentials", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{"*"}
		w := corsRequest(newCORSRouter(cfg), "http://anywhere.example.com")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})
}
