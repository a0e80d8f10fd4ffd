package middleware

import (
	"log/slog"
	"net/http"

	"badminton-club/internal/handler/httperr"
	"badminton-club/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLinesInLog = 5

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				// Public: Meta ⇒ Return as is
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}

		attrs := requestAttrs(c)
		if last := c.Errors.Last(); last != nil {
			attrs = append(attrs,
				slog.String("error", last.Err.Error()),
				slog.Any("stack", errs.ExtractStackLines(last.Err, stackLinesInLog)),
			)
		}
		slog.LogAttrs(c.Request.Context(), slog.LevelError, "unhandled request error", attrs...)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				attrs := append(requestAttrs(c), slog.Any("panic", err))
				slog.LogAttrs(c.Request.Context(), slog.LevelError, "recovered from panic", attrs...)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}

// requestAttrs identifies the request and, once authenticated, the member behind it.
func requestAttrs(c *gin.Context) []slog.Attr {
	attrs := []slog.Attr{
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
	}
	if id := c.GetString("request_id"); id != "" {
		attrs = append(attrs, slog.String("request_id", id))
	}
	if caller, ok := GetCaller(c); ok {
		attrs = append(attrs,
			slog.String("user_id", caller.UserID.String()),
			slog.String("role", caller.Role.String()),
		)
	}
	return attrs
}
