package middleware

import (
	"errors"
	"net/http"

	"go-jobplus-backend/internal/delivery/http/response"
	"go-jobplus-backend/pkg/apperror"
	"go-jobplus-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler translates typed errors appended to the context into HTTP
// responses. Anything untyped stays server-side; the client gets a generic
// message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				logger.Log.Error("unhandled error", "error", err, "path", c.Request.URL.Path)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
