package middleware

import (
	"errors"
	"net/http"

	"futuresign-backend/internal/delivery/http/response"
	"futuresign-backend/pkg/apperror"
	"futuresign-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors attached to the gin context as the standard
// envelope. AppErrors keep their status code and, on server faults, expose
// the diagnostic string; anything else becomes a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			detail := ""
			if appErr.Code >= http.StatusInternalServerError && appErr.Err != nil {
				detail = appErr.Err.Error()
				logger.Log.Error("request failed",
					"status", appErr.Code,
					"path", c.Request.URL.Path,
					"error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Message, detail)
			return
		}

		logger.Log.Error("unhandled error", "path", c.Request.URL.Path, "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", "")
	}
}
