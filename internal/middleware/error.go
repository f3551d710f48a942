package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "targetrack/internal/errors"
	"targetrack/internal/logger"
)

// ErrorHandler returns a Gin middleware that renders errors attached with
// c.Error as a {"code", "message"} body. Handlers that already wrote a
// response are left alone. AppErrors keep their code and message; anything
// else is logged and reported as a generic internal error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		// The last error is the most relevant in a middleware chain
		err := c.Errors.Last().Err

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			if appErr.Internal != nil {
				logger.Get().Errorw("app error",
					"code", appErr.Code,
					"message", appErr.Message,
					"internal", appErr.Internal.Error(),
					"path", c.Request.URL.Path,
				)
			}
			c.JSON(appErr.StatusCode, gin.H{"code": appErr.Code, "message": appErr.Message})
			return
		}

		logger.Get().Errorw("unexpected error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		})
	}
}

// NotFound answers unknown routes with the standard error body.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"code":    apperrors.ErrNotFound.Code,
		"message": "Route " + c.Request.Method + " " + c.Request.URL.Path + " not found",
	})
}
