package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "targetrack/internal/errors"
	"targetrack/internal/logger"
	"targetrack/internal/uuid"
	"targetrack/internal/validator"
)

// ErrorResponse is the body of every non-2xx response. Message is a string,
// or a list of strings when several request fields failed validation.
type ErrorResponse struct {
	Code    string      `json:"code" example:"INVALID_INPUT"`
	Message interface{} `json:"message" swaggertype:"string" example:"Invalid input"`
}

// parsePathID reads a UUID path parameter.
// Returns ErrInvalidInput if the parameter is not a valid UUID.
func parsePathID(c *gin.Context, param string) (string, error) {
	id := c.Param(param)
	if !uuid.IsValid(id) {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// respondWithBindError reports a failed ShouldBind*. Validation failures
// list one message per field; anything else (malformed JSON, wrong types)
// is reported as a single message.
func respondWithBindError(c *gin.Context, err error) {
	if msgs := validator.Messages(err); msgs != nil {
		c.JSON(apperrors.ErrInvalidInput.StatusCode, ErrorResponse{
			Code:    apperrors.ErrInvalidInput.Code,
			Message: msgs,
		})
		return
	}
	respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{Code: appErr.Code, Message: appErr.Message})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{
		Code:    apperrors.ErrInternalServer.Code,
		Message: apperrors.ErrInternalServer.Message,
	})
}
