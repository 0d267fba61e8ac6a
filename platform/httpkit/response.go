// Package httpkit provides HTTP response utilities.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"net/http"

	"seller_landing/platform/apperr"

	"github.com/gin-gonic/gin"
)

const msgUnexpected = "오류가 발생했습니다. 다시 시도해주세요."

// ErrorResponse is the standard error response format. Message is shown to
// the visitor; Error carries the technical cause.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Details any    `json:"details,omitempty"`
}

// JSON sends a JSON response with the given status code.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// Error sends an error response with the given status code and message.
func Error(c *gin.Context, status int, message string, cause string) {
	c.JSON(status, ErrorResponse{Message: message, Error: cause})
}

// OK sends a 200 OK response with the given payload.
func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// HandleError maps domain errors to HTTP responses.
// If the error wraps an *apperr.Error, its Kind determines the status code and
// its Message is shown. Otherwise it answers 500 with a generic message.
// Returns true if an error was handled, false otherwise.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	if domainErr, ok := apperr.As(err); ok {
		c.JSON(domainErr.HTTPStatus(), ErrorResponse{
			Message: domainErr.Message,
			Error:   domainErr.Cause(),
			Details: domainErr.Details,
		})
		return true
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: msgUnexpected, Error: err.Error()})
	return true
}
