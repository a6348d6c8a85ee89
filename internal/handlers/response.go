package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vantagecare/practice-backend/internal/domain/flow"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondDomainError maps engine error codes onto HTTP statuses.
func RespondDomainError(c *gin.Context, err error) {
	code := flow.CodeOf(err)
	RespondError(c, statusOf(code), string(code), err)
}

func statusOf(code flow.ErrorCode) int {
	switch code {
	case flow.CodeValidation:
		return http.StatusBadRequest
	case flow.CodeNotFound:
		return http.StatusNotFound
	case flow.CodeConflict:
		return http.StatusConflict
	case flow.CodeInvariantViolation:
		return http.StatusUnprocessableEntity
	case flow.CodePreconditionFailed:
		return http.StatusPreconditionFailed
	case flow.CodeRetryable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
