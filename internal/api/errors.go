package api

import (
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/statecanvas/statecanvas/pkg/errors"
)

// errorResponse is the JSON shape of all error responses.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusForCode maps structured error codes to HTTP status codes.
func statusForCode(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidMachine,
		errors.ErrCodeInvalidState,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidMode,
		errors.ErrCodeInvalidOptions,
		errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound,
		errors.ErrCodeFileNotFound,
		errors.ErrCodeLayoutNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes err as a structured JSON error response.
// Internal errors are logged with their cause but reported generically.
func writeError(w http.ResponseWriter, logger *log.Logger, err error) {
	code := errors.GetCode(err)
	status := statusForCode(code)

	message := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
		message = "internal error"
	}

	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: message,
	}})
}
