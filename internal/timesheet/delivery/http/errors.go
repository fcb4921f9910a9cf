package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"timesheet-assistant/internal/timesheet"
	"timesheet-assistant/pkg/response"
)

var (
	errInvalidAction = errors.New("action must be either chat or timesheet")
	errInvalidForm   = errors.New("invalid form submission")
	errInvalidBody   = errors.New("invalid request body")
)

// mapError translates domain errors into an HTTP status and a user-facing message.
// Unknown errors become a 500 with the generic message.
func (h *handler) mapError(err error) (int, string) {
	switch {
	case errors.Is(err, errInvalidAction),
		errors.Is(err, errInvalidForm),
		errors.Is(err, errInvalidBody),
		errors.Is(err, timesheet.ErrEmptyInput),
		errors.Is(err, timesheet.ErrNoEntries),
		errors.Is(err, timesheet.ErrUnsupportedFormat),
		errors.Is(err, timesheet.ErrInvalidFileName):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, timesheet.ErrFileNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, timesheet.ErrAgentUnavailable):
		return http.StatusServiceUnavailable, err.Error()
	default:
		return http.StatusInternalServerError, response.DefaultErrorMessage
	}
}

// abortJSON writes the mapped error in the standard response envelope.
func (h *handler) abortJSON(c *gin.Context, err error) {
	status, msg := h.mapError(err)
	response.ErrorWithStatus(c, status, status, errors.New(msg), nil)
}
