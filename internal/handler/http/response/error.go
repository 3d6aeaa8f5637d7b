package response

import (
	"errors"
	"net/http"

	"github.com/timesync-hq/timesync-ingest-go/internal/domain/timesheet"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, timesheet.ErrInvalidDocument):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, timesheet.ErrUpstreamExtraction):
		UnprocessableEntity(w, err.Error())
	case errors.Is(err, timesheet.ErrMissingRegistration):
		UnprocessableEntity(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
