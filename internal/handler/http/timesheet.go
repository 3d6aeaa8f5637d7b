package http

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/timesync-hq/timesync-ingest-go/internal/domain/timesheet"
	"github.com/timesync-hq/timesync-ingest-go/internal/handler/http/response"
)

// Export documents are a few hundred KB at most; anything larger is not a
// timesheet.
const maxDocumentSize = 8 << 20

type TimesheetHandler struct {
	ingestService timesheet.IngestService
}

func NewTimesheetHandler(ingestService timesheet.IngestService) TimesheetHandler {
	return TimesheetHandler{ingestService: ingestService}
}

// Ingest runs one export document through the reconciliation engine
// synchronously and returns the run result.
func (h *TimesheetHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentSize))
	if err != nil {
		slog.Error("Failed to read request body", "error", err)
		response.BadRequest(w, "failed to read request body", nil)
		return
	}

	result, err := h.ingestService.IngestDocument(r.Context(), payload)
	if err != nil {
		slog.Error("Ingest failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
