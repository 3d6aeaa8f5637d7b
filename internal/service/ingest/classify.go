package ingest

import (
	"strings"

	"github.com/timesync-hq/timesync-ingest-go/internal/domain/timesheet"
)

// Textual markers the export uses to flag special entries. Matched
// case-insensitively against the occurrence label and the free-text reason.
const (
	overtimeMarker = "overtime"
	manualMarker   = "manual"
)

// classify assigns one occurrence label to a normalized entry. The
// precedence is fixed so results are reproducible: a compensated day always
// wins, then overtime hints, then manual-entry hints, then the entry's own
// label, defaulting to Work when absent.
func classify(rec timesheet.Record, dayCompensated bool) string {
	switch {
	case dayCompensated:
		return timesheet.OccurrenceCompensated
	case rec.Overtime || hasMarker(rec, overtimeMarker):
		return timesheet.OccurrenceOvertime
	case rec.ManualEntry || hasMarker(rec, manualMarker):
		return timesheet.OccurrenceManual
	case rec.Occurrence != "":
		return rec.Occurrence
	default:
		return timesheet.OccurrenceWork
	}
}

func hasMarker(rec timesheet.Record, marker string) bool {
	if strings.Contains(strings.ToLower(rec.Occurrence), marker) {
		return true
	}
	if rec.Reason != nil && strings.Contains(strings.ToLower(*rec.Reason), marker) {
		return true
	}
	return false
}
