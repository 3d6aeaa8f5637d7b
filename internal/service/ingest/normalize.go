package ingest

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/timesync-hq/timesync-ingest-go/internal/domain/timesheet"
)

const (
	// The flat export prefixes the attendance lines with this many
	// header/column-title lines.
	rawHeaderLines = 5

	// Number of delimiter-separated fields in one attendance line:
	// date, occurrence, justification, project, ticket, start, end,
	// inactive, hours, reason.
	rawFieldCount = 10

	rawFieldDelimiter = ", "

	// The export writes this token where a field has no value.
	noValueSentinel = "-"

	exportDateLayout = "02/01/2006"
)

// normalize converts a parsed export document into the canonical in-memory
// form. It fails only when the employee registration is absent or invalid;
// malformed attendance lines are skipped and counted, never fatal.
func normalize(doc *timesheet.ExportDocument) (timesheet.Document, error) {
	reg := strings.TrimSpace(doc.HeaderInfo.Employee.Registration)
	if reg == "" {
		return timesheet.Document{}, timesheet.ErrMissingRegistration
	}
	registration, err := strconv.ParseInt(reg, 10, 64)
	if err != nil {
		return timesheet.Document{}, fmt.Errorf("%w: invalid registration %q", timesheet.ErrMissingRegistration, reg)
	}

	out := timesheet.Document{
		Employee: timesheet.Employee{
			Name:         strings.TrimSpace(doc.HeaderInfo.Employee.Name),
			Registration: registration,
		},
		Period: timesheet.Period{
			Start: doc.HeaderInfo.Period.Start,
			End:   doc.HeaderInfo.Period.End,
		},
		Summary: timesheet.Summary{
			WorkHours:     doc.PeriodSummary.TotalWorkHours,
			OvertimeHours: doc.PeriodSummary.TotalOvertimeHours,
			ProjectHours:  doc.PeriodSummary.TotalProjectHours,
			WorkDays:      doc.PeriodSummary.WorkDaysCount,
		},
	}

	if len(doc.DailyRecords) > 0 {
		normalizeDailyRecords(&out, doc.DailyRecords)
	} else {
		normalizeRawLines(&out, doc.RawLines)
	}

	return out, nil
}

// normalizeDailyRecords decodes the structured input shape.
func normalizeDailyRecords(out *timesheet.Document, days []timesheet.ExportDailyRecord) {
	for _, d := range days {
		date, err := time.Parse(exportDateLayout, strings.TrimSpace(d.Date))
		if err != nil {
			slog.Warn("skipping daily record with unparseable date",
				"date", d.Date, "error", err)
			out.SkippedLines += len(d.Records)
			continue
		}

		day := timesheet.DailyRecord{
			Date:        date,
			Compensated: d.IsCompensated,
		}
		for _, r := range d.Records {
			day.Records = append(day.Records, timesheet.Record{
				Occurrence:    strings.TrimSpace(r.OccurrenceType),
				Justification: optional(r.Justification),
				Project:       optional(r.Projects),
				Ticket:        optional(r.Ticket),
				StartTime:     optional(r.StartTime),
				EndTime:       optional(r.EndTime),
				InactiveTime:  optional(r.InactiveTime),
				Hours:         optional(r.Hours),
				Reason:        optional(r.Reason),
				ManualEntry:   r.IsManualEntry,
				Overtime:      r.IsOvertime,
			})
		}
		out.Days = append(out.Days, day)
	}
}

// normalizeRawLines decodes the flat text fallback shape. Lines with fewer
// than ten fields after header-skipping are discarded with a logged,
// non-fatal skip. Consecutive lines sharing a date fold into one day.
func normalizeRawLines(out *timesheet.Document, lines []string) {
	if len(lines) <= rawHeaderLines {
		return
	}

	for _, line := range lines[rawHeaderLines:] {
		fields := strings.Split(line, rawFieldDelimiter)
		if len(fields) < rawFieldCount {
			slog.Warn("skipping malformed attendance line",
				"line", line, "fields", len(fields))
			out.SkippedLines++
			continue
		}

		date, err := time.Parse(exportDateLayout, strings.TrimSpace(fields[0]))
		if err != nil {
			slog.Warn("skipping attendance line with unparseable date",
				"line", line, "error", err)
			out.SkippedLines++
			continue
		}

		rec := timesheet.Record{
			Occurrence:    strings.TrimSpace(fields[1]),
			Justification: optional(fields[2]),
			Project:       optional(fields[3]),
			Ticket:        optional(fields[4]),
			StartTime:     optional(fields[5]),
			EndTime:       optional(fields[6]),
			InactiveTime:  optional(fields[7]),
			Hours:         optional(fields[8]),
			Reason:        optional(fields[9]),
		}

		// Raw lines carry no compensation flag, so the day stays
		// uncompensated.
		if n := len(out.Days); n > 0 && out.Days[n-1].Date.Equal(date) {
			out.Days[n-1].Records = append(out.Days[n-1].Records, rec)
		} else {
			out.Days = append(out.Days, timesheet.DailyRecord{
				Date:    date,
				Records: []timesheet.Record{rec},
			})
		}
	}
}

// optional normalizes the export's "no value" representations (empty string
// or the sentinel token) to nil.
func optional(field string) *string {
	v := strings.TrimSpace(field)
	if v == "" || v == noValueSentinel {
		return nil
	}
	return &v
}
