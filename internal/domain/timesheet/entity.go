package timesheet

import "time"

// Occurrence labels assigned by classification. An entry that matches none of
// the classification rules keeps the label the export gave it, so stored
// occurrences are not limited to this set.
const (
	OccurrenceWork        = "Work"
	OccurrenceOvertime    = "Overtime"
	OccurrenceCompensated = "Compensated"
	OccurrenceManual      = "Manual"
)

// Document is the canonical in-memory form of one employee's timesheet
// export for one pay period. Both admissible input shapes (structured daily
// records and flat raw lines) decode into this shape, so classification,
// hour computation and persistence are written once against it.
type Document struct {
	Employee Employee
	Period   Period
	Summary  Summary
	Days     []DailyRecord

	// SkippedLines counts raw lines discarded during normalization
	// (wrong field count, unparseable date).
	SkippedLines int
}

// Employee identifies the owner of the document. Registration is the primary
// identifying key for all downstream work and has no substitute.
type Employee struct {
	Name         string
	Registration int64
}

// Period is the pay period from the document header. Read-only summary data,
// logged once per run, never persisted per entry.
type Period struct {
	Start string
	End   string
}

// Summary carries the aggregate hour totals from the document header.
type Summary struct {
	WorkHours     string
	OvertimeHours string
	ProjectHours  string
	WorkDays      int
}

// DailyRecord is one calendar date within the period.
type DailyRecord struct {
	Date        time.Time
	Compensated bool
	Records     []Record
}

// Record is one normalized attendance entry before classification and
// persistence. Optional fields are nil when the export carried no value or
// the "-" sentinel.
type Record struct {
	Occurrence    string
	Justification *string
	Project       *string
	Ticket        *string
	StartTime     *string
	EndTime       *string
	InactiveTime  *string
	Hours         *string
	Reason        *string
	ManualEntry   bool
	Overtime      bool
}

// Entry is the persisted attendance row. The ID is generated at creation
// time; the same logical entry has no stable external key across
// re-deliveries, so re-running a document inserts fresh rows.
type Entry struct {
	ID               string
	Date             time.Time
	Occurrence       string
	Justification    *string
	ProjectID        *string
	StartTime        *string
	EndTime          *string
	TotalHours       float64
	Reason           *string
	UserRegistration int64
	StateID          string
}
