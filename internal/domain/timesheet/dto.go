package timesheet

// ExportDocument mirrors the JSON produced by the upstream PDF extraction.
// Exactly one of DailyRecords or RawLines carries the attendance data; a
// non-empty Error signals that extraction already failed upstream.
type ExportDocument struct {
	Error   bool   `json:"error,omitempty"`
	Message string `json:"message,omitempty"`

	HeaderInfo struct {
		Employee struct {
			Name         string `json:"name"`
			Registration string `json:"registration"`
		} `json:"employee"`
		Period struct {
			Start string `json:"start"`
			End   string `json:"end"`
		} `json:"period"`
	} `json:"header_info"`

	PeriodSummary struct {
		TotalWorkHours     string `json:"total_work_hours"`
		TotalOvertimeHours string `json:"total_overtime_hours"`
		TotalProjectHours  string `json:"total_project_hours"`
		WorkDaysCount      int    `json:"work_days_count"`
	} `json:"period_summary"`

	DailyRecords []ExportDailyRecord `json:"daily_records,omitempty"`
	RawLines     []string            `json:"raw_lines,omitempty"`
}

// ExportDailyRecord is one day in the structured input shape.
type ExportDailyRecord struct {
	Date          string         `json:"date"`
	IsCompensated bool           `json:"is_compensated"`
	Records       []ExportRecord `json:"records"`
}

// ExportRecord is one attendance entry in the structured input shape.
// Empty strings mean "no value".
type ExportRecord struct {
	OccurrenceType string `json:"occurrence_type"`
	Justification  string `json:"justification"`
	Projects       string `json:"projects"`
	Ticket         string `json:"ticket"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	InactiveTime   string `json:"inactive_time"`
	Hours          string `json:"hours"`
	Reason         string `json:"reason"`
	IsManualEntry  bool   `json:"is_manual_entry"`
	IsOvertime     bool   `json:"is_overtime"`
}

// IngestResult is the structured outcome of one document run, returned to
// the invoking collaborator for downstream logging and alerting.
type IngestResult struct {
	Status           string `json:"status"`
	Employee         int64  `json:"employee,omitempty"`
	RecordsProcessed int    `json:"records_processed"`
	RecordsSkipped   int    `json:"records_skipped"`
	Message          string `json:"message,omitempty"`
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)
