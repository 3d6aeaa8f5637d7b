package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/timesync-hq/timesync-ingest-go/internal/domain/datastate"
	"github.com/timesync-hq/timesync-ingest-go/internal/domain/project"
	"github.com/timesync-hq/timesync-ingest-go/internal/domain/timesheet"
	"github.com/timesync-hq/timesync-ingest-go/internal/domain/user"
	"github.com/timesync-hq/timesync-ingest-go/internal/pkg/database"
)

// Service reconciles timesheet export documents into the relational store.
// One call to IngestDocument processes exactly one document inside one
// transaction; days and entries run strictly in document order so entity
// creation side effects stay reproducible.
type Service struct {
	tx       database.TxManager
	states   datastate.Repository
	users    user.Repository
	projects project.Repository
	entries  timesheet.EntryRepository
}

func NewService(
	tx database.TxManager,
	states datastate.Repository,
	users user.Repository,
	projects project.Repository,
	entries timesheet.EntryRepository,
) *Service {
	return &Service{
		tx:       tx,
		states:   states,
		users:    users,
		projects: projects,
		entries:  entries,
	}
}

// IngestDocument implements timesheet.IngestService.
//
// Failure policy: anything that goes wrong before a usable transaction
// exists (unparseable payload, upstream error flag, missing registration,
// connection failure) aborts the whole run with an error result and zero
// writes. Once inside the transaction, a failing record is logged and
// skipped and the rest of the document still commits.
func (s *Service) IngestDocument(ctx context.Context, payload []byte) (timesheet.IngestResult, error) {
	var export timesheet.ExportDocument
	if err := json.Unmarshal(payload, &export); err != nil {
		err = fmt.Errorf("%w: %v", timesheet.ErrInvalidDocument, err)
		return errorResult(err), err
	}

	if export.Error {
		slog.Error("upstream extraction failed", "message", export.Message)
		err := fmt.Errorf("%w: %s", timesheet.ErrUpstreamExtraction, export.Message)
		return timesheet.IngestResult{Status: timesheet.StatusError, Message: export.Message}, err
	}

	doc, err := normalize(&export)
	if err != nil {
		return errorResult(err), err
	}

	slog.Info("processing timesheet document",
		"employee", doc.Employee.Name,
		"registration", doc.Employee.Registration,
		"period_start", doc.Period.Start,
		"period_end", doc.Period.End,
		"days", len(doc.Days),
	)

	processed, skipped := 0, doc.SkippedLines
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		stateID, err := s.ensureState(ctx, datastate.Active)
		if err != nil {
			return fmt.Errorf("ensure active state: %w", err)
		}

		if err := s.ensureUser(ctx, doc.Employee.Registration, doc.Employee.Name, stateID); err != nil {
			return fmt.Errorf("ensure user %d: %w", doc.Employee.Registration, err)
		}

		for _, day := range doc.Days {
			for _, rec := range day.Records {
				err := s.tx.WithinSavepoint(ctx, func(ctx context.Context) error {
					return s.insertEntry(ctx, doc.Employee.Registration, stateID, day, rec)
				})
				if err != nil {
					slog.Error("skipping attendance record",
						"date", day.Date.Format("2006-01-02"),
						"occurrence", rec.Occurrence,
						"error", err,
					)
					skipped++
					continue
				}
				processed++
			}
		}

		slog.Info("period summary",
			"work_hours", doc.Summary.WorkHours,
			"overtime_hours", doc.Summary.OvertimeHours,
			"project_hours", doc.Summary.ProjectHours,
			"work_days", doc.Summary.WorkDays,
		)
		return nil
	})
	if err != nil {
		return errorResult(err), err
	}

	slog.Info("timesheet document processed",
		"registration", doc.Employee.Registration,
		"records_processed", processed,
		"records_skipped", skipped,
	)

	return timesheet.IngestResult{
		Status:           timesheet.StatusOK,
		Employee:         doc.Employee.Registration,
		RecordsProcessed: processed,
		RecordsSkipped:   skipped,
	}, nil
}

// insertEntry classifies one record, computes its hours, resolves the
// referenced project and persists the attendance row.
func (s *Service) insertEntry(ctx context.Context, registration int64, stateID string, day timesheet.DailyRecord, rec timesheet.Record) error {
	occurrence := classify(rec, day.Compensated)
	hours := computeHours(rec.StartTime, rec.EndTime, rec.Hours)

	var projectID *string
	if rec.Project != nil {
		ref := strings.TrimSpace(*rec.Project)
		if ref != "" {
			id, err := s.ensureProject(ctx, ref, stateID, day.Date)
			if err != nil {
				return fmt.Errorf("ensure project %q: %w", ref, err)
			}
			projectID = &id
		}
	}

	return s.entries.Create(ctx, timesheet.Entry{
		ID:               uuid.NewString(),
		Date:             day.Date,
		Occurrence:       occurrence,
		Justification:    rec.Justification,
		ProjectID:        projectID,
		StartTime:        rec.StartTime,
		EndTime:          rec.EndTime,
		TotalHours:       hours,
		Reason:           rec.Reason,
		UserRegistration: registration,
		StateID:          stateID,
	})
}

func errorResult(err error) timesheet.IngestResult {
	return timesheet.IngestResult{Status: timesheet.StatusError, Message: err.Error()}
}
