package postgresql

import (
	"context"
	"fmt"

	"github.com/timesync-hq/timesync-ingest-go/internal/domain/timesheet"
	"github.com/timesync-hq/timesync-ingest-go/internal/pkg/database"
)

type entryRepository struct {
	db *database.DB
}

func NewEntryRepository(db *database.DB) timesheet.EntryRepository {
	return &entryRepository{db: db}
}

// Create implements timesheet.EntryRepository. Entries are insert-only and
// carry a generated id, so there is no conflict target.
func (r *entryRepository) Create(ctx context.Context, entry timesheet.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_entries (
			id, date, occurrence, justification, project_id,
			start_time, end_time, total_hours, reason,
			user_registration, state_id, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW()
		)
	`

	if _, err := q.Exec(ctx, query,
		entry.ID,
		entry.Date,
		entry.Occurrence,
		entry.Justification,
		entry.ProjectID,
		entry.StartTime,
		entry.EndTime,
		entry.TotalHours,
		entry.Reason,
		entry.UserRegistration,
		entry.StateID,
	); err != nil {
		return fmt.Errorf("failed to create attendance entry: %w", err)
	}

	return nil
}
