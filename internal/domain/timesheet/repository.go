package timesheet

import "context"

// EntryRepository defines data access for persisted attendance entries.
// Entries are insert-only; the engine never updates or deletes them.
type EntryRepository interface {
	Create(ctx context.Context, entry Entry) error
}
