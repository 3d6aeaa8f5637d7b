package user

import "time"

// User is an employee row keyed by the registration number printed on the
// timesheet export. Users are created on first encounter with placeholder
// contact and credential values and are never mutated by the ingestion
// engine afterwards.
type User struct {
	Registration int64
	FullName     string
	Email        string
	PasswordHash string
	StateID      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
