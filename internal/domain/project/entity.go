package project

import "time"

// Project is keyed by the project reference string found on attendance
// entries. The full trimmed reference is the canonical identifier; it also
// doubles as the placeholder name until someone renames the project through
// another surface. Start and due dates are both set to the date of the entry
// that first referenced the project.
type Project struct {
	ID        string
	Name      string
	StartDate time.Time
	DueDate   time.Time
	StateID   string
}
