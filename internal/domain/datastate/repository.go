package datastate

import "context"

// Repository defines data access for lifecycle states.
type Repository interface {
	// GetByName retrieves a state by its unique name. Returns (nil, nil)
	// when no state with that name exists.
	GetByName(ctx context.Context, name string) (*State, error)

	// Create inserts a new state. The name column carries a uniqueness
	// constraint; a concurrent insert of the same name must not produce a
	// second row, so the insert is a no-op on conflict and callers re-read
	// by name afterwards.
	Create(ctx context.Context, state State) error
}
