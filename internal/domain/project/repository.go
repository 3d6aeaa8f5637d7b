package project

import "context"

// Repository defines data access for projects.
type Repository interface {
	// GetByID retrieves a project by its reference. Returns (nil, nil)
	// when the project does not exist.
	GetByID(ctx context.Context, id string) (*Project, error)

	// Create inserts a new project, a no-op when the reference already
	// exists.
	Create(ctx context.Context, p Project) error
}
