package user

import "context"

// Repository defines data access for users.
type Repository interface {
	// GetByRegistration retrieves a user by registration number. Returns
	// (nil, nil) when the user does not exist.
	GetByRegistration(ctx context.Context, registration int64) (*User, error)

	// Create inserts a new user. Registration is the primary key; on a
	// concurrent first-time insert of the same registration the statement
	// is a no-op and the existing row wins.
	Create(ctx context.Context, u User) error
}
