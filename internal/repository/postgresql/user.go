package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/timesync-hq/timesync-ingest-go/internal/domain/user"
	"github.com/timesync-hq/timesync-ingest-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepositoryImpl{db: db}
}

// GetByRegistration implements user.Repository.
func (r *userRepositoryImpl) GetByRegistration(ctx context.Context, registration int64) (*user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT registration, full_name, email, password_hash, state_id, created_at, updated_at
		FROM users
		WHERE registration = $1
		LIMIT 1
	`

	var u user.User
	err := q.QueryRow(ctx, query, registration).Scan(
		&u.Registration,
		&u.FullName,
		&u.Email,
		&u.PasswordHash,
		&u.StateID,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by registration: %w", err)
	}

	return &u, nil
}

// Create implements user.Repository. Existing rows are never touched; a
// concurrent insert of the same registration loses silently.
func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (registration, full_name, email, password_hash, state_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (registration) DO NOTHING
	`

	if _, err := q.Exec(ctx, query,
		u.Registration,
		u.FullName,
		u.Email,
		u.PasswordHash,
		u.StateID,
	); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}
