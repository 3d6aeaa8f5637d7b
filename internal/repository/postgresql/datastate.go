package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/timesync-hq/timesync-ingest-go/internal/domain/datastate"
	"github.com/timesync-hq/timesync-ingest-go/internal/pkg/database"
)

type dataStateRepository struct {
	db *database.DB
}

func NewDataStateRepository(db *database.DB) datastate.Repository {
	return &dataStateRepository{db: db}
}

// GetByName implements datastate.Repository.
func (r *dataStateRepository) GetByName(ctx context.Context, name string) (*datastate.State, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name
		FROM data_states
		WHERE name = $1
		LIMIT 1
	`

	var st datastate.State
	err := q.QueryRow(ctx, query, name).Scan(&st.ID, &st.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get data state by name: %w", err)
	}

	return &st, nil
}

// Create implements datastate.Repository. The unique constraint on name
// makes concurrent first-time creation race-safe: the losing insert is a
// no-op and the caller re-reads by name.
func (r *dataStateRepository) Create(ctx context.Context, state datastate.State) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO data_states (id, name)
		VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING
	`

	if _, err := q.Exec(ctx, query, state.ID, state.Name); err != nil {
		return fmt.Errorf("failed to create data state: %w", err)
	}

	return nil
}
