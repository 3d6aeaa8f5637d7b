package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/timesync-hq/timesync-ingest-go/internal/domain/project"
	"github.com/timesync-hq/timesync-ingest-go/internal/pkg/database"
)

type projectRepository struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.Repository {
	return &projectRepository{db: db}
}

// GetByID implements project.Repository.
func (r *projectRepository) GetByID(ctx context.Context, id string) (*project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_date, due_date, state_id
		FROM projects
		WHERE id = $1
		LIMIT 1
	`

	var p project.Project
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.StartDate,
		&p.DueDate,
		&p.StateID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project by id: %w", err)
	}

	return &p, nil
}

// Create implements project.Repository.
func (r *projectRepository) Create(ctx context.Context, p project.Project) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (id, name, start_date, due_date, state_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`

	if _, err := q.Exec(ctx, query,
		p.ID,
		p.Name,
		p.StartDate,
		p.DueDate,
		p.StateID,
	); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}
