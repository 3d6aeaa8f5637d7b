package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/timesync-hq/timesync-ingest-go/internal/domain/datastate"
	"github.com/timesync-hq/timesync-ingest-go/internal/domain/project"
	"github.com/timesync-hq/timesync-ingest-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

// Placeholder values for users auto-created from a timesheet. The account is
// not usable for login until someone sets a real credential through another
// surface.
const (
	placeholderEmailDomain = "timesync.local"
	placeholderCredential  = "default123"
)

// ensureState looks up a lifecycle state by name and creates it when absent.
// The uniqueness constraint on the name column resolves concurrent creation:
// the losing insert no-ops and the re-read returns the winner, so repeated
// runs never produce two rows of the same name.
func (s *Service) ensureState(ctx context.Context, name string) (string, error) {
	st, err := s.states.GetByName(ctx, name)
	if err != nil {
		return "", err
	}
	if st != nil {
		return st.ID, nil
	}

	slog.Info("lifecycle state not found, creating", "name", name)
	if err := s.states.Create(ctx, datastate.State{ID: uuid.NewString(), Name: name}); err != nil {
		return "", err
	}

	st, err = s.states.GetByName(ctx, name)
	if err != nil {
		return "", err
	}
	if st == nil {
		return "", fmt.Errorf("state %q missing after create", name)
	}
	return st.ID, nil
}

// ensureUser guarantees the employee row exists. Existing users are never
// mutated; resolving the same registration twice returns the same row.
func (s *Service) ensureUser(ctx context.Context, registration int64, name, stateID string) error {
	existing, err := s.users.GetByRegistration(ctx, registration)
	if err != nil {
		return err
	}
	if existing != nil {
		slog.Info("user already exists", "registration", registration)
		return nil
	}

	slog.Info("user not found, creating", "registration", registration, "name", name)
	hash, err := bcrypt.GenerateFromPassword([]byte(placeholderCredential), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash placeholder credential: %w", err)
	}

	return s.users.Create(ctx, user.User{
		Registration: registration,
		FullName:     name,
		Email:        fmt.Sprintf("%d@%s", registration, placeholderEmailDomain),
		PasswordHash: string(hash),
		StateID:      stateID,
	})
}

// ensureProject guarantees a project row for the given reference, using the
// full trimmed reference as both identifier and placeholder name. Start and
// due dates are set to the date of the entry that first referenced it.
// Existing projects are never updated.
func (s *Service) ensureProject(ctx context.Context, reference, stateID string, observedDate time.Time) (string, error) {
	existing, err := s.projects.GetByID(ctx, reference)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.ID, nil
	}

	slog.Info("project not found, creating", "project", reference)
	if err := s.projects.Create(ctx, project.Project{
		ID:        reference,
		Name:      reference,
		StartDate: observedDate,
		DueDate:   observedDate,
		StateID:   stateID,
	}); err != nil {
		return "", err
	}

	return reference, nil
}
